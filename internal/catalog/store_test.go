package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/niagarahome/launcher/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog", "apps.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AddAndList(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	calls := 0
	store.Subscribe(func() { calls++ })

	if _, err := store.Add(ctx, "Terminal", "terminal.desktop"); err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	app, err := store.Add(ctx, "  browser ", "https://example.com")
	if err != nil {
		t.Fatalf("Add() error: %v", err)
	}
	if app.ID == "" || app.Label != "browser" {
		t.Errorf("unexpected app %+v", app)
	}
	if calls != 2 {
		t.Errorf("expected 2 notifications, got %d", calls)
	}

	apps, err := store.Apps(ctx)
	if err != nil {
		t.Fatalf("Apps() error: %v", err)
	}
	if got := labels(apps); len(got) != 2 || got[0] != "browser" || got[1] != "Terminal" {
		t.Errorf("Apps() = %v", got)
	}
	if apps[1].Target != "terminal.desktop" {
		t.Errorf("target not persisted: %q", apps[1].Target)
	}
}

func TestStore_AddEmptyLabel(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Add(context.Background(), "   ", ""); err == nil {
		t.Error("expected an error for an empty label")
	}
}

func TestStore_Hidden(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	mail, _ := store.Add(ctx, "Mail", "")
	store.Add(ctx, "Maps", "")

	if err := store.SetHidden(ctx, mail.ID, true); err != nil {
		t.Fatalf("SetHidden() error: %v", err)
	}

	visible, _ := store.Apps(ctx)
	if got := labels(visible); len(got) != 1 || got[0] != "Maps" {
		t.Errorf("visible apps = %v", got)
	}
	hidden, _ := store.HiddenApps(ctx)
	if len(hidden) != 1 || hidden[0].ID != mail.ID || !hidden[0].Hidden {
		t.Errorf("hidden apps = %+v", hidden)
	}
	all, _ := store.AllApps(ctx)
	if len(all) != 2 {
		t.Errorf("AllApps() returned %d apps", len(all))
	}

	if err := store.ClearHidden(ctx); err != nil {
		t.Fatalf("ClearHidden() error: %v", err)
	}
	visible, _ = store.Apps(ctx)
	if len(visible) != 2 {
		t.Errorf("expected all apps visible after ClearHidden, got %d", len(visible))
	}
}

func TestStore_UnknownID(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if err := store.SetHidden(ctx, "missing", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("SetHidden() error = %v, expected ErrNotFound", err)
	}
	if err := store.Remove(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() error = %v, expected ErrNotFound", err)
	}
}

func TestStore_Remove(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	app, _ := store.Add(ctx, "Clock", "")
	if err := store.Remove(ctx, app.ID); err != nil {
		t.Fatalf("Remove() error: %v", err)
	}
	apps, _ := store.Apps(ctx)
	if len(apps) != 0 {
		t.Errorf("expected empty catalog, got %v", labels(apps))
	}
}

func TestStore_SeedOnlyWhenEmpty(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	seed := []model.App{
		{Label: "Camera"},
		{ID: "fixed", Label: "Files", Hidden: true},
	}
	n, err := store.Seed(ctx, seed)
	if err != nil {
		t.Fatalf("Seed() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Seed() = %d, expected 2", n)
	}

	n, err = store.Seed(ctx, seed)
	if err != nil || n != 0 {
		t.Errorf("second Seed() = %d, %v; expected 0, nil", n, err)
	}

	all, _ := store.AllApps(ctx)
	if len(all) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(all))
	}
	if all[1].ID != "fixed" || !all[1].Hidden {
		t.Errorf("seeded app not preserved: %+v", all[1])
	}
}

func TestStore_Reopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "apps.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	store.Add(ctx, "Weather", "")
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	defer store.Close()

	apps, _ := store.Apps(ctx)
	if len(apps) != 1 || apps[0].Label != "Weather" {
		t.Errorf("apps after reopen = %v", labels(apps))
	}
}
