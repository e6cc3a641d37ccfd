package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/niagarahome/launcher/internal/model"
)

// ErrNotFound is returned when an app ID is unknown to the store
var ErrNotFound = errors.New("app not found")

// Current schema version
const storeSchemaVersion = 1

const storeSchema = `
CREATE TABLE IF NOT EXISTS schema_version (
    version INTEGER PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS apps (
    id         TEXT PRIMARY KEY,
    label      TEXT NOT NULL,
    target     TEXT NOT NULL DEFAULT '',
    hidden     INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_apps_hidden ON apps(hidden);
`

// Store is a SQLite-backed Source. Every mutation notifies subscribers so
// hosts can reload, the same way a package-change broadcast would.
type Store struct {
	db *sql.DB
	notifier
}

// Open opens or creates the catalog database at path
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	if _, err := s.db.Exec(storeSchema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	var version int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > storeSchemaVersion {
		return fmt.Errorf("catalog schema version %d is newer than supported %d", version, storeSchemaVersion)
	}
	if version < storeSchemaVersion {
		if _, err := s.db.Exec("INSERT OR REPLACE INTO schema_version(version) VALUES (?)", storeSchemaVersion); err != nil {
			return fmt.Errorf("failed to record schema version: %w", err)
		}
	}
	return nil
}

// Close closes the database
func (s *Store) Close() error {
	return s.db.Close()
}

// Subscribe registers fn for change notifications
func (s *Store) Subscribe(fn func()) func() {
	return s.subscribe(fn)
}

// Apps returns the visible apps sorted for display
func (s *Store) Apps(ctx context.Context) ([]model.App, error) {
	apps, err := s.query(ctx, "SELECT id, label, target, hidden FROM apps WHERE hidden = 0")
	if err != nil {
		return nil, err
	}
	return SortApps(apps), nil
}

// AllApps returns every app including hidden ones, sorted for display
func (s *Store) AllApps(ctx context.Context) ([]model.App, error) {
	apps, err := s.query(ctx, "SELECT id, label, target, hidden FROM apps")
	if err != nil {
		return nil, err
	}
	return SortApps(apps), nil
}

// HiddenApps returns the hidden apps sorted for display
func (s *Store) HiddenApps(ctx context.Context) ([]model.App, error) {
	apps, err := s.query(ctx, "SELECT id, label, target, hidden FROM apps WHERE hidden = 1")
	if err != nil {
		return nil, err
	}
	return SortApps(apps), nil
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]model.App, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query apps: %w", err)
	}
	defer rows.Close()

	var apps []model.App
	for rows.Next() {
		var a model.App
		var hidden int
		if err := rows.Scan(&a.ID, &a.Label, &a.Target, &hidden); err != nil {
			return nil, fmt.Errorf("failed to scan app: %w", err)
		}
		a.Hidden = hidden != 0
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read apps: %w", err)
	}
	return apps, nil
}

// Add inserts a new app and returns it with a fresh ID
func (s *Store) Add(ctx context.Context, label, target string) (model.App, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return model.App{}, fmt.Errorf("app label is empty")
	}
	app := model.App{ID: uuid.NewString(), Label: label, Target: target}
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO apps(id, label, target, hidden, created_at) VALUES (?, ?, ?, 0, ?)",
		app.ID, app.Label, app.Target, time.Now().UnixNano())
	if err != nil {
		return model.App{}, fmt.Errorf("failed to add app %q: %w", label, err)
	}
	s.notify()
	return app, nil
}

// Remove deletes an app
func (s *Store) Remove(ctx context.Context, id string) error {
	return s.exec(ctx, id, "DELETE FROM apps WHERE id = ?", id)
}

// SetHidden hides or shows an app
func (s *Store) SetHidden(ctx context.Context, id string, hidden bool) error {
	v := 0
	if hidden {
		v = 1
	}
	return s.exec(ctx, id, "UPDATE apps SET hidden = ? WHERE id = ?", v, id)
}

// ClearHidden makes every app visible again
func (s *Store) ClearHidden(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "UPDATE apps SET hidden = 0 WHERE hidden = 1"); err != nil {
		return fmt.Errorf("failed to clear hidden apps: %w", err)
	}
	s.notify()
	return nil
}

func (s *Store) exec(ctx context.Context, id, q string, args ...any) error {
	res, err := s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("failed to update app %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update app %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	s.notify()
	return nil
}

// Seed inserts apps when the catalog is empty and returns how many were
// added. Apps without an ID get a fresh one.
func (s *Store) Seed(ctx context.Context, apps []model.App) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM apps").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count apps: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UnixNano()
	for _, a := range apps {
		id := a.ID
		if id == "" {
			id = uuid.NewString()
		}
		hidden := 0
		if a.Hidden {
			hidden = 1
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO apps(id, label, target, hidden, created_at) VALUES (?, ?, ?, ?, ?)",
			id, a.Label, a.Target, hidden, now)
		if err != nil {
			return 0, fmt.Errorf("failed to seed app %q: %w", a.Label, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed: %w", err)
	}
	s.notify()
	return len(apps), nil
}
