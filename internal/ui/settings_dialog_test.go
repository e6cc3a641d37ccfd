package ui

import (
	"math"
	"path/filepath"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/niagarahome/launcher/internal/config"
)

func newTestSettingsDialog(t *testing.T) (*SettingsDialog, *config.Settings, *int) {
	t.Helper()
	app := test.NewApp()
	w := test.NewWindow(nil)
	t.Cleanup(w.Close)

	settings := config.NewSettings(app)
	saved := 0
	sd := NewSettingsDialog(settings, NewLocalization(), w, func() { saved++ })
	sd.loadCurrentSettings()
	return sd, settings, &saved
}

func TestSettingsDialog_LoadCurrentSettings(t *testing.T) {
	sd, _, _ := newTestSettingsDialog(t)

	if sd.stripWidthEntry.Text != "32" {
		t.Errorf("Strip width entry = %s, expected 32", sd.stripWidthEntry.Text)
	}
	if sd.selectModeRadio.Selected != string(config.SelectScroll) {
		t.Errorf("Select mode = %s, expected scroll", sd.selectModeRadio.Selected)
	}
}

func TestSettingsDialog_Save(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	sd.stripWidthEntry.SetText("48")
	sd.touchMarginEntry.SetText("not a number")
	sd.highlightSlider.SetValue(2.0)
	sd.selectModeRadio.SetSelected(string(config.SelectIsolate))
	sd.onSave(true)

	if settings.GetStripWidth() != 48 {
		t.Errorf("Strip width = %d, expected 48", settings.GetStripWidth())
	}
	if settings.GetTouchMargin() != config.DefaultStripTouchMargin {
		t.Errorf("Malformed touch margin should be ignored, got %d", settings.GetTouchMargin())
	}
	if math.Abs(settings.GetHighlightScale()-2.0) > 1e-9 {
		t.Errorf("Highlight scale = %v, expected 2.0", settings.GetHighlightScale())
	}
	if settings.GetStripSelectMode() != config.SelectIsolate {
		t.Errorf("Select mode = %s, expected isolate", settings.GetStripSelectMode())
	}
	if *saved != 1 {
		t.Errorf("onSaved called %d times, expected 1", *saved)
	}
}

func TestSettingsDialog_SaveCancelled(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	sd.stripWidthEntry.SetText("64")
	sd.onSave(false)

	if settings.GetStripWidth() != config.DefaultStripWidth || *saved != 0 {
		t.Error("Cancelled dialog should not change settings")
	}
}

func TestSettingsDialog_Reset(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	settings.SetStripWidth(80)
	sd.onReset()

	if settings.GetStripWidth() != config.DefaultStripWidth {
		t.Errorf("Strip width = %d after reset", settings.GetStripWidth())
	}
	if sd.stripWidthEntry.Text != "32" {
		t.Errorf("Entry not reloaded after reset: %s", sd.stripWidthEntry.Text)
	}
	if *saved != 1 {
		t.Error("Reset should notify listeners")
	}
}

func TestSettingsDialog_ImportProfile(t *testing.T) {
	sd, settings, saved := newTestSettingsDialog(t)

	p := config.DefaultProfile()
	p.Strip.Width = 40
	p.Bulge.Margin = 8
	path := filepath.Join(t.TempDir(), "profile"+ProfileExtension)
	if err := config.SaveProfile(path, p); err != nil {
		t.Fatalf("SaveProfile() error: %v", err)
	}

	if err := sd.importProfile(path); err != nil {
		t.Fatalf("importProfile() error: %v", err)
	}
	if settings.GetStripWidth() != 40 || settings.GetBulgeMargin() != 8 {
		t.Errorf("Imported settings not applied: width=%d margin=%d",
			settings.GetStripWidth(), settings.GetBulgeMargin())
	}
	if sd.stripWidthEntry.Text != "40" {
		t.Errorf("Entry not reloaded after import: %s", sd.stripWidthEntry.Text)
	}
	if *saved != 1 {
		t.Error("Import should notify listeners")
	}

	if err := sd.importProfile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing profile")
	}
}
