package termhost

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/niagarahome/launcher/internal/catalog"
	"github.com/niagarahome/launcher/internal/model"
	"github.com/niagarahome/launcher/internal/scrubber"
)

// testApps sorts into 6 letters of 2 apps each: 18 rows with headers
var testApps = []model.App{
	{ID: "1", Label: "Alpha", Target: "alpha"},
	{ID: "2", Label: "Apex", Target: "apex"},
	{ID: "3", Label: "Bravo", Target: "bravo"},
	{ID: "4", Label: "Beta", Target: "beta"},
	{ID: "5", Label: "Charlie", Target: "charlie"},
	{ID: "6", Label: "Cobalt", Target: "cobalt"},
	{ID: "7", Label: "Delta", Target: "delta"},
	{ID: "8", Label: "Dune", Target: "dune"},
	{ID: "9", Label: "Echo", Target: "echo"},
	{ID: "10", Label: "Ember", Target: "ember"},
	{ID: "11", Label: "Foxtrot", Target: "foxtrot"},
	{ID: "12", Label: "Fable", Target: "fable"},
}

// newTestHost runs on a 30x12 screen: 11 list rows, the strip's touch
// margin starts at column 26 and the pill is column 29.
func newTestHost(t *testing.T) (*Host, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(30, 12)

	h := New(screen, catalog.NewMemorySource(testApps), scrubber.DefaultTunables())
	t.Cleanup(h.Close)
	h.launch = func(string) error { return nil }
	h.openStore = func(string) error { return nil }
	if err := h.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() error: %v", err)
	}
	return h, screen
}

func readScreenLine(screen tcell.Screen, x, y, width int) string {
	runes := make([]rune, width)
	for i := 0; i < width; i++ {
		ch, _, _, _ := screen.GetContent(x+i, y)
		if ch == 0 {
			ch = ' '
		}
		runes[i] = ch
	}
	return strings.TrimRight(string(runes), " ")
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestCellTunables(t *testing.T) {
	got := CellTunables(scrubber.DefaultTunables())
	if got.TouchMargin != 3 || got.PullThreshold != 10 || got.BulgeMargin != 2 {
		t.Errorf("CellTunables() = %+v", got)
	}
	if got.FineModeThreshold != scrubber.DefaultFineModeThreshold {
		t.Errorf("Fractions should be kept, got %v", got.FineModeThreshold)
	}
}

func TestDraw(t *testing.T) {
	h, screen := newTestHost(t)
	h.Draw()

	if line := readScreenLine(screen, 0, 0, 26); line != "A" {
		t.Errorf("Line 0 = %q, expected header A", line)
	}
	if line := readScreenLine(screen, 0, 1, 26); line != "  Alpha" {
		t.Errorf("Line 1 = %q, expected Alpha", line)
	}
	if line := readScreenLine(screen, 0, 11, 30); !strings.HasPrefix(line, "type to search") {
		t.Errorf("Prompt line = %q", line)
	}

	letters := 0
	for y := 0; y < 11; y++ {
		ch, _, _, _ := screen.GetContent(29, y)
		if ch >= 'A' && ch <= 'F' {
			letters++
		}
	}
	if letters != 6 {
		t.Errorf("Expected 6 strip letters in the pill column, found %d", letters)
	}
}

func TestMouseGesture(t *testing.T) {
	h, _ := newTestHost(t)

	// Row 4 lies in the third of six 11/6-cell slots
	h.HandleEvent(mouse(29, 4, tcell.Button1))
	if h.top != 6 {
		t.Errorf("top = %d, expected 6 (first row of C)", h.top)
	}
	if !h.previewOn || h.preview != 'C' {
		t.Errorf("Preview = %v/%s, expected C", h.previewOn, h.preview)
	}

	// Pull far left to fine scroll near the bottom
	h.HandleEvent(mouse(5, 10, tcell.Button1))
	if s := h.scrubber.Session(); s.Mode != scrubber.ModeFine {
		t.Fatalf("Mode = %s, expected fine", s.Mode)
	}
	if h.top != 7 {
		t.Errorf("top = %d, expected 7 (maximum)", h.top)
	}

	h.HandleEvent(mouse(5, 10, tcell.ButtonNone))
	if h.previewOn || h.scrubber.Session().Active {
		t.Error("Release should end the gesture and hide the preview")
	}
	h.Draw()
}

func TestClickLaunchesRow(t *testing.T) {
	h, _ := newTestHost(t)
	var launched string
	h.launch = func(target string) error {
		launched = target
		return nil
	}

	h.HandleEvent(mouse(3, 0, tcell.Button1)) // header
	h.HandleEvent(mouse(3, 0, tcell.ButtonNone))
	if launched != "" {
		t.Errorf("Header click launched %q", launched)
	}

	h.HandleEvent(mouse(3, 2, tcell.Button1))
	h.HandleEvent(mouse(3, 2, tcell.ButtonNone))
	if launched != "apex" {
		t.Errorf("Launched %q, expected apex", launched)
	}
}

func TestSearchKeys(t *testing.T) {
	h, screen := newTestHost(t)
	var launched, searched string
	h.launch = func(target string) error {
		launched = target
		return nil
	}
	h.openStore = func(query string) error {
		searched = query
		return nil
	}

	h.HandleEvent(key('b'))
	h.HandleEvent(key('e'))
	h.HandleEvent(key('t'))
	if h.query != "bet" || len(h.rows) != 3 {
		t.Fatalf("query %q rows %d, expected Beta header, app and store row", h.query, len(h.rows))
	}
	if h.stripVisible() {
		t.Error("Strip should be hidden while searching")
	}
	h.Draw()
	if line := readScreenLine(screen, 0, 11, 30); line != "/bet" {
		t.Errorf("Prompt line = %q", line)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if launched != "beta" {
		t.Errorf("Enter launched %q, expected beta", launched)
	}

	h.HandleEvent(key('x'))
	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))
	if searched != "betx" {
		t.Errorf("Store search = %q, expected betx", searched)
	}

	h.HandleEvent(tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone))
	if h.query != "bet" {
		t.Errorf("Backspace left %q", h.query)
	}
}

func TestQuitKeys(t *testing.T) {
	h, _ := newTestHost(t)

	h.HandleEvent(key('z'))
	if !h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Fatal("Escape with a query should only clear it")
	}
	if h.query != "" {
		t.Errorf("Query = %q after escape", h.query)
	}
	if h.HandleEvent(key('q')) {
		t.Error("q without a query should quit")
	}
	if h.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Escape without a query should quit")
	}
}

func TestScrollKeys(t *testing.T) {
	h, _ := newTestHost(t)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	if h.top != 7 {
		t.Errorf("top = %d after page down, expected 7", h.top)
	}
	h.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone))
	if h.top != 6 {
		t.Errorf("top = %d after up, expected 6", h.top)
	}
}

func TestRunQuitsOnKey(t *testing.T) {
	h, screen := newTestHost(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
}

func TestRunReleasesWatcherOnQuit(t *testing.T) {
	h, screen := newTestHost(t)

	// ctx stays live: quitting alone must stop the cancellation watcher
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	before := runtime.NumGoroutine()
	if err := screen.PostEvent(key('q')); err != nil {
		t.Fatalf("PostEvent() error: %v", err)
	}
	if err := h.Run(ctx); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	deadline := time.Now().Add(time.Second)
	for runtime.NumGoroutine() > before {
		if time.Now().After(deadline) {
			t.Fatalf("Goroutines = %d after Run, expected at most %d", runtime.NumGoroutine(), before)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
