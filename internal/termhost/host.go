package termhost

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/niagarahome/launcher/internal/catalog"
	"github.com/niagarahome/launcher/internal/model"
	"github.com/niagarahome/launcher/internal/platform"
	"github.com/niagarahome/launcher/internal/scrubber"
)

// DPPerCell converts dp tunables to terminal cells horizontally
const DPPerCell = 8

// Status line texts
const (
	hintText      = "type to search · drag the strip · esc quits"
	storeRowText  = "Search store for \"%s\""
	ellipsis      = "…"
	loadTimeout   = 5 * time.Second
	previewWidth  = 3
	previewMargin = 1
)

// reloadSignal asks the event loop to reload the catalog
type reloadSignal struct{}

// CellTunables scales dp lengths to cells. Fractions and scales are kept.
func CellTunables(t scrubber.Tunables) scrubber.Tunables {
	t.PullThreshold /= DPPerCell
	t.TouchMargin = float32(math.Round(float64(t.TouchMargin / DPPerCell)))
	t.BulgeMargin /= DPPerCell
	return t
}

// Host renders the app list and alphabet strip on a terminal screen. The list
// occupies the left columns, the strip the rightmost column, the last line is
// the search prompt. Terminal cells are the scrubber's pixel unit.
type Host struct {
	screen   tcell.Screen
	source   catalog.Source
	scrubber *scrubber.Scrubber

	apps  []model.App
	rows  []model.Row
	query string
	top   int

	stripX  int // left edge of the touch margin
	buttons tcell.ButtonMask

	preview      model.Letter
	previewY     int
	previewOn    bool
	flash        bool
	status       string
	unsubscribes []func()

	// Launchers, replaceable in tests
	launch    func(target string) error
	openStore func(query string) error
}

// New creates a host on an initialized screen. t is given in dp.
func New(screen tcell.Screen, source catalog.Source, t scrubber.Tunables) *Host {
	h := &Host{
		screen:    screen,
		source:    source,
		scrubber:  scrubber.New(CellTunables(t)),
		launch:    platform.Launch,
		openStore: platform.OpenStoreSearch,
	}
	h.unsubscribes = append(h.unsubscribes,
		h.scrubber.Subscribe(h.onScrubberEvent),
		source.Subscribe(func() {
			_ = screen.PostEvent(tcell.NewEventInterrupt(reloadSignal{}))
		}),
	)
	return h
}

// Close releases subscriptions
func (h *Host) Close() {
	for _, unsubscribe := range h.unsubscribes {
		unsubscribe()
	}
	h.unsubscribes = nil
}

// Reload fetches the catalog and rebuilds the rows
func (h *Host) Reload(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	apps, err := h.source.Apps(ctx)
	if err != nil {
		return fmt.Errorf("failed to load apps: %w", err)
	}
	h.apps = apps
	h.applyQuery()
	return nil
}

// Run draws and handles events until quit or ctx is done
func (h *Host) Run(ctx context.Context) error {
	if err := h.Reload(ctx); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = h.screen.PostEvent(tcell.NewEventInterrupt(ctx.Err()))
		case <-done:
		}
	}()

	for {
		h.Draw()
		ev := h.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if interrupt, ok := ev.(*tcell.EventInterrupt); ok {
			if _, reload := interrupt.Data().(reloadSignal); reload {
				if err := h.Reload(ctx); err != nil {
					log.Printf("Reload failed: %v", err)
					h.status = err.Error()
				}
				continue
			}
			return nil
		}
		if !h.HandleEvent(ev) {
			return nil
		}
	}
}

// HandleEvent processes one terminal event. It returns false to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.layout()
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEscape:
		if h.query == "" {
			return false
		}
		h.setQuery("")
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if q := []rune(h.query); len(q) > 0 {
			h.setQuery(string(q[:len(q)-1]))
		}
	case tcell.KeyEnter:
		h.submit()
	case tcell.KeyUp:
		h.scrollTo(h.top - 1)
	case tcell.KeyDown:
		h.scrollTo(h.top + 1)
	case tcell.KeyPgUp:
		h.scrollTo(h.top - h.listHeight())
	case tcell.KeyPgDn:
		h.scrollTo(h.top + h.listHeight())
	case tcell.KeyRune:
		if h.query == "" && ev.Rune() == 'q' {
			return false
		}
		h.setQuery(h.query + string(ev.Rune()))
	}
	return true
}

// handleMouse maps primary button transitions to strip gestures. A press in
// the list launches the row under it.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	h.layout()
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasPressed := h.buttons&tcell.Button1 != 0
	h.buttons = ev.Buttons()

	// Cell centers keep bucket boundaries symmetric
	lx := float32(x-h.stripX) + 0.5
	ly := float32(y) + 0.5

	switch {
	case pressed && !wasPressed:
		if h.stripVisible() && x >= h.stripX {
			h.scrubber.Down(lx, ly)
			return
		}
		h.activateRow(y)
	case pressed && wasPressed:
		h.scrubber.Move(lx, ly)
	case !pressed && wasPressed:
		h.scrubber.Up()
	}
}

func (h *Host) activateRow(y int) {
	i := h.top + y
	if y >= h.listHeight() || i < 0 || i >= len(h.rows) {
		return
	}
	row := h.rows[i]
	switch row.Kind {
	case model.RowApp:
		h.launchApp(row.App)
	case model.RowStoreSearch:
		h.searchStore(row.Query)
	}
}

// submit launches the first match, or searches the store without matches
func (h *Host) submit() {
	for _, row := range h.rows {
		if row.Kind == model.RowApp {
			h.launchApp(row.App)
			return
		}
	}
	if h.query != "" {
		h.searchStore(h.query)
	}
}

func (h *Host) launchApp(app model.App) {
	if err := h.launch(app.Target); err != nil {
		log.Printf("Failed to launch %s: %v", app.Label, err)
		h.status = err.Error()
		return
	}
	h.status = "launched " + app.Label
}

func (h *Host) searchStore(query string) {
	if err := h.openStore(query); err != nil {
		log.Printf("Failed to open store search for %q: %v", query, err)
		h.status = err.Error()
	}
}

func (h *Host) setQuery(q string) {
	h.query = q
	h.applyQuery()
}

// applyQuery rebuilds the rows and hands them to the scrubber
func (h *Host) applyQuery() {
	if h.query == "" {
		h.rows = model.BuildRows(h.apps)
	} else {
		h.rows = catalog.SearchRows(h.apps, h.query)
	}
	h.scrubber.Cancel()
	h.scrubber.SetItems(model.Entries(h.rows))
	h.top = 0
	h.previewOn = false
}

func (h *Host) stripVisible() bool {
	return h.query == ""
}

func (h *Host) onScrubberEvent(ev scrubber.Event) {
	switch e := ev.(type) {
	case scrubber.LetterSelected:
		h.scrollTo(e.Position)
	case scrubber.FineScroll:
		h.scrollTo(int(math.Round(float64(e.Fraction) * float64(h.maxTop()))))
	case scrubber.PreviewShown:
		h.previewOn = e.HasLetter
		h.preview = e.Letter
		h.previewY = int(e.AnchorY)
	case scrubber.PreviewHidden:
		h.previewOn = false
	case scrubber.HapticTick:
		h.flash = true
	}
}

func (h *Host) listHeight() int {
	_, height := h.screen.Size()
	return max(height-1, 0)
}

func (h *Host) maxTop() int {
	return max(len(h.rows)-h.listHeight(), 0)
}

func (h *Host) scrollTo(top int) {
	h.top = min(max(top, 0), h.maxTop())
}

// layout reports the strip geometry for the current screen size
func (h *Host) layout() {
	width, _ := h.screen.Size()
	margin := int(h.scrubber.Tunables().TouchMargin)
	h.stripX = max(width-margin-1, 0)
	h.scrubber.SetGeometry(scrubber.Geometry{
		Width:  float32(width - h.stripX),
		Height: float32(h.listHeight()),
	})
}

// Draw renders the whole screen
func (h *Host) Draw() {
	h.layout()
	h.screen.Clear()
	width, height := h.screen.Size()

	listWidth := width
	if h.stripVisible() {
		listWidth = h.stripX
	}
	for y := 0; y < h.listHeight(); y++ {
		i := h.top + y
		if i >= len(h.rows) {
			break
		}
		text, style := h.rowText(h.rows[i])
		drawString(h.screen, 0, y, listWidth-1, text, style)
	}

	if h.stripVisible() {
		h.drawStrip(width)
	}

	prompt := "/" + h.query
	if h.query == "" {
		prompt = hintText
	}
	if h.status != "" {
		prompt += "  [" + h.status + "]"
	}
	drawString(h.screen, 0, height-1, width, prompt, tcell.StyleDefault.Dim(h.query == ""))
	h.screen.Show()
}

func (h *Host) rowText(row model.Row) (string, tcell.Style) {
	switch row.Kind {
	case model.RowHeader:
		return row.Letter.String(), tcell.StyleDefault.Bold(true).Underline(true)
	case model.RowStoreSearch:
		return "  " + fmt.Sprintf(storeRowText, row.Query), tcell.StyleDefault.Italic(true)
	default:
		return "  " + row.App.Label, tcell.StyleDefault
	}
}

func (h *Host) drawStrip(width int) {
	pillX := width - 1
	pill := tcell.StyleDefault.Reverse(h.flash)
	h.flash = false
	for y := 0; y < h.listHeight(); y++ {
		h.screen.SetContent(pillX, y, '│', nil, pill.Dim(true))
	}

	for _, tr := range h.scrubber.Instructions() {
		x := pillX + int(math.Round(float64(tr.OffsetX)))
		y := int(tr.CenterY)
		if x < 0 || y < 0 || y >= h.listHeight() {
			continue
		}
		style := tcell.StyleDefault.Bold(tr.Scale > 1.2)
		if tr.Selected {
			style = style.Reverse(true)
		}
		h.screen.SetContent(x, y, rune(tr.Letter), nil, style)
	}

	if h.previewOn {
		h.drawPreview()
	}
}

// drawPreview boxes the previewed letter left of the touch margin
func (h *Host) drawPreview() {
	x := h.stripX - previewWidth - previewMargin
	y := h.previewY - 1
	if x < 0 {
		return
	}
	box := [3]string{"┌─┐", "│" + h.preview.String() + "│", "└─┘"}
	for i, line := range box {
		if y+i < 0 || y+i >= h.listHeight() {
			continue
		}
		drawString(h.screen, x, y+i, previewWidth, line, tcell.StyleDefault.Bold(true))
	}
}

// drawString writes s at (x, y), truncated to width cells
func drawString(screen tcell.Screen, x, y, width int, s string, style tcell.Style) {
	if width <= 0 {
		return
	}
	s = runewidth.Truncate(s, width, ellipsis)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		screen.SetContent(x, y, r, nil, style)
		x += w
	}
}
