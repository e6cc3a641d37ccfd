package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/niagarahome/launcher/internal/scrubber"
)

var (
	_ fyne.Widget       = (*AlphabetStrip)(nil)
	_ fyne.Draggable    = (*AlphabetStrip)(nil)
	_ desktop.Mouseable = (*AlphabetStrip)(nil)
	_ mobile.Touchable  = (*AlphabetStrip)(nil)
)

// AlphabetStrip draws the letter strip and feeds pointer input to a
// Scrubber. The widget spans the touch margin plus the visible pill; its
// local coordinates are the scrubber's coordinates.
type AlphabetStrip struct {
	widget.BaseWidget

	scrubber   *scrubber.Scrubber
	stripWidth float32
	vPadding   float32

	flash     float32
	flashAnim *fyne.Animation
}

// NewAlphabetStrip creates a strip bound to s
func NewAlphabetStrip(s *scrubber.Scrubber, stripWidth, vPadding float32) *AlphabetStrip {
	a := &AlphabetStrip{
		scrubber:   s,
		stripWidth: stripWidth,
		vPadding:   vPadding,
	}
	a.ExtendBaseWidget(a)
	return a
}

// SetStripSize updates the pill width and the vertical padding
func (a *AlphabetStrip) SetStripSize(stripWidth, vPadding float32) {
	a.stripWidth = stripWidth
	a.vPadding = vPadding
	a.Refresh()
}

// Flash briefly highlights the pill as haptic feedback
func (a *AlphabetStrip) Flash() {
	if a.flashAnim != nil {
		a.flashAnim.Stop()
	}
	a.flash = 1
	a.flashAnim = fyne.NewAnimation(HapticFlashDuration, func(progress float32) {
		a.flash = 1 - progress
		a.Refresh()
	})
	a.flashAnim.Start()
}

// MouseDown starts a gesture with the primary button
func (a *AlphabetStrip) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	a.down(ev.Position)
}

// MouseUp ends the gesture
func (a *AlphabetStrip) MouseUp(_ *desktop.MouseEvent) {
	a.up()
}

// Dragged moves the gesture; positions left of the widget keep pulling
func (a *AlphabetStrip) Dragged(ev *fyne.DragEvent) {
	a.scrubber.Move(ev.Position.X, ev.Position.Y)
	a.Refresh()
}

// DragEnd ends the gesture
func (a *AlphabetStrip) DragEnd() {
	a.up()
}

// TouchDown starts a gesture
func (a *AlphabetStrip) TouchDown(ev *mobile.TouchEvent) {
	a.down(ev.Position)
}

// TouchUp ends the gesture
func (a *AlphabetStrip) TouchUp(_ *mobile.TouchEvent) {
	a.up()
}

// TouchCancel aborts the gesture
func (a *AlphabetStrip) TouchCancel(_ *mobile.TouchEvent) {
	a.scrubber.Cancel()
	a.Refresh()
}

func (a *AlphabetStrip) down(pos fyne.Position) {
	a.scrubber.Down(pos.X, pos.Y)
	a.Refresh()
}

func (a *AlphabetStrip) up() {
	a.scrubber.Up()
	a.Refresh()
}

// touchMargin is the width of the invisible area left of the pill
func (a *AlphabetStrip) touchMargin() float32 {
	return a.scrubber.Tunables().TouchMargin
}

// CreateRenderer implements fyne.Widget
func (a *AlphabetStrip) CreateRenderer() fyne.WidgetRenderer {
	pill := canvas.NewRectangle(color.Transparent)
	r := &stripRenderer{strip: a, pill: pill}
	r.Refresh()
	return r
}

type stripRenderer struct {
	strip   *AlphabetStrip
	pill    *canvas.Rectangle
	letters []*canvas.Text
	size    fyne.Size
}

func (r *stripRenderer) Layout(size fyne.Size) {
	r.size = size
	a := r.strip
	a.scrubber.SetGeometry(scrubber.Geometry{
		Width:       size.Width,
		Height:      size.Height,
		TopInset:    a.vPadding,
		BottomInset: a.vPadding,
	})
	r.layoutLetters()
}

func (r *stripRenderer) MinSize() fyne.Size {
	a := r.strip
	return fyne.NewSize(a.touchMargin()+a.stripWidth, 2*a.vPadding+MinTouchTargetSize)
}

func (r *stripRenderer) Refresh() {
	r.syncLetters()
	r.layoutLetters()
	canvas.Refresh(r.pill)
	for _, t := range r.letters {
		canvas.Refresh(t)
	}
}

func (r *stripRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.letters)+1)
	objects = append(objects, r.pill)
	for _, t := range r.letters {
		objects = append(objects, t)
	}
	return objects
}

func (r *stripRenderer) Destroy() {}

// syncLetters keeps one text object per strip letter
func (r *stripRenderer) syncLetters() {
	letters := r.strip.scrubber.Letters()
	for len(r.letters) < len(letters) {
		t := canvas.NewText("", theme.Color(theme.ColorNameForeground))
		t.Alignment = fyne.TextAlignCenter
		t.TextStyle = fyne.TextStyle{Bold: true}
		r.letters = append(r.letters, t)
	}
	r.letters = r.letters[:len(letters)]
	for i, l := range letters {
		r.letters[i].Text = l.String()
	}
}

func (r *stripRenderer) layoutLetters() {
	a := r.strip
	margin := a.touchMargin()

	r.pill.CornerRadius = a.stripWidth / 2
	r.pill.FillColor = pillColor(a.flash)
	r.pill.Move(fyne.NewPos(margin, 0))
	r.pill.Resize(fyne.NewSize(a.stripWidth, r.size.Height))

	// Deformation runs against the geometry reported by Layout
	instructions := a.scrubber.Instructions()
	base := theme.TextSize() * StripLetterTextRatio
	for i, tr := range instructions {
		if i >= len(r.letters) {
			break
		}
		t := r.letters[i]
		t.TextSize = base * tr.Scale
		if tr.Selected {
			t.Color = theme.Color(theme.ColorNamePrimary)
		} else {
			t.Color = theme.Color(theme.ColorNameForeground)
		}
		ts := t.MinSize()
		x := margin + a.stripWidth/2 - ts.Width/2 + tr.OffsetX
		t.Move(fyne.NewPos(x, tr.CenterY-ts.Height/2))
		t.Resize(ts)
	}
}

// pillColor blends the pill background with the haptic flash intensity
func pillColor(flash float32) color.Color {
	r, g, b, _ := theme.Color(theme.ColorNamePrimary).RGBA()
	alpha := float32(StripPillAlpha) + (float32(StripFlashAlpha)-float32(StripPillAlpha))*flash
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(alpha)}
}
