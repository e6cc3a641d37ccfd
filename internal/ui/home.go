package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	_ fyne.Draggable   = (*HomePage)(nil)
	_ mobile.Touchable = (*HomePage)(nil)
)

// HomePage is the wallpaper screen with the clock. Swiping up opens the app
// list.
type HomePage struct {
	widget.BaseWidget

	gestures *GestureHandler
	clock    *canvas.Text
	date     *canvas.Text
	hint     *widget.Label
	padding  float32
}

// NewHomePage creates the home page; onGesture receives detected gestures
func NewHomePage(hint string, padding float32, onGesture func(GestureType)) *HomePage {
	h := &HomePage{
		gestures: NewGestureHandler(onGesture),
		clock:    canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		date:     canvas.NewText("", theme.Color(theme.ColorNameForeground)),
		hint:     widget.NewLabel(hint),
		padding:  padding,
	}
	h.clock.TextSize = HomeClockTextSize
	h.clock.TextStyle = fyne.TextStyle{Bold: true}
	h.date.TextSize = HomeDateTextSize
	h.hint.Alignment = fyne.TextAlignCenter
	h.hint.Importance = widget.LowImportance
	h.ExtendBaseWidget(h)
	h.UpdateClock(time.Now())
	return h
}

// UpdateClock shows now
func (h *HomePage) UpdateClock(now time.Time) {
	h.clock.Text = now.Format(ClockFormat)
	h.date.Text = now.Format(DateFormat)
	h.clock.Refresh()
	h.date.Refresh()
}

// SetHint replaces the swipe hint text
func (h *HomePage) SetHint(hint string) {
	h.hint.SetText(hint)
}

// TouchDown implements mobile.Touchable
func (h *HomePage) TouchDown(ev *mobile.TouchEvent) { h.gestures.TouchDown(ev) }

// TouchUp implements mobile.Touchable
func (h *HomePage) TouchUp(ev *mobile.TouchEvent) { h.gestures.TouchUp(ev) }

// TouchCancel implements mobile.Touchable
func (h *HomePage) TouchCancel(ev *mobile.TouchEvent) { h.gestures.TouchCancel(ev) }

// Dragged implements fyne.Draggable
func (h *HomePage) Dragged(ev *fyne.DragEvent) { h.gestures.Dragged(ev) }

// DragEnd implements fyne.Draggable
func (h *HomePage) DragEnd() { h.gestures.DragEnd() }

// CreateRenderer implements fyne.Widget
func (h *HomePage) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewPadded(container.NewVBox(
		h.clock,
		h.date,
		layout.NewSpacer(),
		h.hint,
	))
	if h.padding > 0 {
		content = container.New(layout.NewCustomPaddedLayout(h.padding, h.padding, h.padding, h.padding), content)
	}
	return widget.NewSimpleRenderer(content)
}
