package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/niagarahome/launcher/internal/model"
)

// LetterPopup is the floating bubble showing the letter under the finger
type LetterPopup struct {
	widget.BaseWidget

	letter model.Letter
}

// NewLetterPopup creates a hidden popup
func NewLetterPopup() *LetterPopup {
	p := &LetterPopup{}
	p.ExtendBaseWidget(p)
	p.Resize(fyne.NewSquareSize(PopupSize))
	p.Hide()
	return p
}

// ShowLetter shows letter with its vertical center at centerY and its right
// edge at right, both in the parent's coordinates
func (p *LetterPopup) ShowLetter(letter model.Letter, right, centerY float32) {
	p.letter = letter
	p.Move(fyne.NewPos(right-PopupSize, centerY-PopupSize/2))
	p.Show()
	p.Refresh()
}

// Letter returns the letter last shown
func (p *LetterPopup) Letter() model.Letter {
	return p.letter
}

// CreateRenderer implements fyne.Widget
func (p *LetterPopup) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNamePrimary))
	bg.CornerRadius = PopupRadius
	text := canvas.NewText("", theme.Color(theme.ColorNameBackground))
	text.TextSize = PopupText
	text.TextStyle = fyne.TextStyle{Bold: true}
	text.Alignment = fyne.TextAlignCenter
	return &popupRenderer{popup: p, bg: bg, text: text}
}

type popupRenderer struct {
	popup *LetterPopup
	bg    *canvas.Rectangle
	text  *canvas.Text
}

func (r *popupRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	ts := r.text.MinSize()
	r.text.Move(fyne.NewPos((size.Width-ts.Width)/2, (size.Height-ts.Height)/2))
	r.text.Resize(ts)
}

func (r *popupRenderer) MinSize() fyne.Size {
	return fyne.NewSquareSize(PopupSize)
}

func (r *popupRenderer) Refresh() {
	r.text.Text = r.popup.letter.String()
	r.Layout(r.popup.Size())
	canvas.Refresh(r.bg)
	canvas.Refresh(r.text)
}

func (r *popupRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.text}
}

func (r *popupRenderer) Destroy() {}
