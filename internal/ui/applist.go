package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/niagarahome/launcher/internal/model"
)

// newRowTemplate creates the list item used for every row kind
func newRowTemplate() fyne.CanvasObject {
	label := widget.NewLabel("")
	label.Truncation = fyne.TextTruncateEllipsis
	return label
}

// updateRowItem renders row into a template created by newRowTemplate
func updateRowItem(row model.Row, item fyne.CanvasObject, loc *Localization) {
	label := item.(*widget.Label)
	switch row.Kind {
	case model.RowHeader:
		label.TextStyle = fyne.TextStyle{Bold: true}
		label.Importance = widget.HighImportance
		label.SetText(row.Letter.String())
	case model.RowStoreSearch:
		label.TextStyle = fyne.TextStyle{Italic: true}
		label.Importance = widget.MediumImportance
		label.SetText(IconStore + " " + fmt.Sprintf(loc.GetText(KeySearchStore), row.Query))
	default:
		label.TextStyle = fyne.TextStyle{}
		label.Importance = widget.MediumImportance
		label.SetText(row.App.Label)
	}
}

// listContentHeight is the scrollable height of a list with rows items of
// rowHeight separated by separator
func listContentHeight(rows int, rowHeight, separator float32) float32 {
	if rows <= 0 {
		return 0
	}
	return float32(rows)*rowHeight + float32(rows-1)*separator
}

// fineScrollOffset maps a fine scroll fraction to an absolute list offset
func fineScrollOffset(fraction, contentHeight, viewportHeight float32) float32 {
	scrollable := contentHeight - viewportHeight
	if scrollable <= 0 {
		return 0
	}
	fraction = min(max(fraction, 0), 1)
	return fraction * scrollable
}
