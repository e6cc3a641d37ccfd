package scrubber

import (
	"github.com/niagarahome/launcher/internal/model"
)

// Scrubber is the surface a host screen talks to. It owns the letter index
// of the currently displayed rows, forwards pointer events to the gesture
// controller and publishes the resulting events to subscribers.
//
// A Scrubber is not safe for concurrent use; drive it from the UI thread.
type Scrubber struct {
	controller *Controller
	index      *LetterIndex
	events     emitter
	itemCount  int
}

// New creates a scrubber with the given tunables and no items
func New(t Tunables) *Scrubber {
	s := &Scrubber{index: BuildIndex(nil)}
	s.controller = NewController(s.events.emit)
	s.controller.SetTunables(t)
	s.controller.SetIndex(s.index)
	return s
}

// Subscribe registers h for all published events, in registration order.
// The returned function unsubscribes h.
func (s *Scrubber) Subscribe(h Handler) func() {
	return s.events.subscribe(h)
}

// SetItems replaces the displayed sequence and rebuilds the letter index.
// It may be called during a gesture; a selection whose letter disappeared
// is dropped.
func (s *Scrubber) SetItems(entries []model.Entry) {
	s.index = BuildIndex(entries)
	s.itemCount = len(entries)
	s.controller.SetIndex(s.index)
}

// SetTunables updates the tunables; an in-flight gesture keeps its own copy
func (s *Scrubber) SetTunables(t Tunables) {
	s.controller.SetTunables(t)
}

// Tunables returns the tunables the next gesture will use
func (s *Scrubber) Tunables() Tunables {
	return s.controller.tunables
}

// SetGeometry reports the strip's current size and insets
func (s *Scrubber) SetGeometry(g Geometry) {
	s.controller.SetGeometry(g)
}

// Geometry returns the last reported strip geometry
func (s *Scrubber) Geometry() Geometry {
	return s.controller.geometry
}

// Down feeds a pointer-down in strip-local coordinates
func (s *Scrubber) Down(x, y float32) {
	s.controller.Down(x, y)
}

// Move feeds a pointer move in strip-local coordinates
func (s *Scrubber) Move(x, y float32) {
	s.controller.Move(x, y)
}

// Up feeds a pointer-up
func (s *Scrubber) Up() {
	s.controller.Up()
}

// Cancel feeds a pointer-cancel
func (s *Scrubber) Cancel() {
	s.controller.Cancel()
}

// Session returns a snapshot of the current gesture
func (s *Scrubber) Session() Session {
	return s.controller.Session()
}

// Letters returns the strip letters in display order
func (s *Scrubber) Letters() []model.Letter {
	return s.index.Letters()
}

// ItemCount returns the length of the sequence last passed to SetItems
func (s *Scrubber) ItemCount() int {
	return s.itemCount
}

// Position returns the first position of letter in the displayed sequence
func (s *Scrubber) Position(letter model.Letter) (int, bool) {
	return s.index.Position(letter)
}

// Instructions computes the render instructions for every strip letter
func (s *Scrubber) Instructions() []Transform {
	return Deform(s.controller.Session(), s.index.Letters(), s.controller.geometry)
}

// Deformation returns the draw-time offset and scale of letter. ok is false
// when the letter is not on the strip.
func (s *Scrubber) Deformation(letter model.Letter) (offsetX, scale float32, ok bool) {
	for _, tr := range s.Instructions() {
		if tr.Letter == letter {
			return tr.OffsetX, tr.Scale, true
		}
	}
	return 0, 1, false
}
