package scrubber

import (
	"fmt"

	"github.com/niagarahome/launcher/internal/model"
)

// Event is published by the Scrubber to its subscribers. The concrete types
// are LetterSelected, FineScroll, PreviewShown, PreviewHidden and HapticTick.
type Event interface {
	isEvent()
}

// LetterSelected asks the host to bring the first row of Letter into view.
// Position is that row's index in the sequence last passed to SetItems.
type LetterSelected struct {
	Letter   model.Letter
	Position int
}

// FineScroll asks the host to scroll absolutely to Fraction of its range
type FineScroll struct {
	Fraction float32
}

// PreviewShown positions the floating letter popup. HasLetter is false when
// the touched bucket has no letter, which the host treats as hide.
type PreviewShown struct {
	Letter    model.Letter
	HasLetter bool
	AnchorY   float32
}

// PreviewHidden hides the floating letter popup
type PreviewHidden struct{}

// HapticTick requests one short feedback pulse
type HapticTick struct{}

func (LetterSelected) isEvent() {}
func (FineScroll) isEvent()     {}
func (PreviewShown) isEvent()   {}
func (PreviewHidden) isEvent()  {}
func (HapticTick) isEvent()     {}

func (e LetterSelected) String() string {
	return fmt.Sprintf("LetterSelected(%s@%d)", e.Letter, e.Position)
}

func (e FineScroll) String() string {
	return fmt.Sprintf("FineScroll(%.3f)", e.Fraction)
}

func (e PreviewShown) String() string {
	if !e.HasLetter {
		return fmt.Sprintf("PreviewShown(none, %.1f)", e.AnchorY)
	}
	return fmt.Sprintf("PreviewShown(%s, %.1f)", e.Letter, e.AnchorY)
}

func (PreviewHidden) String() string { return "PreviewHidden()" }
func (HapticTick) String() string    { return "HapticTick()" }

// Handler receives published events
type Handler func(Event)

// emitter is an ordered list of subscribers
type emitter struct {
	nextID   int
	handlers []subscription
}

type subscription struct {
	id int
	fn Handler
}

// subscribe registers fn and returns a function removing it again
func (e *emitter) subscribe(fn Handler) func() {
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, subscription{id: id, fn: fn})
	return func() { e.unsubscribe(id) }
}

func (e *emitter) unsubscribe(id int) {
	for i, s := range e.handlers {
		if s.id == id {
			// copy so an in-flight emit keeps iterating its own slice
			next := make([]subscription, 0, len(e.handlers)-1)
			next = append(next, e.handlers[:i]...)
			e.handlers = append(next, e.handlers[i+1:]...)
			return
		}
	}
}

func (e *emitter) emit(ev Event) {
	for _, s := range e.handlers {
		s.fn(ev)
	}
}
