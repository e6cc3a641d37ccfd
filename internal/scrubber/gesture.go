package scrubber

import (
	"github.com/niagarahome/launcher/internal/model"
)

// Mode is the interpretation of vertical movement during a gesture
type Mode int

const (
	// ModeSnap selects whole letter buckets
	ModeSnap Mode = iota
	// ModeFine maps the vertical position onto the whole list
	ModeFine
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeSnap:
		return "Snap"
	case ModeFine:
		return "Fine"
	default:
		return "Unknown"
	}
}

// Point is a position in strip-local coordinates
type Point struct {
	X, Y float32
}

// Session is the transient state between pointer-down and pointer-up
type Session struct {
	Active       bool
	Mode         Mode
	Touch        Point
	PullDistance float32
	PullFraction float32
	// Selected is the bucket under the pointer, -1 for none
	Selected int

	selectedLetter model.Letter
	tunables       Tunables
}

// Tunables returns the tunables frozen at pointer-down
func (s Session) Tunables() Tunables {
	return s.tunables
}

func idleSession() Session {
	return Session{Selected: -1}
}

// Controller is the pointer state machine of the strip. It turns raw
// pointer events into selection, fine-scroll, preview and haptic events.
//
// Tunables are captured at pointer-down and stay fixed for the whole
// gesture; SetTunables during a drag takes effect at the next pointer-down.
// Geometry is read live so a relayout mid-drag is honored.
type Controller struct {
	index    *LetterIndex
	geometry Geometry
	tunables Tunables
	session  Session
	emit     func(Event)
}

// NewController creates a controller publishing through emit
func NewController(emit func(Event)) *Controller {
	if emit == nil {
		emit = func(Event) {}
	}
	return &Controller{
		tunables: DefaultTunables(),
		session:  idleSession(),
		emit:     emit,
	}
}

// Session returns a copy of the current gesture session
func (c *Controller) Session() Session {
	return c.session
}

// SetGeometry updates the strip geometry
func (c *Controller) SetGeometry(g Geometry) {
	c.geometry = g
}

// SetTunables replaces the tunables used from the next pointer-down on
func (c *Controller) SetTunables(t Tunables) {
	c.tunables = t
}

// SetIndex swaps in a rebuilt letter index. When a gesture is in flight the
// selection follows its letter to the new bucket, or is dropped if the
// letter vanished.
func (c *Controller) SetIndex(ix *LetterIndex) {
	c.index = ix
	if !c.session.Active || c.session.Selected < 0 {
		return
	}
	c.session.Selected = ix.BucketOf(c.session.selectedLetter)
	if c.session.Selected < 0 {
		c.session.selectedLetter = 0
	}
}

// Down starts a new gesture at (x, y)
func (c *Controller) Down(x, y float32) {
	c.session = idleSession()
	c.session.Active = true
	c.session.tunables = c.tunables
	c.track(x, y)

	if c.index.Len() == 0 {
		c.session.Mode = c.modeFor(ModeSnap)
		return
	}
	if c.modeFor(ModeSnap) == ModeFine {
		c.session.Mode = ModeFine
		c.fine(true)
		return
	}
	c.snap(true)
}

// Move updates the gesture with a new pointer position
func (c *Controller) Move(x, y float32) {
	if !c.session.Active {
		return
	}
	c.track(x, y)

	next := c.modeFor(c.session.Mode)
	entered := next != c.session.Mode
	c.session.Mode = next

	if c.index.Len() == 0 {
		return
	}
	switch next {
	case ModeFine:
		c.fine(entered)
	default:
		c.snap(entered)
	}
}

// Up ends the gesture. It is a no-op without an active gesture.
func (c *Controller) Up() {
	if !c.session.Active {
		return
	}
	c.session = idleSession()
	c.emit(PreviewHidden{})
}

// Cancel aborts the gesture; it behaves exactly like Up
func (c *Controller) Cancel() {
	c.Up()
}

func (c *Controller) track(x, y float32) {
	t := c.session.tunables
	c.session.Touch = Point{X: x, Y: y}
	c.session.PullDistance = PullDistance(x, t.TouchMargin)
	c.session.PullFraction = PullFraction(x, t.TouchMargin, t.PullThreshold)
}

// modeFor applies the enter/exit thresholds to the current pull fraction
func (c *Controller) modeFor(current Mode) Mode {
	t := c.session.tunables
	pf := c.session.PullFraction
	if current == ModeFine {
		if pf <= t.exitThreshold() {
			return ModeSnap
		}
		return ModeFine
	}
	if pf > t.FineModeThreshold {
		return ModeFine
	}
	return ModeSnap
}

func (c *Controller) bucket() int {
	g := c.geometry
	return BucketIndex(c.session.Touch.Y, g.TopInset, g.BottomInset, g.Height, c.index.Len())
}

func (c *Controller) selectBucket(b int) (model.Letter, bool) {
	letter, ok := c.index.At(b)
	c.session.Selected = b
	c.session.selectedLetter = letter
	return letter, ok
}

// snap emits selection feedback when the bucket changed or force is set
func (c *Controller) snap(force bool) {
	b := c.bucket()
	if !force && b == c.session.Selected {
		return
	}
	letter, ok := c.selectBucket(b)
	if ok {
		pos, _ := c.index.Position(letter)
		c.emit(LetterSelected{Letter: letter, Position: pos})
	}
	c.preview(b, letter, ok)
}

// fine emits the scroll fraction on every move and preview feedback when
// the bucket changed or the mode was just entered
func (c *Controller) fine(entered bool) {
	g := c.geometry
	c.emit(FineScroll{Fraction: VerticalFraction(c.session.Touch.Y, g.TopInset, g.Height)})

	b := c.bucket()
	if !entered && b == c.session.Selected {
		return
	}
	letter, ok := c.selectBucket(b)
	c.preview(b, letter, ok)
}

func (c *Controller) preview(b int, letter model.Letter, ok bool) {
	g := c.geometry
	c.emit(PreviewShown{
		Letter:    letter,
		HasLetter: ok,
		AnchorY:   BucketCenter(b, g.TopInset, g.BottomInset, g.Height, c.index.Len()),
	})
	c.emit(HapticTick{})
}
