package ui

import (
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// String returns the gesture name
func (g GestureType) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureSwipeLeft:
		return "swipe-left"
	case GestureSwipeRight:
		return "swipe-right"
	case GestureSwipeUp:
		return "swipe-up"
	case GestureSwipeDown:
		return "swipe-down"
	case GestureLongPress:
		return "long-press"
	default:
		return "unknown"
	}
}

// Gesture thresholds constants
const (
	DefaultSwipeThreshold    float32 = 50.0
	DefaultLongPressDuration         = 500 * time.Millisecond
)

// GestureHandler turns a touch or a mouse drag into a single gesture. Touch
// and drag events may both arrive for one contact; the first end wins.
type GestureHandler struct {
	onGesture func(GestureType)

	// Touch tracking
	tracking       bool
	touchStartTime time.Time
	touchStartPos  fyne.Position
	lastPos        fyne.Position

	// Gesture thresholds
	swipeThreshold    float32
	longPressDuration time.Duration
}

// NewGestureHandler creates a new gesture handler
func NewGestureHandler(onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		onGesture:         onGesture,
		swipeThreshold:    DefaultSwipeThreshold,
		longPressDuration: DefaultLongPressDuration,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.begin(event.Position)
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	gh.end(event.Position)
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(_ *mobile.TouchEvent) {
	gh.tracking = false
}

// Dragged tracks mouse drags; the first drag event starts tracking
func (gh *GestureHandler) Dragged(event *fyne.DragEvent) {
	if !gh.tracking {
		gh.begin(event.Position.Subtract(event.Dragged))
	}
	gh.lastPos = event.Position
}

// DragEnd finishes a mouse drag
func (gh *GestureHandler) DragEnd() {
	gh.end(gh.lastPos)
}

func (gh *GestureHandler) begin(pos fyne.Position) {
	gh.tracking = true
	gh.touchStartTime = time.Now()
	gh.touchStartPos = pos
	gh.lastPos = pos
}

func (gh *GestureHandler) end(pos fyne.Position) {
	if !gh.tracking {
		return
	}
	gh.tracking = false

	dx := pos.X - gh.touchStartPos.X
	dy := pos.Y - gh.touchStartPos.Y
	gh.triggerGesture(classifyGesture(dx, dy, time.Since(gh.touchStartTime), gh.swipeThreshold, gh.longPressDuration))
}

// classifyGesture detects the gesture for a contact that moved (dx, dy)
// over duration
func classifyGesture(dx, dy float32, duration time.Duration, swipeThreshold float32, longPress time.Duration) GestureType {
	distance := float32(math.Hypot(float64(dx), float64(dy)))

	if distance < swipeThreshold {
		if duration >= longPress {
			return GestureLongPress
		}
		return GestureTap
	}

	// Determine primary direction
	if abs32(dx) > abs32(dy) {
		if dx > 0 {
			return GestureSwipeRight
		}
		return GestureSwipeLeft
	}
	if dy > 0 {
		return GestureSwipeDown
	}
	return GestureSwipeUp
}

// triggerGesture triggers a gesture callback
func (gh *GestureHandler) triggerGesture(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
