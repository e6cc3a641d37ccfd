package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"
)

func TestClassifyGesture(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float32
		duration time.Duration
		expected GestureType
	}{
		{"tap", 3, 4, 100 * time.Millisecond, GestureTap},
		{"long press", 0, 10, time.Second, GestureLongPress},
		{"swipe up", 10, -200, 200 * time.Millisecond, GestureSwipeUp},
		{"swipe down", -5, 120, 200 * time.Millisecond, GestureSwipeDown},
		{"swipe left", -90, 20, 200 * time.Millisecond, GestureSwipeLeft},
		{"swipe right", 90, -20, 200 * time.Millisecond, GestureSwipeRight},
		{"slow swipe is still a swipe", 0, -200, 2 * time.Second, GestureSwipeUp},
	}

	for _, test := range tests {
		got := classifyGesture(test.dx, test.dy, test.duration, DefaultSwipeThreshold, DefaultLongPressDuration)
		if got != test.expected {
			t.Errorf("%s: classifyGesture() = %s, expected %s", test.name, got, test.expected)
		}
	}
}

func touchAt(x, y float32) *mobile.TouchEvent {
	return &mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)}}
}

func TestGestureHandler_Touch(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.TouchDown(touchAt(100, 400))
	gh.TouchUp(touchAt(100, 100))
	// A trailing DragEnd for the same contact is ignored
	gh.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeUp {
		t.Errorf("Expected a single swipe up, got %v", got)
	}
}

func TestGestureHandler_Drag(t *testing.T) {
	var got []GestureType
	gh := NewGestureHandler(func(g GestureType) { got = append(got, g) })

	gh.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 290)},
		Dragged:    fyne.NewDelta(0, -10),
	})
	gh.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(50, 120)},
		Dragged:    fyne.NewDelta(0, -170),
	})
	gh.DragEnd()

	if len(got) != 1 || got[0] != GestureSwipeUp {
		t.Errorf("Expected a single swipe up, got %v", got)
	}
}

func TestGestureHandler_Cancel(t *testing.T) {
	called := false
	gh := NewGestureHandler(func(GestureType) { called = true })

	gh.TouchDown(touchAt(0, 300))
	gh.TouchCancel(touchAt(0, 0))
	gh.TouchUp(touchAt(0, 0))

	if called {
		t.Error("Cancelled touch should not produce a gesture")
	}
}
