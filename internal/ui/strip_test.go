package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/niagarahome/launcher/internal/model"
	"github.com/niagarahome/launcher/internal/scrubber"
)

// newTestStrip lays out a strip of 4 letters in 25px slots: the touch
// margin is 24, the pill 32 wide and the vertical padding 10.
func newTestStrip(t *testing.T) (*AlphabetStrip, *[]scrubber.Event) {
	t.Helper()
	test.NewApp()

	s := scrubber.New(scrubber.DefaultTunables())
	s.SetItems([]model.Entry{
		{Letter: 'A', ID: "a"},
		{Letter: 'B', ID: "b"},
		{Letter: 'C', ID: "c"},
		{Letter: 'D', ID: "d"},
	})
	var events []scrubber.Event
	s.Subscribe(func(ev scrubber.Event) { events = append(events, ev) })

	strip := NewAlphabetStrip(s, 32, 10)
	test.WidgetRenderer(strip)
	strip.Resize(fyne.NewSize(56, 120))
	return strip, &events
}

func TestAlphabetStrip_ReportsGeometry(t *testing.T) {
	strip, _ := newTestStrip(t)

	g := strip.scrubber.Geometry()
	expected := scrubber.Geometry{Width: 56, Height: 120, TopInset: 10, BottomInset: 10}
	if g != expected {
		t.Errorf("Geometry = %+v, expected %+v", g, expected)
	}

	min := strip.MinSize()
	if min.Width != 56 {
		t.Errorf("MinSize width = %v, expected touch margin plus pill", min.Width)
	}
}

func TestAlphabetStrip_Objects(t *testing.T) {
	strip, _ := newTestStrip(t)

	objects := test.WidgetRenderer(strip).Objects()
	if len(objects) != 5 {
		t.Fatalf("Expected pill and 4 letters, got %d objects", len(objects))
	}
}

func TestAlphabetStrip_TouchGesture(t *testing.T) {
	strip, events := newTestStrip(t)

	strip.TouchDown(touchAt(40, 40))
	if len(*events) == 0 {
		t.Fatal("Touch down produced no events")
	}
	sel, ok := (*events)[0].(scrubber.LetterSelected)
	if !ok || sel.Letter != 'B' {
		t.Fatalf("First event = %v, expected LetterSelected(B)", (*events)[0])
	}

	*events = nil
	strip.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(-100, 60)}})
	if len(*events) == 0 {
		t.Fatal("Pulling left produced no events")
	}
	if _, ok := (*events)[0].(scrubber.FineScroll); !ok {
		t.Errorf("Expected FineScroll after pulling left, got %v", (*events)[0])
	}

	*events = nil
	strip.TouchUp(touchAt(-100, 60))
	strip.DragEnd()
	if len(*events) != 1 {
		t.Fatalf("Expected a single event on release, got %v", *events)
	}
	if _, ok := (*events)[0].(scrubber.PreviewHidden); !ok {
		t.Errorf("Expected PreviewHidden, got %v", (*events)[0])
	}
}

func TestAlphabetStrip_MouseButtons(t *testing.T) {
	strip, events := newTestStrip(t)

	strip.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 40)},
		Button:     desktop.MouseButtonSecondary,
	})
	if len(*events) != 0 {
		t.Errorf("Secondary button should be ignored, got %v", *events)
	}

	strip.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(40, 100)},
		Button:     desktop.MouseButtonPrimary,
	})
	if !strip.scrubber.Session().Active {
		t.Error("Primary button should start a gesture")
	}

	strip.MouseUp(&desktop.MouseEvent{})
	if strip.scrubber.Session().Active {
		t.Error("Mouse up should end the gesture")
	}
}

func TestAlphabetStrip_TouchCancel(t *testing.T) {
	strip, _ := newTestStrip(t)

	strip.TouchDown(touchAt(40, 40))
	strip.TouchCancel(touchAt(40, 40))
	if strip.scrubber.Session().Active {
		t.Error("Cancel should end the gesture")
	}
}

func TestPillColor(t *testing.T) {
	test.NewApp()

	_, _, _, idle := pillColor(0).RGBA()
	_, _, _, flash := pillColor(1).RGBA()
	if flash <= idle {
		t.Errorf("Flash alpha %d should exceed idle alpha %d", flash, idle)
	}
}
