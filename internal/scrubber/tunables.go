package scrubber

// Default tunables, in device-independent pixels where a length is implied.
const (
	DefaultFineModeThreshold float32 = 0.3
	DefaultPullThreshold     float32 = 80
	DefaultTouchMargin       float32 = 24
	DefaultHighlightScale    float32 = 1.4
	DefaultBulgeMargin       float32 = 16
	DefaultBulgeRadius       float32 = 2
)

// Tunables are the settings-driven parameters of the strip. They are
// configuration supplied by the host and are never persisted here.
type Tunables struct {
	// FineModeThreshold is the pull fraction above which fine mode is entered.
	FineModeThreshold float32
	// FineExitThreshold is the pull fraction at or below which fine mode is
	// left. Zero means "same as FineModeThreshold".
	FineExitThreshold float32
	// PullThreshold is the pull distance in pixels mapped to fraction 1.
	// Zero or negative disables fine mode.
	PullThreshold float32
	// TouchMargin is the width of the touch area left of the visible strip.
	TouchMargin    float32
	HighlightScale float32
	BulgeMargin    float32
	// BulgeRadius shapes the gaussian falloff; zero or negative disables it.
	BulgeRadius float32
}

// DefaultTunables returns the stock tunables
func DefaultTunables() Tunables {
	return Tunables{
		FineModeThreshold: DefaultFineModeThreshold,
		PullThreshold:     DefaultPullThreshold,
		TouchMargin:       DefaultTouchMargin,
		HighlightScale:    DefaultHighlightScale,
		BulgeMargin:       DefaultBulgeMargin,
		BulgeRadius:       DefaultBulgeRadius,
	}
}

func (t Tunables) exitThreshold() float32 {
	if t.FineExitThreshold <= 0 {
		return t.FineModeThreshold
	}
	return t.FineExitThreshold
}

// Geometry describes the strip view in its own coordinate space: x grows to
// the right from the left edge of the touch margin, y grows down from the top
// of the view.
type Geometry struct {
	Width       float32
	Height      float32
	TopInset    float32
	BottomInset float32
}

// usableHeight is the height shared by the letter slots
func (g Geometry) usableHeight() float32 {
	return g.Height - g.TopInset - g.BottomInset
}

// SlotHeight returns the height of one letter slot for count letters
func (g Geometry) SlotHeight(count int) float32 {
	if count <= 0 {
		return 0
	}
	h := g.usableHeight()
	if h <= 0 {
		return 0
	}
	return h / float32(count)
}
