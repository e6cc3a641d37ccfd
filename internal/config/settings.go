package config

import (
	"fyne.io/fyne/v2"

	"github.com/niagarahome/launcher/internal/scrubber"
)

// StripSelectMode decides what a snap selection does to the app list
type StripSelectMode string

const (
	// SelectScroll scrolls the list to the first row of the letter
	SelectScroll StripSelectMode = "scroll"
	// SelectIsolate shows only the letter's section until the gesture ends
	SelectIsolate StripSelectMode = "isolate"
)

// Settings keys for Fyne preferences
const (
	KeyStripWidth        = "strip_width"
	KeyStripVPadding     = "strip_v_padding"
	KeyStripTouchMargin  = "strip_touch_margin"
	KeyFineScrollDist    = "fine_scroll_threshold"
	KeyFineModeThreshold = "fine_mode_threshold"
	KeyHighlightScale    = "highlight_scale"
	KeyBulgeMargin       = "bulge_margin"
	KeyBulgeRadius       = "bulge_radius"
	KeyStripSelectMode   = "strip_select_mode"
	KeyLanguage          = "app_language"
)

// Default values
const (
	DefaultStripWidth        = 32
	DefaultStripVPadding     = 24
	DefaultStripTouchMargin  = 24
	DefaultFineScrollDist    = 80
	DefaultFineModeThreshold = 0.3
	DefaultHighlightScale    = 1.4
	DefaultBulgeMargin       = 16
	DefaultBulgeRadius       = 2.0
	DefaultStripSelectMode   = SelectScroll
	DefaultLanguage          = "system"
)

// Limits applied by the setters
const (
	MinStripWidth     = 16
	MaxStripWidth     = 96
	MaxStripVPadding  = 120
	MaxTouchMargin    = 96
	MaxFineScrollDist = 400
	MinHighlightScale = 1.0
	MaxHighlightScale = 3.0
	MaxBulgeMargin    = 96
	MinBulgeRadius    = 0.1
	MaxBulgeRadius    = 20.0
	MinFineThreshold  = 0.05
	MaxFineThreshold  = 0.95
)

// Settings manages launcher configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

func (s *Settings) prefs() fyne.Preferences {
	return s.app.Preferences()
}

// GetStripWidth returns the visible strip width in dp
func (s *Settings) GetStripWidth() int {
	return s.prefs().IntWithFallback(KeyStripWidth, DefaultStripWidth)
}

// SetStripWidth sets the visible strip width in dp
func (s *Settings) SetStripWidth(dp int) {
	s.prefs().SetInt(KeyStripWidth, clampInt(dp, MinStripWidth, MaxStripWidth))
}

// GetStripVerticalPadding returns the strip's top and bottom inset in dp
func (s *Settings) GetStripVerticalPadding() int {
	return s.prefs().IntWithFallback(KeyStripVPadding, DefaultStripVPadding)
}

// SetStripVerticalPadding sets the strip's top and bottom inset in dp
func (s *Settings) SetStripVerticalPadding(dp int) {
	s.prefs().SetInt(KeyStripVPadding, clampInt(dp, 0, MaxStripVPadding))
}

// GetTouchMargin returns the touch area left of the strip in dp
func (s *Settings) GetTouchMargin() int {
	return s.prefs().IntWithFallback(KeyStripTouchMargin, DefaultStripTouchMargin)
}

// SetTouchMargin sets the touch area left of the strip in dp
func (s *Settings) SetTouchMargin(dp int) {
	s.prefs().SetInt(KeyStripTouchMargin, clampInt(dp, 0, MaxTouchMargin))
}

// GetFineScrollDistance returns the pull distance in dp that maps to a full
// pull. Zero disables fine scrolling.
func (s *Settings) GetFineScrollDistance() int {
	return s.prefs().IntWithFallback(KeyFineScrollDist, DefaultFineScrollDist)
}

// SetFineScrollDistance sets the full-pull distance in dp
func (s *Settings) SetFineScrollDistance(dp int) {
	s.prefs().SetInt(KeyFineScrollDist, clampInt(dp, 0, MaxFineScrollDist))
}

// GetFineModeThreshold returns the pull fraction that enters fine mode
func (s *Settings) GetFineModeThreshold() float64 {
	return s.prefs().FloatWithFallback(KeyFineModeThreshold, DefaultFineModeThreshold)
}

// SetFineModeThreshold sets the pull fraction that enters fine mode
func (s *Settings) SetFineModeThreshold(v float64) {
	s.prefs().SetFloat(KeyFineModeThreshold, clampFloat(v, MinFineThreshold, MaxFineThreshold))
}

// GetHighlightScale returns the scale of the selected letter
func (s *Settings) GetHighlightScale() float64 {
	return s.prefs().FloatWithFallback(KeyHighlightScale, DefaultHighlightScale)
}

// SetHighlightScale sets the scale of the selected letter
func (s *Settings) SetHighlightScale(v float64) {
	s.prefs().SetFloat(KeyHighlightScale, clampFloat(v, MinHighlightScale, MaxHighlightScale))
}

// GetBulgeMargin returns the base bulge displacement in dp
func (s *Settings) GetBulgeMargin() int {
	return s.prefs().IntWithFallback(KeyBulgeMargin, DefaultBulgeMargin)
}

// SetBulgeMargin sets the base bulge displacement in dp
func (s *Settings) SetBulgeMargin(dp int) {
	s.prefs().SetInt(KeyBulgeMargin, clampInt(dp, 0, MaxBulgeMargin))
}

// GetBulgeRadius returns the falloff shape parameter
func (s *Settings) GetBulgeRadius() float64 {
	return s.prefs().FloatWithFallback(KeyBulgeRadius, DefaultBulgeRadius)
}

// SetBulgeRadius sets the falloff shape parameter
func (s *Settings) SetBulgeRadius(v float64) {
	s.prefs().SetFloat(KeyBulgeRadius, clampFloat(v, MinBulgeRadius, MaxBulgeRadius))
}

// GetStripSelectMode returns what a snap selection does to the list
func (s *Settings) GetStripSelectMode() StripSelectMode {
	mode := StripSelectMode(s.prefs().StringWithFallback(KeyStripSelectMode, string(DefaultStripSelectMode)))
	if mode != SelectScroll && mode != SelectIsolate {
		return DefaultStripSelectMode
	}
	return mode
}

// SetStripSelectMode sets what a snap selection does to the list
func (s *Settings) SetStripSelectMode(mode StripSelectMode) {
	if mode != SelectScroll && mode != SelectIsolate {
		mode = DefaultStripSelectMode
	}
	s.prefs().SetString(KeyStripSelectMode, string(mode))
}

// GetStripSelectModeOptions returns the available select modes
func (s *Settings) GetStripSelectModeOptions() []StripSelectMode {
	return []StripSelectMode{SelectScroll, SelectIsolate}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.prefs().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.prefs().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// Tunables builds the scrubber tunables from the stored settings. Lengths
// are in dp, which is also Fyne's coordinate unit.
func (s *Settings) Tunables() scrubber.Tunables {
	return scrubber.Tunables{
		FineModeThreshold: float32(s.GetFineModeThreshold()),
		PullThreshold:     float32(s.GetFineScrollDistance()),
		TouchMargin:       float32(s.GetTouchMargin()),
		HighlightScale:    float32(s.GetHighlightScale()),
		BulgeMargin:       float32(s.GetBulgeMargin()),
		BulgeRadius:       float32(s.GetBulgeRadius()),
	}
}

// ResetAll restores every setting to its default
func (s *Settings) ResetAll() {
	for _, key := range []string{
		KeyStripWidth, KeyStripVPadding, KeyStripTouchMargin, KeyFineScrollDist,
		KeyFineModeThreshold, KeyHighlightScale, KeyBulgeMargin, KeyBulgeRadius,
		KeyStripSelectMode,
	} {
		s.prefs().RemoveValue(key)
	}
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	if v != v {
		return lo
	}
	return min(max(v, lo), hi)
}
