package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconHome     = "⌂"
	IconSearch   = "🔍"
	IconStore    = "🛒"
)

// Text fragments
const (
	ClockFormat = "15:04"
	DateFormat  = "Monday, 2 January"
)

// Layout sizing
const (
	// Row sizing
	HeaderRowTextSize float32 = 12
	AppRowMinHeight   float32 = 44

	// Strip sizing
	StripLetterTextRatio float32 = 0.85
	StripPillAlpha       uint8   = 40
	StripFlashAlpha      uint8   = 110

	// Letter popup sizing
	PopupSize   float32 = 64
	PopupGap    float32 = 12
	PopupRadius float32 = 16
	PopupText   float32 = 34

	// Home page
	HomeClockTextSize float32 = 56
	HomeDateTextSize  float32 = 16

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 560
)

// Durations
const (
	HapticFlashDuration = 120 * time.Millisecond
	ClockRefresh        = 15 * time.Second
	CatalogLoadTimeout  = 5 * time.Second
)
