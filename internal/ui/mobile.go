package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI decisions
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.app.Driver().Device().IsMobile()
}

// ShouldFocusSearch reports whether opening the app list focuses the search
// entry. On phones that would pop the virtual keyboard over the list.
func (m *MobileUI) ShouldFocusSearch() bool {
	return !m.IsMobileDevice()
}

// GetMobilePadding returns appropriate padding for mobile devices
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 20 // Larger padding for mobile
	}
	return 10 // Standard padding for desktop
}
