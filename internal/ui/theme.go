package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// LauncherTheme is a dark, compact theme for the home screen
type LauncherTheme struct{}

// NewLauncherTheme creates a new launcher theme
func NewLauncherTheme() fyne.Theme {
	return &LauncherTheme{}
}

// Color returns theme colors
func (t *LauncherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 120, G: 170, B: 255, A: 255} // Strip highlight and popup
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 245, G: 245, B: 245, A: 255}
		}
		return color.RGBA{R: 12, G: 12, B: 14, A: 255} // Near black wallpaper
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return color.RGBA{R: 28, G: 28, B: 30, A: 255}
		}
		return color.RGBA{R: 236, G: 236, B: 240, A: 255}
	case theme.ColorNameSelection, theme.ColorNameHover:
		return color.RGBA{R: 120, G: 170, B: 255, A: 48}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *LauncherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *LauncherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *LauncherTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameScrollBar:
		return 6 // The strip replaces the scroll bar
	case theme.SizeNameScrollBarSmall:
		return 2
	case theme.SizeNameText:
		return 15
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 18 // Pill shaped search entry
	}

	return theme.DefaultTheme().Size(name)
}
