// Package ui contains the Fyne home screen. It renders the app list with the
// alphabet strip, translates pointer input into scrubber gestures and reacts
// to the scrubber's events. All UI strings are localized via Localization.
package ui
