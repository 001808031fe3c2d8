package ui

import (
	"image/color"

	"PomodoroTimer/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// PomodoroTheme is the dark palette of the timer window.
type PomodoroTheme struct {
	fyne.Theme
}

// NewPomodoroTheme creates a new instance of the timer theme.
func NewPomodoroTheme() fyne.Theme {
	return &PomodoroTheme{Theme: theme.DefaultTheme()}
}

// Color overrides the surfaces; everything else comes from the dark default.
func (t *PomodoroTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return timer.BackgroundColor
	case theme.ColorNameButton:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x30}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x20}
	case theme.ColorNamePrimary:
		return timer.ActiveModeColor
	case theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x2a, G: 0x2a, B: 0x2a, A: 0xff}
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	}
	return t.Theme.Color(name, theme.VariantDark)
}
