package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	ColorBisque      = color.NRGBA{R: 0xFF, G: 0xE4, B: 0xC4, A: 0xFF}
	ColorSaddleBrown = color.NRGBA{R: 0x8B, G: 0x45, B: 0x13, A: 0xFF}
	ColorCream       = color.NRGBA{R: 0xF9, G: 0xED, B: 0xCC, A: 0xFF}
	ColorBurlyWood   = color.NRGBA{R: 0xDE, G: 0xB8, B: 0x87, A: 0xFF}
)

// MealTheme is a warm, compact theme: bisque background and saddle-brown text
type MealTheme struct{}

// NewMealTheme creates a new meal theme
func NewMealTheme() fyne.Theme {
	return &MealTheme{}
}

// Color returns theme colors; the palette ignores the light/dark variant
func (t *MealTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return ColorBisque
	case theme.ColorNameForeground, theme.ColorNamePrimary, theme.ColorNameHyperlink:
		return ColorSaddleBrown
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return ColorCream
	case theme.ColorNameHover, theme.ColorNameSeparator:
		return ColorBurlyWood
	case theme.ColorNameError:
		return color.NRGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	}

	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *MealTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *MealTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *MealTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3 // Reduced from default 4
	case theme.SizeNameInnerPadding:
		return 6 // Reduced from default 8
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 18
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
