package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "meal-maker.png"
)

// LoadIconResource loads the application icon from the working directory
func LoadIconResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
