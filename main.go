package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/meal-maker/internal/config"
	"github.com/ytget/meal-maker/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.meal-maker"
	AppName = "Meal Maker"

	WindowWidth  = 640
	WindowHeight = 900
)

func main() {
	// Log version information
	fmt.Printf("Meal Maker v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	if icon, err := ui.LoadIconResource(); err == nil {
		myApp.SetIcon(icon)
	}

	// Apply meal theme
	myApp.Settings().SetTheme(ui.NewMealTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Environment and .env overrides win over stored preferences
	settings := config.NewSettings(myApp)
	settings.ApplyEnv(config.LoadEnv())

	// Initialize services
	sess := ui.NewSession(settings)

	log.Printf("Using recipe API %s (timeout %s)", settings.GetAPIBaseURL(), settings.GetRequestTimeout())

	// Create and setup UI
	ui.NewRootUI(myWindow, settings, sess)

	// Show and run
	myWindow.ShowAndRun()
}
