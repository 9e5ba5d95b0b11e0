package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/udimtools/udim-mover/internal/config"
	"github.com/udimtools/udim-mover/internal/mover"
	"github.com/udimtools/udim-mover/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.udimtools.udim-mover"
	AppName = "UDIM Mover"
)

func main() {
	// Log version information
	fmt.Printf("UDIM Mover v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	moverSvc := mover.NewService(settings.NewHostBinding())

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, moverSvc)

	// Show and run
	myWindow.ShowAndRun()
}
