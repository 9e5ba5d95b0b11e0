package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/udimtools/udim-mover/internal/config"
	"github.com/udimtools/udim-mover/internal/mover"
	"github.com/udimtools/udim-mover/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.udimtools.udim-mover")
	myWindow := myApp.NewWindow("UDIM Mover")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	settings := config.NewSettings(myApp)
	moverSvc := mover.NewService(settings.NewHostBinding())
	ui.NewRootUI(myWindow, myApp, moverSvc)

	// Show and run
	myWindow.ShowAndRun()
}
