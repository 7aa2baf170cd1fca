package main

import (
	"fyne.io/fyne/v2/app"

	"file-viewer/internal/logging"
	"file-viewer/ui"
)

func main() {
	log := logging.New("main")
	log.Info("starting file viewer")

	a := app.NewWithID(ui.AppID)
	win := ui.BuildMainWindow(a)
	win.ShowAndRun()
}
