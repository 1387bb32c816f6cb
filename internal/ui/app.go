package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp builds the window around a sketch widget and blocks until it is
// closed. status, when non-empty, is shown below the canvas (for example
// the live-share link).
func RunApp(sketch *SketchWidget, status string) {
	a := app.New()
	w := a.NewWindow("Ink Notes")
	w.Resize(fyne.NewSize(1024, 768))

	var bottom fyne.CanvasObject
	if status != "" {
		bottom = widget.NewLabel(status)
	}
	content := container.NewBorder(NewToolbar(sketch), bottom, nil, nil, sketch)

	w.SetContent(content)
	w.ShowAndRun()
}
