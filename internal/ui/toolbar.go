package ui

import (
	"InkNotes/internal/ink"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Remember the last ink color so switching back from the eraser restores it.
var lastSelectedColor = "#000000"

// colorSwatch is a tappable square of one palette color.
type colorSwatch struct {
	widget.BaseWidget
	Color    string
	OnTapped func(string)
}

func newColorSwatch(c string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(ink.ParseColor(s.Color))
	rect.SetMinSize(fyne.NewSize(32, 32))
	return widget.NewSimpleRenderer(rect)
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// NewToolbar assembles the tool selector, color palette, width slider and
// undo/clear actions around a sketch widget.
func NewToolbar(sketch *SketchWidget) fyne.CanvasObject {
	toolSelect := widget.NewSelect([]string{"pen", "pencil", "marker", "brush", "eraser"}, func(name string) {
		switch name {
		case "pencil":
			sketch.SetTool(ink.ToolPencil)
			sketch.SetColor(lastSelectedColor)
		case "marker":
			sketch.SetTool(ink.ToolMarker)
			sketch.SetColor(lastSelectedColor)
		case "brush":
			sketch.SetTool(ink.ToolBrush)
			sketch.SetColor(lastSelectedColor)
		case "eraser":
			sketch.SetTool(ink.ToolEraser)
			sketch.SetWidth(20)
		default:
			sketch.SetTool(ink.ToolDefault)
			sketch.SetColor(lastSelectedColor)
		}
	})
	toolSelect.SetSelected("pen")

	onColorTapped := func(c string) {
		lastSelectedColor = c
		sketch.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch("#000000", onColorTapped),
		newColorSwatch("#e53935", onColorTapped), // red
		newColorSwatch("#43a047", onColorTapped), // green
		newColorSwatch("#1e88e5", onColorTapped), // blue
		newColorSwatch("#fdd835", onColorTapped), // yellow
	)

	widthSlider := widget.NewSlider(1, 50)
	widthSlider.SetValue(3)
	widthSlider.OnChanged = func(val float64) {
		sketch.SetWidth(val)
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), widthSlider)

	actions := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), sketch.Undo),
		widget.NewToolbarAction(theme.DeleteIcon(), sketch.Clear),
	)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		actions,
		layout.NewSpacer(),
	)
}
