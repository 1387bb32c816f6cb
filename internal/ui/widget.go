// Package ui is the thin Fyne glue around the annotation engine: a canvas
// widget that feeds pointer events into the board controller and paints
// the primitives the renderer emits, plus a toolbar and window scaffold.
package ui

import (
	"image/color"

	"InkNotes/internal/board"
	"InkNotes/internal/ink"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// SketchWidget is the drawing surface. It owns no annotation state itself;
// every pointer event is forwarded to the controller and every refresh
// re-renders from the controller's drawing plus the live gesture buffer.
type SketchWidget struct {
	widget.BaseWidget
	ctrl *board.Controller
}

var _ fyne.Widget = (*SketchWidget)(nil)
var _ fyne.Draggable = (*SketchWidget)(nil)
var _ desktop.Mouseable = (*SketchWidget)(nil)

// NewSketchWidget wraps a controller in a drawing surface.
func NewSketchWidget(ctrl *board.Controller) *SketchWidget {
	s := &SketchWidget{ctrl: ctrl}
	s.ExtendBaseWidget(s)
	return s
}

// Controller exposes the underlying board controller.
func (s *SketchWidget) Controller() *board.Controller {
	return s.ctrl
}

// SetTool switches the pen tool, keeping color and width.
func (s *SketchWidget) SetTool(t ink.Tool) {
	st := s.ctrl.Style()
	st.Tool = t
	s.ctrl.SetStyle(st)
}

// SetColor switches the pen color, keeping tool and width.
func (s *SketchWidget) SetColor(c string) {
	st := s.ctrl.Style()
	st.Color = c
	s.ctrl.SetStyle(st)
}

// SetWidth switches the base stroke width, keeping tool and color.
func (s *SketchWidget) SetWidth(w float64) {
	st := s.ctrl.Style()
	st.Width = w
	s.ctrl.SetStyle(st)
}

// Undo reverts the latest commit, erase or clear.
func (s *SketchWidget) Undo() {
	s.ctrl.Undo()
	s.Refresh()
}

// Clear empties the canvas (undoable).
func (s *SketchWidget) Clear() {
	s.ctrl.Clear()
	s.Refresh()
}

func (s *SketchWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.ctrl.Begin(ink.Pt(float64(e.Position.X), float64(e.Position.Y)))
	s.Refresh()
}

func (s *SketchWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	s.ctrl.End()
	s.Refresh()
}

func (s *SketchWidget) Dragged(e *fyne.DragEvent) {
	s.ctrl.Move(ink.Pt(float64(e.Position.X), float64(e.Position.Y)))
	s.Refresh()
}

// DragEnd also finalizes: depending on the platform driver the release
// arrives as MouseUp, DragEnd or both, and End is idempotent.
func (s *SketchWidget) DragEnd() {
	s.ctrl.End()
	s.Refresh()
}

func (s *SketchWidget) MouseIn(*desktop.MouseEvent)    {}
func (s *SketchWidget) MouseOut()                      {}
func (s *SketchWidget) MouseMoved(*desktop.MouseEvent) {}

func (s *SketchWidget) CreateRenderer() fyne.WidgetRenderer {
	return &sketchRenderer{
		sketch:     s,
		background: canvas.NewRectangle(color.White),
	}
}

type sketchRenderer struct {
	sketch     *SketchWidget
	background *canvas.Rectangle
}

func (r *sketchRenderer) Objects() []fyne.CanvasObject {
	ctrl := r.sketch.ctrl
	objects := []fyne.CanvasObject{r.background}
	for _, p := range ink.RenderDrawing(ctrl.Drawing()) {
		objects = append(objects, primitiveObject(p))
	}
	if pts, ok := ctrl.Live(); ok {
		st := ctrl.Style()
		for _, p := range ink.Render(pts, st.Color, st.Width, st.Tool) {
			objects = append(objects, primitiveObject(p))
		}
	}
	return objects
}

// primitiveObject projects one renderer primitive onto a Fyne canvas
// object: dots become circles, capsules become thick lines (Fyne lines are
// round-capped, which matches the marker/brush corner style and is close
// enough for pencil).
func primitiveObject(p ink.Primitive) fyne.CanvasObject {
	col := p.Color
	col.A = uint8(float64(col.A) * p.Opacity)
	if p.Kind == ink.PrimitiveDot {
		radius := float32(p.Thickness / 2)
		dot := canvas.NewCircle(col)
		dot.Position1 = fyne.NewPos(float32(p.Center.X)-radius, float32(p.Center.Y)-radius)
		dot.Position2 = fyne.NewPos(float32(p.Center.X)+radius, float32(p.Center.Y)+radius)
		return dot
	}
	a, b := p.Endpoints()
	line := canvas.NewLine(col)
	line.StrokeWidth = float32(p.Thickness)
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return line
}

func (r *sketchRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *sketchRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *sketchRenderer) Refresh() {
	canvas.Refresh(r.sketch)
}

func (r *sketchRenderer) Destroy() {}
