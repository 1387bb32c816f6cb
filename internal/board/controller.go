// Package board owns the live annotation state for one canvas: the
// in-progress gesture buffer, the committed drawing and its undo history.
// It is the single writer of the drawing; everything under internal/ink is
// stateless geometry it calls into.
package board

import "InkNotes/internal/ink"

// Style is the pen configuration applied to the next committed stroke.
type Style struct {
	Color string
	Width float64
	Tool  ink.Tool
}

// DefaultStyle is a plain 3-unit black pen.
var DefaultStyle = Style{Color: "#000000", Width: 3, Tool: ink.ToolDefault}

const (
	// DefaultMaxStrokes bounds how many strokes a drawing retains.
	DefaultMaxStrokes = 512
	// DefaultMaxUndo bounds the snapshot stack depth.
	DefaultMaxUndo = 64
)

// Options configures a Controller. Zero values pick the defaults.
type Options struct {
	// Style is the initial pen style.
	Style Style
	// MinDistance is the simplifier threshold in canvas units.
	MinDistance float64
	// MaxStrokes caps the strokes retained in the drawing; once exceeded
	// the oldest strokes are silently dropped. A memory/fidelity
	// trade-off for long sessions on constrained devices.
	MaxStrokes int
	// MaxUndo caps the number of restorable snapshots.
	MaxUndo int
	// OnChange is invoked with a deep copy of the full drawing after
	// every commit, erase, undo or clear. The host persists it opaquely.
	OnChange func(ink.Drawing)
}

// Controller orchestrates capture, commit, erase, undo and clear, and owns
// the committed drawing. It is single-threaded by design: all methods must
// be called from the event loop that delivers the pointer events.
//
// Mode selection is implicit in the pen style: beginning a gesture with
// the eraser tool starts an erase pass, any other tool starts a stroke.
type Controller struct {
	drawing    ink.Drawing
	history    []ink.Drawing
	gesture    gesture
	pen        Style
	simplifier ink.Simplifier
	maxStrokes int
	maxUndo    int
	onChange   func(ink.Drawing)
}

// NewController creates a controller with the given options.
func NewController(opts Options) *Controller {
	c := &Controller{
		pen:        DefaultStyle,
		simplifier: ink.Simplifier{MinDistance: opts.MinDistance},
		maxStrokes: opts.MaxStrokes,
		maxUndo:    opts.MaxUndo,
		onChange:   opts.OnChange,
	}
	if opts.Style != (Style{}) {
		c.SetStyle(opts.Style)
	}
	if c.maxStrokes <= 0 {
		c.maxStrokes = DefaultMaxStrokes
	}
	if c.maxUndo <= 0 {
		c.maxUndo = DefaultMaxUndo
	}
	return c
}

// SetStyle changes the pen. Style is read at commit time, so hosts should
// switch tools between gestures, as toolbars naturally do.
func (c *Controller) SetStyle(s Style) {
	if s.Width <= 0 {
		s.Width = DefaultStyle.Width
	}
	if s.Color == "" {
		s.Color = DefaultStyle.Color
	}
	c.pen = s
}

// Style returns the current pen style.
func (c *Controller) Style() Style {
	return c.pen
}

// Begin starts a new gesture at p, superseding any unfinished one.
// Samples with missing coordinates leave the controller idle.
func (c *Controller) Begin(p ink.Point) {
	if !p.Valid() {
		c.gesture.reset()
		return
	}
	mode := modeDrawing
	if c.pen.Tool == ink.ToolEraser {
		mode = modeErasing
	}
	c.gesture.begin(mode, p)
}

// Move extends the active gesture with a pointer sample. The sample only
// survives the simplifier if it moved far enough; either way it counts
// toward the gesture having moved at all. No-op while idle or for samples
// with missing coordinates.
func (c *Controller) Move(p ink.Point) {
	if c.gesture.mode == modeIdle || !p.Valid() {
		return
	}
	c.gesture.extend(c.simplifier, p)
}

// End finalizes the active gesture: draw gestures commit a stroke, erase
// gestures run the eraser over the drawing. A gesture that never moved (a
// single-sample tap) is silently discarded. No-op while idle.
func (c *Controller) End() {
	g := &c.gesture
	defer g.reset()
	if g.mode == modeIdle || g.raw < 2 || len(g.points) == 0 {
		return
	}
	switch g.mode {
	case modeDrawing:
		c.snapshot()
		c.drawing = append(c.drawing, ink.NewStroke(g.points, c.pen.Color, c.pen.Width, c.pen.Tool))
		if n := len(c.drawing); n > c.maxStrokes {
			c.drawing = append(ink.Drawing(nil), c.drawing[n-c.maxStrokes:]...)
		}
		c.emit()
	case modeErasing:
		c.snapshot()
		c.drawing = ink.Erase(c.drawing, g.points, ink.EraserRadius(c.pen.Width))
		c.emit()
	}
}

// Undo restores the drawing to its state before the most recent commit,
// erase or clear. Erase passes are not additive, so undo restores full
// snapshots rather than popping the last stroke. No-op when there is
// nothing to undo.
func (c *Controller) Undo() {
	n := len(c.history)
	if n == 0 {
		return
	}
	c.drawing = c.history[n-1]
	c.history[n-1] = nil
	c.history = c.history[:n-1]
	c.emit()
}

// Clear empties the drawing. The pre-clear state is snapshotted first, so
// clear is undoable.
func (c *Controller) Clear() {
	c.snapshot()
	c.drawing = nil
	c.emit()
}

// Drawing returns the committed drawing for same-thread rendering. The
// returned slice is the controller's working copy: callers must not
// mutate it or retain it across the next mutating call. External
// consumers get isolated copies through Snapshot or the change callback.
func (c *Controller) Drawing() ink.Drawing {
	return c.drawing
}

// Snapshot returns a deep copy of the committed drawing.
func (c *Controller) Snapshot() ink.Drawing {
	return c.drawing.Clone()
}

// Restore replaces the drawing with a host-persisted one, for example when
// reopening a note. History and any gesture in flight are discarded, and
// no change callback fires: the host already holds this state.
func (c *Controller) Restore(d ink.Drawing) {
	c.drawing = d.Clone()
	c.history = nil
	c.gesture.reset()
}

// Live returns the in-progress gesture buffer and whether it belongs to a
// draw gesture (erase paths are never shown as ink). The slice follows
// the same ownership rule as Drawing.
func (c *Controller) Live() (points []ink.Point, drawing bool) {
	if c.gesture.mode != modeDrawing {
		return nil, false
	}
	return c.gesture.points, true
}

// Erasing reports whether an erase gesture is in flight.
func (c *Controller) Erasing() bool {
	return c.gesture.mode == modeErasing
}

// StrokeCount returns the number of committed strokes.
func (c *Controller) StrokeCount() int {
	return len(c.drawing)
}

// snapshot pushes a full copy of the drawing onto the history stack,
// evicting the oldest entry once the stack is full.
func (c *Controller) snapshot() {
	if len(c.history) >= c.maxUndo {
		copy(c.history, c.history[1:])
		c.history[len(c.history)-1] = nil
		c.history = c.history[:len(c.history)-1]
	}
	c.history = append(c.history, c.drawing.Clone())
}

// emit hands a deep copy of the drawing to the change callback. The
// controller's state is fully settled before the callback runs, so a
// misbehaving host cannot corrupt it.
func (c *Controller) emit() {
	if c.onChange != nil {
		c.onChange(c.drawing.Clone())
	}
}
