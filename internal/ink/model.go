// Package ink holds the freehand annotation model and the geometry that
// turns captured pointer samples into drawable strokes: the point/stroke
// data types, tool profiles, the point-stream simplifier, the renderer and
// the eraser. Everything in this package is pure data and pure functions;
// state lives in the board package.
package ink

import (
	"math"

	"github.com/google/uuid"
)

// Point is a canvas-local coordinate. Sign and magnitude are unconstrained.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt creates a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Length returns the vector length of p.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Valid reports whether both coordinates are real numbers. Events with
// missing coordinates decode to NaN and must be ignored, not stored.
func (p Point) Valid() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Stroke is a committed freehand mark: an ordered point sequence plus style.
// A committed stroke always has at least one point; in-progress buffers are
// not strokes until the controller commits them.
//
// The JSON shape is the persistence contract with the host note store and
// must round-trip exactly: {id, points[], color, strokeWidth, toolType?}.
type Stroke struct {
	ID     string  `json:"id"`
	Points []Point `json:"points"`
	Color  string  `json:"color"`
	Width  float64 `json:"strokeWidth"`
	Tool   Tool    `json:"toolType,omitempty"`
}

// NewStroke builds a stroke with a fresh unique ID. The point slice is
// copied so the caller may keep reusing its buffer.
func NewStroke(points []Point, color string, width float64, tool Tool) Stroke {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Stroke{
		ID:     uuid.NewString(),
		Points: pts,
		Color:  color,
		Width:  width,
		Tool:   tool,
	}
}

// Clone deep-copies the stroke.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = make([]Point, len(s.Points))
	copy(c.Points, s.Points)
	return c
}

// Drawing is the ordered stroke list forming one note's annotation layer.
// Order is z-order: later strokes draw on top.
type Drawing []Stroke

// Clone deep-copies the drawing, points included.
func (d Drawing) Clone() Drawing {
	if d == nil {
		return nil
	}
	c := make(Drawing, len(d))
	for i, s := range d {
		c[i] = s.Clone()
	}
	return c
}
