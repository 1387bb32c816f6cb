package ink

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// PrimitiveKind distinguishes the two drawable shapes the renderer emits.
type PrimitiveKind uint8

const (
	// PrimitiveDot is a filled circle; Thickness is its diameter.
	PrimitiveDot PrimitiveKind = iota
	// PrimitiveSegment is a capsule of the given Length and Thickness,
	// centered on Center and rotated by Angle.
	PrimitiveSegment
)

// Primitive is one drawable shape. The renderer is a pure function from
// (points, style, tool) to primitives, so backends (screen, PDF) only need
// to know how to fill circles and stroke rotated capsules.
type Primitive struct {
	Kind      PrimitiveKind
	Center    Point
	Length    float64
	Thickness float64
	// Angle is the capsule rotation in radians, measured from the
	// positive x axis. Always 0 for dots.
	Angle   float64
	Corner  float64
	Opacity float64
	Color   color.NRGBA
}

// Endpoints returns the segment's two end points, derived from its center,
// length and angle. For dots both ends equal the center.
func (p Primitive) Endpoints() (Point, Point) {
	half := p.Length / 2
	dx := math.Cos(p.Angle) * half
	dy := math.Sin(p.Angle) * half
	return Pt(p.Center.X-dx, p.Center.Y-dy), Pt(p.Center.X+dx, p.Center.Y+dy)
}

// Render turns a point sequence plus style into drawable primitives.
//
// A single point becomes a dot. A longer sequence becomes at most one
// capsule per consecutive point pair; pairs closer together than the
// tool's smoothness threshold are skipped, their ink visually absorbed by
// the overlapping neighbours. Thickness and opacity of each capsule follow
// the simulated pressure at that pair's traversal speed.
func Render(points []Point, col string, width float64, tool Tool) []Primitive {
	if len(points) == 0 {
		return nil
	}
	prof := tool.Profile()
	c := ParseColor(col)

	if len(points) == 1 {
		pressure := Pressure(0)
		return []Primitive{{
			Kind:      PrimitiveDot,
			Center:    points[0],
			Thickness: width * prof.WidthScale(pressure),
			Corner:    prof.Corner,
			Opacity:   prof.Opacity(pressure),
			Color:     c,
		}}
	}

	prims := make([]Primitive, 0, len(points)-1)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		v := b.Sub(a)
		d := v.Length()
		if d <= prof.Smoothness {
			continue
		}
		pressure := Pressure(d)
		prims = append(prims, Primitive{
			Kind:      PrimitiveSegment,
			Center:    Pt((a.X+b.X)/2, (a.Y+b.Y)/2),
			Length:    d,
			Thickness: width * prof.WidthScale(pressure),
			Angle:     math.Atan2(v.Y, v.X),
			Corner:    prof.Corner,
			Opacity:   prof.Opacity(pressure),
			Color:     c,
		})
	}
	return prims
}

// RenderStroke renders a committed stroke.
func RenderStroke(s Stroke) []Primitive {
	return Render(s.Points, s.Color, s.Width, s.Tool)
}

// RenderDrawing renders a whole drawing in z-order.
func RenderDrawing(d Drawing) []Primitive {
	var prims []Primitive
	for _, s := range d {
		prims = append(prims, RenderStroke(s)...)
	}
	return prims
}

// ParseColor resolves a stroke color string: #rgb, #rrggbb and #rrggbbaa
// hex forms plus the SVG 1.1 color names. Anything unrecognized renders
// black rather than failing.
func ParseColor(s string) color.NRGBA {
	if strings.HasPrefix(s, "#") {
		if c, ok := parseHex(s[1:]); ok {
			return c
		}
		return color.NRGBA{A: 0xff}
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		// SVG names are fully opaque, so RGBA equals NRGBA here.
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return color.NRGBA{A: 0xff}
}

func parseHex(s string) (color.NRGBA, bool) {
	nib := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	byteAt := func(i int) (uint8, bool) {
		hi, ok1 := nib(s[i])
		lo, ok2 := nib(s[i+1])
		return hi<<4 | lo, ok1 && ok2
	}
	switch len(s) {
	case 3:
		r, ok1 := nib(s[0])
		g, ok2 := nib(s[1])
		b, ok3 := nib(s[2])
		if !(ok1 && ok2 && ok3) {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: r * 0x11, G: g * 0x11, B: b * 0x11, A: 0xff}, true
	case 6:
		r, ok1 := byteAt(0)
		g, ok2 := byteAt(2)
		b, ok3 := byteAt(4)
		if !(ok1 && ok2 && ok3) {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, true
	case 8:
		r, ok1 := byteAt(0)
		g, ok2 := byteAt(2)
		b, ok3 := byteAt(4)
		a, ok4 := byteAt(6)
		if !(ok1 && ok2 && ok3 && ok4) {
			return color.NRGBA{}, false
		}
		return color.NRGBA{R: r, G: g, B: b, A: a}, true
	}
	return color.NRGBA{}, false
}
