// Package export renders committed drawings into portable formats.
package export

import (
	"fmt"
	"io"

	"InkNotes/internal/ink"

	"github.com/jung-kurt/gofpdf"
)

const pageMargin = 10 // mm

// PDF writes the drawing as a single-page A4 landscape PDF. It renders
// through the same primitive list the screen uses, so tool character
// (opacity, width modulation, cap style) carries over. canvasW/canvasH are
// the canvas bounds in canvas units; when either is zero the drawing's own
// bounding box is used instead.
func PDF(w io.Writer, d ink.Drawing, canvasW, canvasH float64) error {
	if canvasW <= 0 || canvasH <= 0 {
		canvasW, canvasH = bounds(d)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()
	scale := min((pageW-2*pageMargin)/canvasW, (pageH-2*pageMargin)/canvasH)

	for _, p := range ink.RenderDrawing(d) {
		col := p.Color
		pdf.SetAlpha(p.Opacity*float64(col.A)/255, "Normal")
		if p.Kind == ink.PrimitiveDot {
			pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
			pdf.Circle(pageMargin+p.Center.X*scale, pageMargin+p.Center.Y*scale, p.Thickness/2*scale, "F")
			continue
		}
		capStyle := "butt"
		if p.Corner >= 0.5 {
			capStyle = "round"
		}
		pdf.SetLineCapStyle(capStyle)
		pdf.SetDrawColor(int(col.R), int(col.G), int(col.B))
		pdf.SetLineWidth(p.Thickness * scale)
		a, b := p.Endpoints()
		pdf.Line(pageMargin+a.X*scale, pageMargin+a.Y*scale, pageMargin+b.X*scale, pageMargin+b.Y*scale)
	}
	pdf.SetAlpha(1, "Normal")

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// bounds returns the drawing's extent, padded enough that edge strokes do
// not touch the page margin. Empty drawings map to a nominal page.
func bounds(d ink.Drawing) (w, h float64) {
	for _, s := range d {
		for _, p := range s.Points {
			w = max(w, p.X)
			h = max(h, p.Y)
		}
	}
	if w <= 0 || h <= 0 {
		return 800, 600
	}
	return w + pageMargin, h + pageMargin
}
