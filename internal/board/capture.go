package board

import "InkNotes/internal/ink"

type captureMode uint8

const (
	modeIdle captureMode = iota
	modeDrawing
	modeErasing
)

// gesture is the transient in-progress pointer buffer. Exactly one gesture
// exists at a time; beginning a new one discards any unfinished buffer.
type gesture struct {
	mode   captureMode
	points []ink.Point
	// raw counts every valid sample received, kept and dropped alike.
	// It tells a deliberate dot (many samples inside the simplifier
	// threshold) apart from a stray tap (one sample), which is discarded.
	raw int
}

func (g *gesture) begin(mode captureMode, p ink.Point) {
	g.mode = mode
	g.points = append(g.points[:0], p)
	g.raw = 1
}

func (g *gesture) extend(s ink.Simplifier, p ink.Point) {
	g.raw++
	g.points = s.Append(g.points, p)
}

func (g *gesture) reset() {
	g.mode = modeIdle
	g.points = g.points[:0]
	g.raw = 0
}
