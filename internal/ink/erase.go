package ink

// EraserRadius derives the erase hit-test radius from the eraser tool's
// configured width. Width reads as a diameter on screen, so the radius is
// half of it.
func EraserRadius(width float64) float64 {
	return width / 2
}

// Erase removes every stroke point lying within radius (inclusive) of any
// point on the eraser path and returns the filtered drawing. Strokes left
// with fewer than 2 points are dropped entirely: a lone survivor cannot
// render a line and would linger as a stray dot.
//
// The input drawing is not modified; untouched strokes are carried over
// as-is. Erasing an empty drawing, or with an empty path, is a no-op, and
// repeating an identical pass removes nothing further.
//
// Known limitation: erasing the middle of a stroke leaves one stroke whose
// surviving runs are joined by a gap-closing segment, rather than
// splitting it into fragments.
func Erase(d Drawing, path []Point, radius float64) Drawing {
	if len(d) == 0 || len(path) == 0 || radius < 0 {
		return d
	}
	out := make(Drawing, 0, len(d))
	for _, s := range d {
		kept := erasePoints(s.Points, path, radius)
		switch {
		case len(kept) == len(s.Points):
			out = append(out, s)
		case len(kept) >= 2:
			c := s
			c.Points = kept
			out = append(out, c)
		}
	}
	return out
}

func erasePoints(points, path []Point, radius float64) []Point {
	kept := make([]Point, 0, len(points))
	for _, p := range points {
		if !hit(p, path, radius) {
			kept = append(kept, p)
		}
	}
	return kept
}

func hit(p Point, path []Point, radius float64) bool {
	for _, e := range path {
		if p.Distance(e) <= radius {
			return true
		}
	}
	return false
}
