package ink

// DefaultMinDistance is the simplifier threshold used when none is
// configured, in canvas units.
const DefaultMinDistance = 2.0

// Simplifier filters raw pointer samples by minimum distance. Pointer
// sampling rates vastly exceed what smooth ink needs; appending every
// sample inflates both render cost and persisted size. The first point of
// a buffer is always retained, and no two consecutive retained points are
// closer than MinDistance.
type Simplifier struct {
	// MinDistance is the threshold below which a sample is dropped.
	// Zero or negative means DefaultMinDistance.
	MinDistance float64
}

// Append returns points with candidate appended if it is far enough from
// the last retained point. Samples with missing coordinates are dropped.
func (s Simplifier) Append(points []Point, candidate Point) []Point {
	if !candidate.Valid() {
		return points
	}
	if len(points) == 0 {
		return append(points, candidate)
	}
	min := s.MinDistance
	if min <= 0 {
		min = DefaultMinDistance
	}
	if points[len(points)-1].Distance(candidate) <= min {
		return points
	}
	return append(points, candidate)
}
