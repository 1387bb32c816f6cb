package board

import (
	"testing"

	"InkNotes/internal/ink"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(opts Options) *Controller {
	if opts.Style == (Style{}) {
		opts.Style = Style{Color: "#000000", Width: 2, Tool: ink.ToolPencil}
	}
	return NewController(opts)
}

// stroke feeds a full pointer lifecycle through the controller.
func stroke(c *Controller, points ...ink.Point) {
	c.Begin(points[0])
	for _, p := range points[1:] {
		c.Move(p)
	}
	c.End()
}

func TestCommitAppendsStroke(t *testing.T) {
	t.Parallel()
	var emitted []ink.Drawing
	c := newTestController(Options{OnChange: func(d ink.Drawing) { emitted = append(emitted, d) }})

	stroke(c, ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 0))

	require.Equal(t, 1, c.StrokeCount())
	s := c.Drawing()[0]
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 0)}, s.Points)
	assert.Equal(t, "#000000", s.Color)
	assert.Equal(t, ink.ToolPencil, s.Tool)

	require.Len(t, emitted, 1)
	assert.Equal(t, c.Drawing(), emitted[0])
}

func TestSingleSampleTapIsDiscarded(t *testing.T) {
	t.Parallel()
	calls := 0
	c := newTestController(Options{OnChange: func(ink.Drawing) { calls++ }})

	c.Begin(ink.Pt(5, 5))
	c.End()

	assert.Zero(t, c.StrokeCount())
	assert.Zero(t, calls, "discarded gesture must not emit")
}

// A gesture that moves but never escapes the simplifier threshold commits
// a one-point stroke: a dot.
func TestTinyGestureCommitsDot(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{MinDistance: 2})

	stroke(c, ink.Pt(5, 5), ink.Pt(5.3, 5), ink.Pt(5, 5.3), ink.Pt(5.2, 5.2))

	require.Equal(t, 1, c.StrokeCount())
	s := c.Drawing()[0]
	require.Len(t, s.Points, 1)

	prims := ink.RenderStroke(s)
	require.Len(t, prims, 1)
	assert.Equal(t, ink.PrimitiveDot, prims[0].Kind)
}

func TestMoveRunsThroughSimplifier(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{MinDistance: 2})

	stroke(c, ink.Pt(0, 0), ink.Pt(1, 0), ink.Pt(5, 0), ink.Pt(5.5, 0), ink.Pt(10, 0))

	require.Equal(t, 1, c.StrokeCount())
	assert.Equal(t, []ink.Point{ink.Pt(0, 0), ink.Pt(5, 0), ink.Pt(10, 0)}, c.Drawing()[0].Points)
}

func TestBeginSupersedesUnfinishedGesture(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})

	c.Begin(ink.Pt(0, 0))
	c.Move(ink.Pt(10, 0))
	// Pointer lost; a new gesture starts without End.
	stroke(c, ink.Pt(100, 100), ink.Pt(110, 100))

	require.Equal(t, 1, c.StrokeCount())
	assert.Equal(t, ink.Pt(100, 100), c.Drawing()[0].Points[0])
}

func TestEraseCommit(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})
	stroke(c, ink.Pt(0, 0), ink.Pt(10, 0))
	stroke(c, ink.Pt(0, 50), ink.Pt(10, 50))
	require.Equal(t, 2, c.StrokeCount())

	// Width 10 -> radius 5: wipes the first stroke, misses the second.
	c.SetStyle(Style{Color: "#000000", Width: 10, Tool: ink.ToolEraser})
	stroke(c, ink.Pt(0, 1), ink.Pt(10, 1))

	require.Equal(t, 1, c.StrokeCount())
	assert.Equal(t, ink.Pt(0, 50), c.Drawing()[0].Points[0])
}

func TestEraserPathIsNeverCommittedAsInk(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{Style: Style{Color: "#000000", Width: 10, Tool: ink.ToolEraser}})

	stroke(c, ink.Pt(0, 0), ink.Pt(100, 0))

	assert.Zero(t, c.StrokeCount())
}

func TestEraseOnEmptyDrawingIsNoop(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{Style: Style{Color: "#000000", Width: 10, Tool: ink.ToolEraser}})

	stroke(c, ink.Pt(0, 0), ink.Pt(100, 0))
	assert.Zero(t, c.StrokeCount())

	c.Undo()
	assert.Zero(t, c.StrokeCount())
}

// N commits followed by N undos restore the empty drawing, in reverse
// commit order.
func TestSequentialUndo(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})

	const n = 5
	for i := 0; i < n; i++ {
		y := float64(i * 10)
		stroke(c, ink.Pt(0, y), ink.Pt(20, y))
	}
	require.Equal(t, n, c.StrokeCount())

	for i := n - 1; i >= 0; i-- {
		c.Undo()
		require.Equal(t, i, c.StrokeCount())
		if i > 0 {
			last := c.Drawing()[i-1]
			assert.Equal(t, float64((i-1)*10), last.Points[0].Y)
		}
	}
	assert.Empty(t, c.Drawing())

	c.Undo() // nothing left; must not panic or emit
	assert.Empty(t, c.Drawing())
}

func TestUndoRestoresErasedStrokes(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})
	stroke(c, ink.Pt(0, 0), ink.Pt(10, 0), ink.Pt(20, 0))
	before := c.Snapshot()

	c.SetStyle(Style{Color: "#000000", Width: 20, Tool: ink.ToolEraser})
	stroke(c, ink.Pt(0, 0), ink.Pt(20, 0))
	require.Zero(t, c.StrokeCount())

	// Popping the last stroke would restore nothing here; only the full
	// snapshot brings the erased points back.
	c.Undo()
	assert.Equal(t, before, c.Snapshot())
}

func TestClearThenUndoRestoresExactDrawing(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})
	stroke(c, ink.Pt(0, 0), ink.Pt(10, 0))
	stroke(c, ink.Pt(0, 10), ink.Pt(10, 10), ink.Pt(20, 10))
	before := c.Snapshot()

	c.Clear()
	require.Empty(t, c.Drawing())

	c.Undo()
	assert.Equal(t, before, c.Snapshot())
}

func TestBoundedStrokeRetention(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{MaxStrokes: 3})

	for i := 0; i < 5; i++ {
		y := float64(i * 10)
		stroke(c, ink.Pt(0, y), ink.Pt(20, y))
	}

	require.Equal(t, 3, c.StrokeCount())
	// The two oldest strokes were dropped silently.
	assert.Equal(t, 20.0, c.Drawing()[0].Points[0].Y)
	assert.Equal(t, 40.0, c.Drawing()[2].Points[0].Y)
}

func TestBoundedUndoHistory(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{MaxUndo: 2})

	for i := 0; i < 4; i++ {
		y := float64(i * 10)
		stroke(c, ink.Pt(0, y), ink.Pt(20, y))
	}

	c.Undo()
	c.Undo()
	c.Undo() // history exhausted, no-op

	// Only the two most recent snapshots were retained.
	require.Equal(t, 2, c.StrokeCount())
}

func TestChangeCallbackReceivesIsolatedCopy(t *testing.T) {
	t.Parallel()
	var captured ink.Drawing
	c := newTestController(Options{OnChange: func(d ink.Drawing) { captured = d }})

	stroke(c, ink.Pt(0, 0), ink.Pt(10, 0))
	require.NotNil(t, captured)

	captured[0].Points[0] = ink.Pt(-999, -999)
	captured[0].Color = "#ffffff"

	assert.Equal(t, ink.Pt(0, 0), c.Drawing()[0].Points[0])
	assert.Equal(t, "#000000", c.Drawing()[0].Color)
}

func TestPanickingCallbackLeavesStateConsistent(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{OnChange: func(ink.Drawing) { panic("host broke") }})

	require.Panics(t, func() {
		stroke(c, ink.Pt(0, 0), ink.Pt(10, 0))
	})

	// The commit itself has fully happened; only the host blew up.
	require.Equal(t, 1, c.StrokeCount())
	stroke2 := func() {
		c.Begin(ink.Pt(0, 50))
		c.Move(ink.Pt(10, 50))
		defer func() { recover() }()
		c.End()
	}
	stroke2()
	assert.Equal(t, 2, c.StrokeCount())
}

func TestInvalidSamplesAreNoops(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})
	nan := ink.Point{X: 0, Y: 0}
	nan.X = nanValue()

	c.Begin(nan) // stays idle
	c.Move(ink.Pt(10, 0))
	c.End()
	assert.Zero(t, c.StrokeCount())

	stroke(c, ink.Pt(0, 0), nan, ink.Pt(10, 0))
	require.Equal(t, 1, c.StrokeCount())
	assert.Equal(t, []ink.Point{ink.Pt(0, 0), ink.Pt(10, 0)}, c.Drawing()[0].Points)
}

func TestRestoreLoadsHostDrawing(t *testing.T) {
	t.Parallel()
	calls := 0
	c := newTestController(Options{OnChange: func(ink.Drawing) { calls++ }})

	saved := ink.Drawing{ink.NewStroke([]ink.Point{ink.Pt(1, 1), ink.Pt(9, 9)}, "red", 4, ink.ToolMarker)}
	c.Restore(saved)

	assert.Equal(t, saved, c.Snapshot())
	assert.Zero(t, calls, "the host already owns what it restored")

	c.Undo() // history was discarded
	assert.Equal(t, 1, c.StrokeCount())

	// The restored copy is independent of the host's slice.
	saved[0].Points[0] = ink.Pt(-1, -1)
	assert.Equal(t, ink.Pt(1, 1), c.Drawing()[0].Points[0])
}

func TestLiveBufferVisibility(t *testing.T) {
	t.Parallel()
	c := newTestController(Options{})

	_, ok := c.Live()
	assert.False(t, ok)

	c.Begin(ink.Pt(0, 0))
	c.Move(ink.Pt(10, 0))
	pts, ok := c.Live()
	require.True(t, ok)
	assert.Len(t, pts, 2)
	assert.False(t, c.Erasing())

	c.End()
	_, ok = c.Live()
	assert.False(t, ok)

	c.SetStyle(Style{Color: "#000000", Width: 10, Tool: ink.ToolEraser})
	c.Begin(ink.Pt(0, 0))
	_, ok = c.Live()
	assert.False(t, ok, "erase paths are never shown as ink")
	assert.True(t, c.Erasing())
	c.End()
}

func TestDefaultsApplied(t *testing.T) {
	t.Parallel()
	c := NewController(Options{})
	assert.Equal(t, DefaultStyle, c.Style())

	c.SetStyle(Style{Tool: ink.ToolBrush})
	assert.Equal(t, DefaultStyle.Width, c.Style().Width)
	assert.Equal(t, DefaultStyle.Color, c.Style().Color)
	assert.Equal(t, ink.ToolBrush, c.Style().Tool)
}

func nanValue() float64 {
	zero := 0.0
	return zero / zero
}
