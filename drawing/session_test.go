package drawing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionDrawSquare(t *testing.T) {
	s := NewSession(DefaultSnapConfig())
	assert.Equal(t, StateIdle, s.State())

	for _, click := range []Point{Pt(0, 0), Pt(10, 0), Pt(10.4, 10), Pt(0, 10.3)} {
		_, ok := s.Click(click)
		require.True(t, ok)
	}
	assert.Equal(t, StatePlacing, s.State())
	assert.Equal(t, Pt(10, 10), s.Footprint.Points[2], "snapped to the first segment's perpendicular")
	assert.Equal(t, Pt(0, 10), s.Footprint.Points[3], "snapped to the second segment's perpendicular")

	require.NoError(t, s.Complete())
	assert.Equal(t, StateComplete, s.State())
	assert.True(t, s.Footprint.Closed)
	assert.InDelta(t, 100, Area(s.Footprint.Points), 1e-9)
	assert.False(t, HasSelfIntersections(s.Footprint.Points))

	m := s.Measurements(0.5)
	assert.Equal(t, 4, m.Points)
	assert.InDelta(t, 25, m.AreaM2, 1e-9)
	assert.InDelta(t, 20, m.PerimeterM, 1e-9)
	assert.True(t, m.Complete)

	_, ok := s.Click(Pt(5, 5))
	assert.False(t, ok, "clicks are ignored once complete")
}

func TestSessionCompleteNeedsThreePoints(t *testing.T) {
	s := NewSession(DefaultSnapConfig())
	assert.True(t, errors.Is(s.Complete(), ErrNotApplicable))

	s.Click(Pt(0, 0))
	s.Click(Pt(1, 0))
	assert.True(t, errors.Is(s.Complete(), ErrNotApplicable))
	assert.Equal(t, StatePlacing, s.State())
}

func TestSessionDuplicateClick(t *testing.T) {
	s := NewSession(SnapConfig{})
	s.Click(Pt(1, 1))
	_, ok := s.Click(Pt(1, 1))
	assert.False(t, ok)
	assert.Equal(t, 1, s.Footprint.Len())
}

func TestSessionDragAndForce(t *testing.T) {
	s := NewSession(SnapConfig{})
	for _, p := range []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)} {
		s.Click(p)
	}
	require.NoError(t, s.Complete())

	require.NoError(t, s.BeginDrag(2))
	assert.Equal(t, StateDragging, s.State())
	assert.Equal(t, 2, s.Dragging())
	assert.True(t, s.DragTo(Pt(12, 10)))
	assert.False(t, s.DragTo(Pt(10, 0)), "cannot drop onto a neighbor")
	s.EndDrag()
	assert.Equal(t, StateComplete, s.State())
	assert.Equal(t, Pt(12, 10), s.Footprint.Points[2])

	require.NoError(t, s.ForceRightAngle(1))
	p := s.Footprint.Points[2]
	assert.InDelta(t, 10, p.X, 1e-9)
	assert.InDelta(t, 90, AngleBetween(Pt(-10, 0), p.Sub(Pt(10, 0))), 1e-9)

	assert.True(t, errors.Is(s.ForceRightAngle(1), ErrNotApplicable), "second force is a no-op")
}

func TestSessionUndoAndClear(t *testing.T) {
	s := NewSession(SnapConfig{})
	for _, p := range []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)} {
		s.Click(p)
	}
	require.NoError(t, s.Complete())

	assert.True(t, s.Undo())
	assert.Equal(t, StatePlacing, s.State())
	assert.False(t, s.Footprint.Closed)
	assert.Equal(t, 2, s.Footprint.Len())

	s.Undo()
	s.Undo()
	assert.Equal(t, StateIdle, s.State())
	assert.False(t, s.Undo())

	s.Click(Pt(3, 3))
	s.Clear()
	assert.Equal(t, StateIdle, s.State())
	assert.Equal(t, 0, s.Footprint.Len())
}

func TestSessionPreview(t *testing.T) {
	s := NewSession(DefaultSnapConfig())
	s.Click(Pt(0, 0))
	s.Click(Pt(10, 0))
	assert.Equal(t, Pt(10, 7), s.Preview(Pt(10.3, 7)))
	assert.Equal(t, 2, s.Footprint.Len(), "preview does not place a point")
}
