package drawing

import (
	"errors"
	"fmt"
	"math"
)

// DefaultSnapTolerance is the default angle tolerance for right-angle
// snapping, in degrees.
const DefaultSnapTolerance = 15

// ForceTolerance is how close to 90° a corner must already be for
// ForceRightAngleAt to leave it alone, in degrees.
const ForceTolerance = 5

// ErrNotApplicable is returned by operations that have nothing to do for
// the given input. Callers should treat it as a no-op, not a failure.
var ErrNotApplicable = errors.New("not applicable")

// SnapConfig controls right-angle snapping for a drawing session.
type SnapConfig struct {
	Enabled bool `yaml:"enabled"`

	// ToleranceDeg is the maximum deviation from 90° that gets snapped.
	ToleranceDeg float64 `yaml:"tolerance_deg"`
}

// DefaultSnapConfig returns snapping enabled with DefaultSnapTolerance.
func DefaultSnapConfig() SnapConfig {
	return SnapConfig{Enabled: true, ToleranceDeg: DefaultSnapTolerance}
}

// AppendPoint returns the point that should be appended to a footprint
// whose existing points are prior, given the user's candidate point.
//
// If snapping is enabled and there are at least two prior points, the angle
// at the last prior point between the previous segment and the new segment
// is measured. When it is within cfg.ToleranceDeg of 90°, the candidate is
// projected onto the line through the last point perpendicular to the
// previous segment. The sign of the projection picks whichever of the two
// perpendicular directions is closer to the candidate. Axis-aligned segments
// need no special case: the projection keeps the candidate's coordinate
// along the perpendicular axis exactly.
//
// AppendPoint does not modify prior. A zero-length previous segment
// disables snapping for this point.
func AppendPoint(candidate Point, cfg SnapConfig, prior []Point) Point {
	n := len(prior)
	if !cfg.Enabled || n < 2 {
		return candidate
	}
	prevPrev, prev := prior[n-2], prior[n-1]
	v1 := prev.Sub(prevPrev)
	if v1.Length() <= Epsilon {
		return candidate
	}
	v2 := candidate.Sub(prev)
	if math.Abs(AngleBetween(v1, v2)-90) > cfg.ToleranceDeg {
		return candidate
	}
	normal := v1.Perp().Unit()
	return prev.Add(normal.Scale(v2.Dot(normal)))
}

// ForceRightAngleAt computes a new position for the vertex following
// vertexIndex so that the corner at vertexIndex becomes exactly 90°. The
// caller replaces index (vertexIndex+1) mod n with the result.
//
// The new point lies on the perpendicular to (prev - curr) through curr, at
// the original distance |next - curr|, on whichever side is closer to the
// original next point.
//
// It returns an error wrapping ErrNotApplicable if the footprint is open,
// has fewer than 3 points, vertexIndex is out of range, either neighbor
// coincides with the vertex, or the corner is already within ForceTolerance
// of 90°.
func ForceRightAngleAt(fp *Footprint, vertexIndex int) (Point, error) {
	n := len(fp.Points)
	switch {
	case !fp.Closed:
		return Point{}, fmt.Errorf("footprint is open: %w", ErrNotApplicable)
	case n < 3:
		return Point{}, fmt.Errorf("footprint has %d points: %w", n, ErrNotApplicable)
	case vertexIndex < 0 || vertexIndex >= n:
		return Point{}, fmt.Errorf("vertex %d out of range [0, %d): %w", vertexIndex, n, ErrNotApplicable)
	}

	prev := fp.Points[(vertexIndex-1+n)%n]
	curr := fp.Points[vertexIndex]
	next := fp.Points[(vertexIndex+1)%n]
	v1 := prev.Sub(curr)
	v2 := next.Sub(curr)
	if v1.Length() <= Epsilon || v2.Length() <= Epsilon {
		return Point{}, fmt.Errorf("degenerate corner at vertex %d: %w", vertexIndex, ErrNotApplicable)
	}
	if math.Abs(AngleBetween(v1, v2)-90) <= ForceTolerance {
		return Point{}, fmt.Errorf("vertex %d is already square: %w", vertexIndex, ErrNotApplicable)
	}

	offset := v1.Perp().Unit().Scale(v2.Length())
	opt1, opt2 := curr.Add(offset), curr.Sub(offset)
	if next.Distance(opt1) <= next.Distance(opt2) {
		return opt1, nil
	}
	return opt2, nil
}
