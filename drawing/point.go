// Package drawing implements the 2D geometry behind interactively drawing a
// building footprint: right-angle snapping, shoelace area and perimeter,
// self-intersection checks, and the screen/drawing viewport transform.
//
// All coordinates are in drawing space, not screen pixels. A caller-supplied
// scale factor converts drawing units to meters.
//
// Every function in this package is pure. Malformed or partial geometry
// (zero-length vectors, too few points) produces a defined degenerate result
// rather than an error, because footprints are measured continuously while
// they are still being drawn.
package drawing

import "math"

// Epsilon is the distance below which two points are considered coincident.
const Epsilon = 1e-9

// A Point is a position or vector in drawing space.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the z component of the 3D cross product of p and q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Perp returns p rotated 90° counter-clockwise.
func (p Point) Perp() Point {
	return Point{-p.Y, p.X}
}

// Unit returns the unit vector in the direction of p, or the zero vector if
// p has zero length.
func (p Point) Unit() Point {
	l := p.Length()
	if l <= Epsilon {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

// AngleBetween returns the angle between vectors v1 and v2 in degrees, in
// the range [0, 180]. If either vector has zero length, it returns 0.
func AngleBetween(v1, v2 Point) float64 {
	m1, m2 := v1.Length(), v2.Length()
	if m1 == 0 || m2 == 0 {
		return 0
	}
	cos := v1.Dot(v2) / (m1 * m2)
	// Rounding can push cos just outside [-1, 1].
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * (180 / math.Pi)
}
