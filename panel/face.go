// Package panel lays out PV panels on planar roof faces and estimates the
// power and energy they produce.
package panel

import (
	"math"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
)

// A Face is a planar rectangle in 3D that panels can be tiled on, such as a
// flat roof top or one slope of a gable roof.
//
// The rectangle spans Width along U and Height along V starting at Origin.
// U and V must be orthogonal unit vectors; U × V points out of the roof.
type Face struct {
	Origin r3.Vec
	U, V   r3.Vec
	Width  float64
	Height float64
}

// FlatFace returns the horizontal face covering the top of b.
func FlatFace(b solar.Bounds) Face {
	return Face{
		Origin: r3.Vec{X: b.Min.X, Y: b.Min.Y, Z: b.Max.Z},
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: 1},
		Width:  b.Max.X - b.Min.X,
		Height: b.Max.Y - b.Min.Y,
	}
}

// Normal returns the unit normal of f.
func (f Face) Normal() r3.Vec {
	return r3.Unit(r3.Cross(f.U, f.V))
}

// Area returns the area of f in m².
func (f Face) Area() float64 {
	return f.Width * f.Height
}

// TiltDeg returns the angle between f and the horizontal, in degrees.
func (f Face) TiltDeg() float64 {
	n := f.Normal()
	return math.Acos(math.Max(-1, math.Min(1, n.Z))) * 180 / math.Pi
}

// AzimuthDeg returns the compass direction f faces, in degrees, where 0 is
// north and 90 is east. A horizontal face has no direction and reports 180
// (south), which scores as optimal in OrientationFactor.
func (f Face) AzimuthDeg() float64 {
	n := f.Normal()
	if math.Hypot(n.X, n.Y) < 1e-9 {
		return 180
	}
	return math.Mod(math.Atan2(n.X, n.Y)*180/math.Pi+360, 360)
}

// Contains reports whether p, projected onto the plane of f, lies within
// f, allowing tol of slack on every side.
func (f Face) Contains(p r3.Vec, tol float64) bool {
	d := r3.Sub(p, f.Origin)
	u, v := r3.Dot(d, f.U), r3.Dot(d, f.V)
	return u >= -tol && u <= f.Width+tol && v >= -tol && v <= f.Height+tol
}

// at returns the point u along U and v along V from the origin.
func (f Face) at(u, v float64) r3.Vec {
	return r3.Add(f.Origin, r3.Add(r3.Scale(u, f.U), r3.Scale(v, f.V)))
}
