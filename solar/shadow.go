package solar

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ShadowLift is how far above the ground plane a shadow is drawn, to
// avoid z-fighting with the ground.
const ShadowLift = 0.01

// Bounds is an axis-aligned box.
type Bounds struct {
	Min, Max r3.Vec
}

// Height returns the vertical extent of b.
func (b Bounds) Height() float64 {
	return b.Max.Z - b.Min.Z
}

// A ShadowQuad is a shadow on the ground, as four corners in
// counter-clockwise order.
type ShadowQuad [4]r3.Vec

// GroundShadow returns the shadow a building with bounding box b casts on
// the ground plane at groundZ, with the sun in direction sunDir. It returns
// nil if the sun is at or below the horizon.
//
// The shadow is the building's footprint translated away from the sun by
// height/tan(elevation). This treats the building as its bounding box and
// ignores the roof shape; it is meant for visualization, not as a precise
// shadow caster.
func GroundShadow(sunDir r3.Vec, b Bounds, groundZ float64) *ShadowQuad {
	if sunDir.Z <= 0 {
		return nil
	}
	sunDir = r3.Unit(sunDir)
	elev := math.Asin(sunDir.Z)
	length := b.Height() / math.Tan(elev)

	var offset r3.Vec
	horiz := r3.Vec{X: -sunDir.X, Y: -sunDir.Y}
	if r3.Norm(horiz) > 0 {
		offset = r3.Scale(length, r3.Unit(horiz))
	}
	z := groundZ + ShadowLift
	return &ShadowQuad{
		{X: b.Min.X + offset.X, Y: b.Min.Y + offset.Y, Z: z},
		{X: b.Max.X + offset.X, Y: b.Min.Y + offset.Y, Z: z},
		{X: b.Max.X + offset.X, Y: b.Max.Y + offset.Y, Z: z},
		{X: b.Min.X + offset.X, Y: b.Max.Y + offset.Y, Z: z},
	}
}
