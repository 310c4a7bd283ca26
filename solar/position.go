// Package solar computes the sun's position, the irradiance it delivers,
// and the ground shadow it casts, using a simplified solar model suitable
// for interactive visualization.
//
// The model coordinate system is as follows:
//
//	Z/up
//	|  Y/north
//	| /
//	|/____ X/east
//
// Azimuths follow the convention of the classic hour-angle formula (and of
// suncalc): 0 is south and positive angles are toward the west.
//
// Every function here is a pure function of its arguments. Out-of-range
// inputs such as a sun below the horizon produce defined values (zero
// irradiance, a nil shadow) rather than errors; callers check
// Position.AboveHorizon before using direction-dependent results.
package solar

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	deg2rad = math.Pi / 180
	rad2deg = 180 / math.Pi
)

// VisualRadius is the distance from the origin at which the sun is drawn.
const VisualRadius = 150

// VisualMinZ is the lowest height at which the sun is drawn. It keeps the
// rendered sun above the ground plane even at night; it says nothing about
// whether the sun is up.
const VisualMinZ = 1

// Position is the sun's position in the sky.
type Position struct {
	// ElevationRad is the angle of the sun above the horizon in radians.
	// It is negative when the sun is down.
	ElevationRad float64

	// AzimuthRad is the sun's azimuth in radians, 0 at south and positive
	// toward the west.
	AzimuthRad float64

	// Direction is the unit vector from the origin toward the sun.
	Direction r3.Vec
}

// Compute returns the sun position at the given latitude and longitude (in
// degrees, north and east positive), day of year (1–365) and local solar
// hour of day (0–24).
//
// Longitude is accepted for symmetry with the other entry points but does
// not affect the result: hour is already local solar time.
func Compute(latitudeDeg, longitudeDeg float64, dayOfYear int, hour float64) Position {
	lat := latitudeDeg * deg2rad
	decl := Declination(dayOfYear)
	ha := HourAngle(hour)

	elev := math.Asin(math.Sin(lat)*math.Sin(decl) + math.Cos(lat)*math.Cos(decl)*math.Cos(ha))
	az := math.Atan2(math.Sin(ha), math.Cos(ha)*math.Sin(lat)-math.Tan(decl)*math.Cos(lat))
	return fromAngles(elev, az)
}

// Declination returns the solar declination on the given day of year, in
// radians.
func Declination(dayOfYear int) float64 {
	return 23.45 * deg2rad * math.Sin(2*math.Pi*(284+float64(dayOfYear))/365.25)
}

// HourAngle returns the hour angle at the given solar hour, in radians.
func HourAngle(hour float64) float64 {
	return 15 * (hour - 12) * deg2rad
}

func fromAngles(elev, az float64) Position {
	return Position{
		ElevationRad: elev,
		AzimuthRad:   az,
		Direction: r3.Unit(r3.Vec{
			X: -math.Sin(az) * math.Cos(elev),
			Y: -math.Cos(az) * math.Cos(elev),
			Z: math.Sin(elev),
		}),
	}
}

// AboveHorizon reports whether the sun is up.
func (p Position) AboveHorizon() bool {
	return p.ElevationRad > 0
}

func (p Position) ElevationDeg() float64 {
	return p.ElevationRad * rad2deg
}

// CompassAzimuthDeg returns the azimuth in degrees in [0, 360), where 0 is
// north and 90 is east.
func (p Position) CompassAzimuthDeg() float64 {
	return math.Mod(p.AzimuthRad*rad2deg+180+360, 360)
}

// VisualPosition returns where to draw the sun: VisualRadius along the
// sun direction, with Z raised to at least VisualMinZ.
func (p Position) VisualPosition() r3.Vec {
	v := r3.Scale(VisualRadius, p.Direction)
	if v.Z < VisualMinZ {
		v.Z = VisualMinZ
	}
	return v
}
