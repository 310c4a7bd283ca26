package solar

import (
	"time"

	"github.com/sixdouglas/suncalc"
)

// PositionAt returns the sun position at time t and the given location,
// using suncalc's ephemeris rather than the day/hour model of Compute.
// Latitude and longitude are in degrees, where north and east are
// positive, respectively.
func PositionAt(t time.Time, latitudeDeg, longitudeDeg float64) Position {
	p := suncalc.GetPosition(t, latitudeDeg, longitudeDeg)
	// suncalc returns angles in radians (even though it takes latitude
	// and longitude in degrees). Its azimuth is measured from south with
	// west positive, which is already our convention.
	return fromAngles(p.Altitude, p.Azimuth)
}

// DayOfYear returns t's day of year and local hour of day in the form
// Compute expects.
func DayOfYear(t time.Time) (day int, hour float64) {
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return t.YearDay(), t.Sub(midnight).Hours()
}
