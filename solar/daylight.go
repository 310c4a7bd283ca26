package solar

import (
	"fmt"
	"math"
)

// DayRange returns the local clock times of sunrise and sunset, in hours,
// on the given day at the given location. utcOffsetHours is the local
// clock's offset from UTC, including any daylight saving.
//
// During polar day it returns (0, 24); during polar night (12, 12).
func DayRange(latitudeDeg, longitudeDeg float64, dayOfYear int, utcOffsetHours float64) (sunrise, sunset float64) {
	n := float64(dayOfYear)
	lat := latitudeDeg * deg2rad
	decl := 23.45 * deg2rad * math.Sin(2*math.Pi*(284+n)/365)

	// Equation of time, in minutes.
	b := 2 * math.Pi * (n - 81) / 365
	eot := 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)

	// 4 minutes per degree away from the time zone's meridian.
	correction := 4*(longitudeDeg-utcOffsetHours*15) + eot

	cosHA := -math.Tan(lat) * math.Tan(decl)
	switch {
	case cosHA < -1:
		return 0, 24
	case cosHA > 1:
		return 12, 12
	}
	halfDay := math.Acos(cosHA) * rad2deg / 15
	noon := 12 - correction/60
	clamp := func(h float64) float64 { return math.Max(0, math.Min(24, h)) }
	return clamp(noon - halfDay), clamp(noon + halfDay)
}

// ApproxUTCOffset estimates a location's standard-time UTC offset from its
// longitude.
func ApproxUTCOffset(longitudeDeg float64) float64 {
	return math.Round(longitudeDeg / 15)
}

// DayLength returns the hours between sunrise and sunset.
func DayLength(latitudeDeg, longitudeDeg float64, dayOfYear int, utcOffsetHours float64) float64 {
	rise, set := DayRange(latitudeDeg, longitudeDeg, dayOfYear, utcOffsetHours)
	return set - rise
}

// FormatClock formats a decimal hour as HH:MM, truncating to the minute.
func FormatClock(hour float64) string {
	h := int(hour)
	m := int((hour - float64(h)) * 60)
	return fmt.Sprintf("%02d:%02d", h, m)
}

// DailySunHours returns the effective full-sun hours used to turn
// instantaneous power into a daily energy estimate: a long season from
// the spring to the autumn equinox and a short one otherwise.
func DailySunHours(dayOfYear int) float64 {
	if dayOfYear >= 80 && dayOfYear <= 266 {
		return 10
	}
	return 6
}
