package solar

import (
	"math"
	"testing"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

// assertBetween checks that x is in [a, b].
func assertBetween(t *testing.T, msg string, x, a, b float64) {
	t.Helper()
	if a <= x && x <= b {
		return
	}
	t.Errorf("got %s = %v, want in range [%v, %v]", msg, x, a, b)
}

func TestComputeEquinoxNoon(t *testing.T) {
	p := Compute(0, 0, 81, 12)
	assertBetween(t, "elevation at equator equinox noon", p.ElevationDeg(), 89, 90)
	assertBetween(t, "|direction|", r3.Norm(p.Direction), 1-1e-12, 1+1e-12)
}

func TestComputeOrientation(t *testing.T) {
	const lat = 48.3
	// Summer noon in the northern hemisphere: the sun is due south.
	noon := Compute(lat, 18, 172, 12)
	assertBetween(t, "noon azimuth", noon.AzimuthRad, -1e-9, 1e-9)
	assertBetween(t, "noon direction Y", noon.Direction.Y, -1, -0.1)
	assertBetween(t, "noon compass azimuth", noon.CompassAzimuthDeg(), 180-1e-6, 180+1e-6)
	// The elevation at noon is 90 - lat + declination.
	assertBetween(t, "noon elevation", noon.ElevationDeg(), 64.5, 65.5)

	// The morning sun is in the east; the afternoon sun in the west.
	morning := Compute(lat, 18, 172, 8)
	if morning.Direction.X <= 0 {
		t.Errorf("morning sun direction %v, want positive X (east)", morning.Direction)
	}
	afternoon := Compute(lat, 18, 172, 16)
	if afternoon.Direction.X >= 0 {
		t.Errorf("afternoon sun direction %v, want negative X (west)", afternoon.Direction)
	}
	// Solar time is symmetric about noon.
	assertBetween(t, "morning/afternoon elevation difference",
		morning.ElevationRad-afternoon.ElevationRad, -1e-9, 1e-9)
}

func TestComputeNight(t *testing.T) {
	for _, hour := range []float64{0, 24} {
		p := Compute(48.3, 18, 172, hour)
		if p.AboveHorizon() {
			t.Errorf("sun above horizon at hour %v: elevation %v°", hour, p.ElevationDeg())
		}
		// The visual position stays above the ground.
		v := p.VisualPosition()
		assertBetween(t, "visual Z at night", v.Z, VisualMinZ, VisualMinZ)
	}
}

func TestVisualPosition(t *testing.T) {
	p := Compute(0, 0, 81, 12)
	v := p.VisualPosition()
	assertBetween(t, "visual radius", r3.Norm(v), VisualRadius-1e-9, VisualRadius+1e-9)
}

func TestPositionAt(t *testing.T) {
	noon := time.Date(2023, time.March, 20, 12, 0, 0, 0, time.UTC)
	p := PositionAt(noon, 0, 0)
	assertBetween(t, "suncalc equinox noon elevation", p.ElevationDeg(), 85, 90)

	midnight := time.Date(2023, time.March, 20, 0, 0, 0, 0, time.UTC)
	if PositionAt(midnight, 0, 0).AboveHorizon() {
		t.Errorf("sun above horizon at midnight")
	}
}

func TestDayOfYear(t *testing.T) {
	day, hour := DayOfYear(time.Date(2023, time.February, 1, 13, 30, 0, 0, time.UTC))
	if day != 32 {
		t.Errorf("got day %d, want 32", day)
	}
	assertBetween(t, "hour", hour, 13.5, 13.5)
}

func TestDNI(t *testing.T) {
	assertBetween(t, "DNI at zenith", DNI(math.Pi/2, 1), 952.6, 952.8)
	assertBetween(t, "DNI at zenith, overcast", DNI(math.Pi/2, 0.5), 476.3, 476.4)
	assertBetween(t, "DNI at horizon", DNI(0, 1), 0, 0)
	assertBetween(t, "DNI below horizon", DNI(-0.1, 1), 0, 0)

	prev := 0.0
	for deg := 1.0; deg <= 90; deg++ {
		dni := DNI(deg*deg2rad, 1)
		if dni <= prev {
			t.Fatalf("DNI not increasing at %v°: %v <= %v", deg, dni, prev)
		}
		prev = dni
	}
}

func TestGlobalIntensity(t *testing.T) {
	// These tests are based on the tables at
	// https://www.ftexploring.com/solar-energy/air-mass-and-insolation2.htm
	assertBetween(t, "GlobalIntensity at 90°", GlobalIntensity(90*deg2rad, 0, 1), 1041, 1042)
	assertBetween(t, "GlobalIntensity at 1°", GlobalIntensity(1*deg2rad, 0, 1), 56, 57)
	assertBetween(t, "GlobalIntensity at 0°", GlobalIntensity(0, 0, 1), 22.4, 22.5)
	assertBetween(t, "GlobalIntensity below horizon", GlobalIntensity(-0.1, 0, 1), 0, 0)

	// Fully shaded leaves only diffuse light.
	full := GlobalIntensity(90*deg2rad, 0, 1)
	assertBetween(t, "GlobalIntensity shaded", GlobalIntensity(90*deg2rad, 0, 0), full/11-1e-9, full/11+1e-9)
}

func TestTemperatureDerating(t *testing.T) {
	assertBetween(t, "derating at horizon", TemperatureDerating(0), 1, 1)
	assertBetween(t, "derating at zenith", TemperatureDerating(math.Pi/2), 0.88-1e-12, 0.88+1e-12)
	for deg := 0.0; deg <= 90; deg += 5 {
		assertBetween(t, "derating", TemperatureDerating(deg*deg2rad), MinTempFactor, 1)
	}
}

func TestVisualIntensity(t *testing.T) {
	assertBetween(t, "visual at -5°", VisualIntensity(-5*deg2rad, 1), 0, 0)
	assertBetween(t, "visual at 5°", VisualIntensity(5*deg2rad, 1), 0.15-1e-9, 0.15+1e-9)
	assertBetween(t, "visual at 20°", VisualIntensity(20*deg2rad, 1), 0.55-1e-9, 0.55+1e-9)
	assertBetween(t, "visual at 90°", VisualIntensity(90*deg2rad, 1), 1, 1)
	assertBetween(t, "visual at 90°, overcast", VisualIntensity(90*deg2rad, 0.4), 0.4-1e-9, 0.4+1e-9)
}

func TestGroundShadow(t *testing.T) {
	b := Bounds{Min: r3.Vec{X: 0, Y: 0, Z: 0}, Max: r3.Vec{X: 10, Y: 8, Z: 6}}

	night := Compute(48.3, 18, 172, 0)
	if s := GroundShadow(night.Direction, b, 0); s != nil {
		t.Errorf("got shadow %v at night, want nil", s)
	}

	noon := Compute(48.3, 18, 172, 12)
	s := GroundShadow(noon.Direction, b, 0)
	if s == nil {
		t.Fatalf("no shadow at noon")
	}
	// The noon sun is due south, so the shadow falls due north.
	wantLen := b.Height() / math.Tan(noon.ElevationRad)
	assertBetween(t, "shadow X shift", s[0].X, -1e-9, 1e-9)
	assertBetween(t, "shadow length", s[0].Y, wantLen-1e-9, wantLen+1e-9)
	for _, c := range s {
		assertBetween(t, "shadow Z", c.Z, ShadowLift, ShadowLift)
	}
	assertBetween(t, "shadow width", s[1].X-s[0].X, 10-1e-9, 10+1e-9)
	assertBetween(t, "shadow depth", s[3].Y-s[0].Y, 8-1e-9, 8+1e-9)

	// A lower sun casts a longer shadow.
	evening := GroundShadow(Compute(48.3, 18, 172, 18).Direction, b, 0)
	if evening == nil {
		t.Fatalf("no shadow in the evening")
	}
	shift := func(q *ShadowQuad) float64 { return math.Hypot(q[0].X, q[0].Y) }
	if shift(evening) <= shift(s) {
		t.Errorf("evening shadow shift %v not longer than noon %v", shift(evening), shift(s))
	}
}

func TestDayRange(t *testing.T) {
	rise, set := DayRange(0, 0, 81, 0)
	assertBetween(t, "equatorial day length", set-rise, 11.9, 12.1)

	assertBetween(t, "summer day length at 48°N", DayLength(48.3, 18, 172, 1), 15.5, 16.2)
	assertBetween(t, "winter day length at 48°N", DayLength(48.3, 18, 355, 1), 7.9, 8.5)

	rise, set = DayRange(80, 18, 172, 1)
	assertBetween(t, "polar day sunrise", rise, 0, 0)
	assertBetween(t, "polar day sunset", set, 24, 24)

	rise, set = DayRange(80, 18, 355, 1)
	assertBetween(t, "polar night length", set-rise, 0, 0)

	assertBetween(t, "ApproxUTCOffset", ApproxUTCOffset(18.1), 1, 1)
}

func TestFormatClock(t *testing.T) {
	for _, tc := range []struct {
		hour float64
		want string
	}{
		{6.5, "06:30"},
		{0, "00:00"},
		{17.25, "17:15"},
	} {
		if got := FormatClock(tc.hour); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tc.hour, got, tc.want)
		}
	}
}

func TestDailySunHours(t *testing.T) {
	for _, tc := range []struct {
		day  int
		want float64
	}{{1, 6}, {79, 6}, {80, 10}, {172, 10}, {266, 10}, {267, 6}} {
		if got := DailySunHours(tc.day); got != tc.want {
			t.Errorf("DailySunHours(%d) = %v, want %v", tc.day, got, tc.want)
		}
	}
}
