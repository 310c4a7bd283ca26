package panel

import (
	"math"
	"testing"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

const tol = 1e-9

func square(size float64) Face {
	return FlatFace(solar.Bounds{Max: r3.Vec{X: size, Y: size, Z: 3}})
}

func TestTileCounts(t *testing.T) {
	s := DefaultSpec()
	face := square(10)
	got := Tile(face, s)

	wantU := int(math.Floor((10 - 0.6) / (1 + 0.05)))
	wantV := int(math.Floor((10 - 0.6) / (1.6 + 0.05)))
	require.Equal(t, 8, wantU)
	require.Equal(t, 5, wantV)
	require.Len(t, got, wantU*wantV)

	var sum r3.Vec
	for i, p := range got {
		assert.Equal(t, r3.Vec{Z: 1}, p.Normal, "placement %d normal", i)
		assert.Equal(t, 400.0, p.PowerRatingW)
		assert.InDelta(t, 3, p.Center.Z, tol)

		// The whole panel lies inside the usable area.
		assert.GreaterOrEqual(t, p.Center.X-p.WidthM/2, s.EdgeOffsetM-tol, "placement %d", i)
		assert.LessOrEqual(t, p.Center.X+p.WidthM/2, face.Width-s.EdgeOffsetM+tol, "placement %d", i)
		assert.GreaterOrEqual(t, p.Center.Y-p.HeightM/2, s.EdgeOffsetM-tol, "placement %d", i)
		assert.LessOrEqual(t, p.Center.Y+p.HeightM/2, face.Height-s.EdgeOffsetM+tol, "placement %d", i)
		assert.True(t, face.Contains(p.Center, 0))

		sum = r3.Add(sum, p.Center)
	}
	// The grid is centered on the face.
	mean := r3.Scale(1/float64(len(got)), sum)
	assert.InDelta(t, 5, mean.X, 1e-9)
	assert.InDelta(t, 5, mean.Y, 1e-9)
}

func TestTileEmpty(t *testing.T) {
	s := DefaultSpec()
	assert.Nil(t, Tile(square(0.5), s), "edge offsets consume the face")
	assert.Nil(t, Tile(square(1.5), s), "no room for a panel")

	s.WidthM, s.GapM = 0, 0
	assert.Nil(t, Tile(square(10), s), "zero pitch")
}

func TestTileSlopedFace(t *testing.T) {
	// A 30° slope rising toward the north, so it faces south.
	slope := 30 * math.Pi / 180
	face := Face{
		Origin: r3.Vec{Z: 3},
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: math.Cos(slope), Z: math.Sin(slope)},
		Width:  6,
		Height: 4,
	}
	assert.InDelta(t, 30, face.TiltDeg(), 1e-9)
	assert.InDelta(t, 180, face.AzimuthDeg(), 1e-9)

	got := Tile(face, DefaultSpec())
	require.NotEmpty(t, got)
	for _, p := range got {
		assert.InDelta(t, 0, r3.Dot(p.Normal, face.U), tol)
		assert.InDelta(t, 0, r3.Dot(p.Normal, face.V), tol)
		assert.InDelta(t, 1, r3.Norm(p.Normal), tol)
		assert.True(t, face.Contains(p.Center, tol))
		// Centers lie on the face plane.
		assert.InDelta(t, 0, r3.Dot(r3.Sub(p.Center, face.Origin), face.Normal()), tol)
	}
}

func TestTileRacked(t *testing.T) {
	s := DefaultSpec()
	s.RackTiltDeg = 25
	flat := square(10)

	// Rows 1.6 m × 2.0 + 0.05 m apart fit twice into 9.4 m.
	got := Tile(flat, s)
	require.Len(t, got, 8*2)
	assert.InDelta(t, 3.25, got[8].Center.Y-got[0].Center.Y, 1e-9)
	assert.Equal(t, 25.0, s.Tilt(flat))
	assert.Equal(t, 0.0, DefaultSpec().Tilt(flat))

	// Sloped faces ignore the racks.
	slope := 30 * math.Pi / 180
	sloped := Face{
		U:      r3.Vec{X: 1},
		V:      r3.Vec{Y: math.Cos(slope), Z: math.Sin(slope)},
		Width:  6,
		Height: 4,
	}
	assert.Equal(t, Tile(sloped, DefaultSpec()), Tile(sloped, s))
	assert.InDelta(t, 30, s.Tilt(sloped), 1e-9)
}

func TestFaceOrientation(t *testing.T) {
	flat := square(4)
	assert.Equal(t, 0.0, flat.TiltDeg())
	assert.Equal(t, 180.0, flat.AzimuthDeg())
	assert.Equal(t, 16.0, flat.Area())

	// A wall facing east.
	east := Face{U: r3.Vec{Y: 1}, V: r3.Vec{Z: 1}, Width: 1, Height: 1}
	assert.InDelta(t, 90, east.TiltDeg(), 1e-9)
	assert.InDelta(t, 90, east.AzimuthDeg(), 1e-9)
}

func TestAggregatePower(t *testing.T) {
	ps := Tile(square(10), DefaultSpec())[:2]
	got := AggregatePower(ps, 1000, 1, 1, 0.2, DefaultLosses())
	assert.InDelta(t, 0.64*0.96*0.95, got, 1e-12)

	half := AggregatePower(ps, 1000, 1, 0.5, 0.2, DefaultLosses())
	assert.InDelta(t, got/2, half, 1e-12)

	assert.Equal(t, 0.0, AggregatePower(nil, 1000, 1, 1, 0.2, DefaultLosses()))
	assert.Equal(t, 0.0, AggregatePower(ps, 0, 1, 1, 0.2, DefaultLosses()))
	assert.Equal(t, 0.0, AggregatePower(ps, -5, 1, 1, 0.2, DefaultLosses()))
}

func TestShading(t *testing.T) {
	assert.Equal(t, 1.0, ShadingFactor(nil))
	assert.Equal(t, 0.5, ShadingFactor([]float64{1, 1, 0.5, 0}))
	assert.Equal(t, MinShadingFactor, ShadingFactor([]float64{0, 0.05}))

	assert.Equal(t, 1.0, PanelShading(1))
	assert.Equal(t, ShadedOutput, PanelShading(0))
	assert.Equal(t, ShadedOutput, PanelShading(0.05))
	assert.Equal(t, 0.5, PanelShading(0.5))
}

func TestEvaluate(t *testing.T) {
	zenith := solar.Position{ElevationRad: math.Pi / 2, Direction: r3.Vec{Z: 1}}
	ps := Tile(square(10), DefaultSpec())[:2]
	l := DefaultLosses()

	r := Evaluate(ps, 0.2, l, Conditions{Sun: zenith, WeatherFactor: 1, DayOfYear: 172})
	dni := solar.DNI(math.Pi/2, 1)
	temp := solar.TemperatureDerating(math.Pi / 2)
	perPanel := dni * 1.6 * 0.2 * temp * l.Soiling * l.Aging / 1000
	assert.InDelta(t, dni, r.DNI, tol)
	assert.InDelta(t, 2*perPanel, r.DCPowerKW, 1e-12)
	assert.InDelta(t, 2*perPanel*l.Inverter*l.DCAC, r.ACPowerKW, 1e-12)
	assert.InDelta(t, r.ACPowerKW*10, r.DailyEnergyKWh, 1e-12)
	assert.InDelta(t, 0.8, r.RatedPowerKW, tol)
	assert.InDelta(t, r.ACPowerKW/0.8*100, r.SystemEfficiency, 1e-9)
	assert.Equal(t, 1.0, r.ShadingFactor)
	require.Len(t, r.Panels, 2)

	// Shade one of the panels.
	shaded := Evaluate(ps, 0.2, l, Conditions{Sun: zenith, WeatherFactor: 1, DayOfYear: 10, Light: []float64{1, 0.05}})
	assert.InDelta(t, perPanel*(1+ShadedOutput), shaded.DCPowerKW, 1e-12)
	assert.Equal(t, 0.5, shaded.ShadingFactor)
	assert.InDelta(t, shaded.ACPowerKW*6, shaded.DailyEnergyKWh, 1e-12)

	// Panels facing away from the sun receive nothing.
	night := Evaluate(ps, 0.2, l, Conditions{Sun: solar.Compute(48, 18, 172, 0), WeatherFactor: 1})
	assert.Equal(t, 0.0, night.ACPowerKW)

	assert.Equal(t, 0.0, Evaluate(nil, 0.2, l, Conditions{Sun: zenith}).ACPowerKW)
}

func TestEvaluateShortLight(t *testing.T) {
	zenith := solar.Position{ElevationRad: math.Pi / 2, Direction: r3.Vec{Z: 1}}
	ps := Tile(square(10), DefaultSpec())[:4]
	l := DefaultLosses()

	full := Evaluate(ps, 0.2, l, Conditions{Sun: zenith, WeatherFactor: 1})
	var r Report
	require.NotPanics(t, func() {
		r = Evaluate(ps, 0.2, l, Conditions{Sun: zenith, WeatherFactor: 1, Light: []float64{0}})
	})
	// Panels past the end of Light are unshaded.
	require.Len(t, r.Panels, 4)
	assert.Equal(t, ShadedOutput, r.Panels[0].Shading)
	for _, p := range r.Panels[1:] {
		assert.Equal(t, 1.0, p.Shading)
	}
	assert.Equal(t, 0.75, r.ShadingFactor)
	assert.InDelta(t, full.DCPowerKW*(3+ShadedOutput)/4, r.DCPowerKW, 1e-12)

	// Extra entries are ignored.
	long := Evaluate(ps, 0.2, l, Conditions{Sun: zenith, WeatherFactor: 1, Light: []float64{1, 1, 1, 1, 0, 0}})
	assert.Equal(t, 1.0, long.ShadingFactor)
	assert.InDelta(t, full.DCPowerKW, long.DCPowerKW, 1e-12)
}

func TestFactors(t *testing.T) {
	for _, tc := range []struct{ tilt, want float64 }{
		{0, 0.85}, {7, 0.88}, {15, 0.94}, {25, 0.98}, {35, 1}, {45, 0.97}, {55, 0.91}, {70, 0.84},
	} {
		assert.Equal(t, tc.want, TiltFactor(tc.tilt), "tilt %v", tc.tilt)
	}
	for _, tc := range []struct{ az, want float64 }{
		{180, 1}, {200, 1}, {150, 0.94}, {225, 0.94}, {120, 0.88}, {90, 0.82}, {-90, 0.82},
		{80, 0.76}, {290, 0.76}, {50, 0.70}, {30, 0.63}, {330, 0.63}, {0, 0.55}, {360, 0.55}, {10, 0.55},
	} {
		assert.Equal(t, tc.want, OrientationFactor(tc.az), "azimuth %v", tc.az)
	}
	for _, tc := range []struct{ tilt, want float64 }{
		{0, 1}, {5, 1}, {10, 1.2}, {15, 1.5}, {30, 2}, {45, 2.5},
	} {
		assert.Equal(t, tc.want, RowSpacingFactor(tc.tilt), "tilt %v", tc.tilt)
	}
}

func TestChimneyImpact(t *testing.T) {
	assert.Equal(t, 1.0, ChimneyImpact(nil, 100))
	one := []Chimney{{WidthM: 0.6, LengthM: 0.6, HeightM: 1.2}}
	assert.InDelta(t, 1-(0.02+0.36*1.2*2/100), ChimneyImpact(one, 100), 1e-12)

	many := make([]Chimney, 10)
	for i := range many {
		many[i] = one[0]
	}
	assert.InDelta(t, 0.75, ChimneyImpact(many, 10), 1e-12)
}

func TestAnnual(t *testing.T) {
	y := Annual(10, 400, 1)
	assert.InDelta(t, 4, y.SystemPowerKW, tol)
	assert.InDelta(t, 3840, y.AnnualKWh, 1e-9)
	assert.InDelta(t, 3840.0/365, y.DailyKWh, 1e-9)

	combined := TiltFactor(35) * OrientationFactor(90) * 0.9
	assert.InDelta(t, 3840*combined, Annual(10, 400, combined).AnnualKWh, 1e-9)
}
