package panel

import (
	"math"

	"github.com/Kubis4/PVmizer-GEO-sub002/solar"
	"gonum.org/v1/gonum/spatial/r3"
)

// Losses are the fixed system loss factors, each a multiplier between 0
// and 1.
type Losses struct {
	Inverter float64 `yaml:"inverter"`
	DCAC     float64 `yaml:"dc_ac"`
	Soiling  float64 `yaml:"soiling"`
	Aging    float64 `yaml:"aging"`
}

// DefaultLosses returns the losses of a typical residential system.
func DefaultLosses() Losses {
	return Losses{
		Inverter: 0.96,
		DCAC:     0.95,
		Soiling:  0.95,
		Aging:    0.98,
	}
}

// Shading parameters.
const (
	// ShadedOutput is the fraction of normal output a shaded panel still
	// produces from diffuse light.
	ShadedOutput = 0.3

	// MinShadingFactor is the floor of the system shading factor.
	MinShadingFactor = 0.1
)

// AggregatePower returns the AC output in kW of the given panels under
// direct normal irradiance dni (W/m², already scaled for weather).
// temperature and shading are system-wide multipliers.
//
// This applies only the inverter and DC/AC losses; see Evaluate for the
// full model.
func AggregatePower(placements []Placement, dni, temperature, shading, efficiency float64, l Losses) float64 {
	if len(placements) == 0 || dni <= 0 {
		return 0
	}
	var dc float64
	for _, p := range placements {
		dc += dni * p.Area() * efficiency * temperature * shading / 1000
	}
	return dc * l.Inverter * l.DCAC
}

// PanelShading returns the output multiplier of a single panel that
// receives the given fraction of direct light.
func PanelShading(light float64) float64 {
	if light >= 1 {
		return 1
	}
	return math.Max(ShadedOutput, light)
}

// ShadingFactor returns the fraction of panels that receive full direct
// light, but at least MinShadingFactor. A nil or empty light slice means
// nothing is shaded.
func ShadingFactor(light []float64) float64 {
	if len(light) == 0 {
		return 1
	}
	unshaded := 0
	for _, l := range light {
		if l >= 1 {
			unshaded++
		}
	}
	return math.Max(MinShadingFactor, float64(unshaded)/float64(len(light)))
}

// Conditions are the environmental inputs to Evaluate.
type Conditions struct {
	Sun           solar.Position
	WeatherFactor float64
	DayOfYear     int

	// Light is the fraction of direct light reaching each panel, parallel
	// to the placements. Panels without an entry, and every panel if Light
	// is nil, are unshaded.
	Light []float64
}

// PanelResult is the performance of one panel.
type PanelResult struct {
	Irradiance float64 // W/m² on the panel surface
	PowerKW    float64 // DC
	Shading    float64
}

// A Report is the performance of a whole system at one moment.
type Report struct {
	DNI               float64
	TemperatureFactor float64
	ShadingFactor     float64

	DCPowerKW        float64
	ACPowerKW        float64
	DailyEnergyKWh   float64
	SystemEfficiency float64 // percent of rated power
	RatedPowerKW     float64
	SunElevationDeg  float64
	Panels           []PanelResult
}

// Evaluate computes the performance of the given panels. Unlike
// AggregatePower it accounts for the angle of incidence on each panel,
// per-panel shading, soiling and aging.
func Evaluate(placements []Placement, efficiency float64, l Losses, c Conditions) Report {
	r := Report{
		ShadingFactor:   1,
		SunElevationDeg: c.Sun.ElevationDeg(),
	}
	if len(placements) == 0 {
		return r
	}
	light := make([]float64, len(placements))
	for i := range light {
		light[i] = 1
		if i < len(c.Light) {
			light[i] = c.Light[i]
		}
	}
	r.ShadingFactor = ShadingFactor(light)
	r.DNI = solar.DNI(c.Sun.ElevationRad, c.WeatherFactor)
	r.TemperatureFactor = solar.TemperatureDerating(c.Sun.ElevationRad)

	r.Panels = make([]PanelResult, len(placements))
	for i, p := range placements {
		r.RatedPowerKW += p.PowerRatingW / 1000

		cos := math.Max(0, r3.Dot(r3.Unit(p.Normal), c.Sun.Direction))
		shading := PanelShading(light[i])
		irr := r.DNI * cos
		kw := irr * p.Area() * efficiency * r.TemperatureFactor * shading * l.Soiling * l.Aging / 1000
		r.Panels[i] = PanelResult{Irradiance: irr, PowerKW: kw, Shading: shading}
		r.DCPowerKW += kw
	}
	r.ACPowerKW = r.DCPowerKW * l.Inverter * l.DCAC
	r.DailyEnergyKWh = r.ACPowerKW * solar.DailySunHours(c.DayOfYear)
	if r.RatedPowerKW > 0 {
		r.SystemEfficiency = r.ACPowerKW / r.RatedPowerKW * 100
	}
	return r
}
