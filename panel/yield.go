package panel

import "math"

// Annual energy model parameters.
const (
	AnnualYieldPerKWp = 1200 // kWh per kWp per year
	PerformanceRatio  = 0.8
)

// TiltFactor returns the output multiplier for panels tilted tiltDeg from
// horizontal, relative to the optimal 30–40°.
func TiltFactor(tiltDeg float64) float64 {
	switch {
	case tiltDeg < 5:
		return 0.85
	case tiltDeg < 10:
		return 0.88
	case tiltDeg < 20:
		return 0.94
	case tiltDeg < 30:
		return 0.98
	case tiltDeg < 40:
		return 1.0
	case tiltDeg < 50:
		return 0.97
	case tiltDeg < 60:
		return 0.91
	default:
		return 0.84
	}
}

// OrientationFactor returns the output multiplier for panels facing the
// given compass azimuth, for a site in the northern hemisphere. South
// (180°) is optimal. The factor falls off in 22.5° steps toward north.
func OrientationFactor(azimuthDeg float64) float64 {
	a := math.Mod(math.Mod(azimuthDeg, 360)+360, 360)
	// Deviation from south, folded so east and west are symmetric.
	d := math.Abs(a - 180)
	switch {
	case d <= 22.5:
		return 1.0
	case d <= 45:
		return 0.94
	case d <= 67.5:
		return 0.88
	case d <= 90:
		return 0.82
	case d <= 112.5:
		return 0.76
	case d <= 135:
		return 0.70
	case d <= 157.5:
		return 0.63
	default:
		return 0.55
	}
}

// Chimney is the footprint of a chimney for ChimneyImpact.
type Chimney struct {
	WidthM, LengthM, HeightM float64
}

// ChimneyImpact returns the output multiplier for a roof of roofAreaM²
// carrying the given chimneys. Each chimney costs 2% plus twice its
// footprint relative to the roof area, scaled up by as much as 1.5 for
// tall chimneys. The total loss is capped at 25%.
func ChimneyImpact(chimneys []Chimney, roofAreaM2 float64) float64 {
	if len(chimneys) == 0 || roofAreaM2 <= 0 {
		return 1
	}
	var size float64
	for _, c := range chimneys {
		heightFactor := math.Min(1.5, math.Max(1.0, c.HeightM))
		size += c.WidthM * c.LengthM * heightFactor
	}
	impact := 0.02*float64(len(chimneys)) + size*2/roofAreaM2
	return 1 - math.Min(0.25, impact)
}

// Yield is an annual energy estimate.
type Yield struct {
	SystemPowerKW  float64
	CombinedFactor float64
	AnnualKWh      float64
	DailyKWh       float64
}

// Annual estimates the yearly energy of count panels rated powerW each,
// given the product of the tilt, orientation and chimney factors.
func Annual(count int, powerW, combinedFactor float64) Yield {
	kw := float64(count) * powerW / 1000
	annual := kw * AnnualYieldPerKWp * PerformanceRatio * combinedFactor
	return Yield{
		SystemPowerKW:  kw,
		CombinedFactor: combinedFactor,
		AnnualKWh:      annual,
		DailyKWh:       annual / 365,
	}
}

// RowSpacingFactor returns how much to stretch the spacing between rows of
// panels tilted tiltDeg on a flat roof so that rows do not shade each
// other.
func RowSpacingFactor(tiltDeg float64) float64 {
	switch {
	case tiltDeg <= 5:
		return 1.0
	case tiltDeg <= 10:
		return 1.2
	case tiltDeg <= 20:
		return 1.5
	case tiltDeg <= 30:
		return 2.0
	default:
		return 2.5
	}
}
