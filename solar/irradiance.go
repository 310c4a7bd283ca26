package solar

import "math"

// SolarConstant is the extraterrestrial irradiance in W/m².
const SolarConstant = 1361

// DNI returns the direct normal irradiance in W/m² for a sun at the given
// elevation, scaled by weatherFactor (1 for a clear sky, 0 for fully
// overcast). It is 0 when the sun is at or below the horizon.
func DNI(elevationRad, weatherFactor float64) float64 {
	if elevationRad <= 0 {
		return 0
	}
	airMass := 1 / math.Sin(elevationRad)
	transmission := math.Pow(0.7, math.Pow(airMass, 0.678))
	return math.Max(0, SolarConstant*transmission*weatherFactor)
}

// GlobalIntensity computes the total global radiation of the sun (aka
// solar flux, aka insolation) on a plane perpendicular to the sun, in
// W/m². siteElevationM is the height of the site above sea level. light
// is the multiplier of direct illumination between 0 (fully shaded) and 1.
//
// Unlike DNI this accounts for the curvature of the Earth near the
// horizon, for site elevation, and for diffuse light.
func GlobalIntensity(elevationRad, siteElevationM, light float64) (wattsPerSquareMeter float64) {
	// This is based on https://www.pveducation.org/pvcdrom/properties-of-sunlight/air-mass
	if elevationRad < 0 {
		return 0
	}

	// Compute air mass. This is a unitless number that is between 1 if
	// the sun is directly overhead (minimal air mass) and ~38 if the
	// sun is at the horizon. The core of this formula is simply the
	// 1/cos(Θ); the rest of the terms account for the curvature of the
	// Earth.
	//
	// From Kasten, F. and Young, A. T., “Revised optical air mass
	// tables and approximation formula”, Applied Optics, vol. 28, pp.
	// 4735–4738, 1989.
	zenithAngle := 90 - elevationRad*rad2deg // 0 is overhead
	airMass := 1 / (math.Cos(zenithAngle*deg2rad) + (0.50572 * math.Pow((96.07995-zenithAngle), -1.6364)))

	// Compute direct component of sunlight, accounting for elevation.
	// From Meinel, A. B. and Meinel, M. P., Applied Solar Energy.
	// Addison Wesley Publishing Co., 1976.
	h := siteElevationM / 1000 // To kilometers
	a := 0.14
	iDirect := 1353 * ((1-a*h)*math.Pow(0.7, math.Pow(airMass, 0.678)) + a*h)

	// Diffuse radiation is ~10% of direct radiation.
	return (0.1 + light) * iDirect
}

// Temperature derating parameters.
const (
	ReferenceCellTemp = 25     // °C
	TempCoefficient   = -0.004 // per °C
	MaxCellTempRise   = 30     // °C, with the sun overhead
	MinTempFactor     = 0.7
)

// TemperatureDerating returns the multiplier on panel output due to cell
// heating. Cell temperature is estimated to rise linearly with sun
// elevation, up to MaxCellTempRise above ambient at the zenith.
//
// This is a coarse heuristic rather than a thermal model.
func TemperatureDerating(elevationRad float64) float64 {
	cellTemp := ReferenceCellTemp + (elevationRad/math.Pi*2)*MaxCellTempRise
	f := 1 + TempCoefficient*(cellTemp-ReferenceCellTemp)
	return math.Max(MinTempFactor, f)
}

// VisualIntensity returns the brightness of sunlight for rendering,
// between 0 and 1. It ramps up quickly through the first 30° of elevation.
func VisualIntensity(elevationRad, weatherFactor float64) float64 {
	deg := elevationRad * rad2deg
	var intensity float64
	switch {
	case deg <= 0:
		return 0
	case deg < 10:
		intensity = 0.3 * (deg / 10)
	case deg < 30:
		intensity = 0.3 + 0.5*((deg-10)/20)
	default:
		intensity = 0.8 + 0.2*math.Min(1, (deg-30)/30)
	}
	return math.Max(0, math.Min(1, intensity*weatherFactor))
}
