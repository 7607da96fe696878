package earth

import "math"

// 1976 US Standard Atmosphere sea-level constants.
const (
	SeaLevelTemperatureK = 288.15
	SeaLevelPressurePa   = 101325.0
	SpecificGasConstant  = 287.26 // J/kg/K, dry air
	StandardGravity      = 9.80665
)

// Geopotential converts geometric altitude (km) to geopotential altitude
// (km), accounting for gravity falloff with height.
func Geopotential(geometricAltKm float64) float64 {
	radiusKm := RadiusM / 1000
	return radiusKm * geometricAltKm / (radiusKm + geometricAltKm)
}

// StandardTemperature returns the ISA temperature (K) at a geopotential
// altitude (km). Layer lapse rates per the 1976 standard up to the
// mesopause; above that the last layer is extended.
func StandardTemperature(geopotKm float64) float64 {
	switch {
	case geopotKm <= 11:
		return 288.15 - 6.5*geopotKm
	case geopotKm <= 20:
		return 216.65
	case geopotKm <= 32:
		return 196.65 + geopotKm
	case geopotKm <= 47:
		return 228.65 + 2.8*(geopotKm-32)
	case geopotKm <= 51:
		return 270.65
	case geopotKm <= 71:
		return 270.65 - 2.8*(geopotKm-51)
	default:
		return 214.65 - 2*(geopotKm-71)
	}
}

// StandardPressure returns the ISA pressure (Pa) at a geopotential altitude
// (km) given the standard temperature (K) at that altitude.
func StandardPressure(geopotKm, tempK float64) float64 {
	switch {
	case geopotKm <= 11:
		return SeaLevelPressurePa * math.Pow(288.15/tempK, -5.255877)
	case geopotKm <= 20:
		return 22632.06 * math.Exp(-0.1577*(geopotKm-11))
	case geopotKm <= 32:
		return 5474.889 * math.Pow(216.65/tempK, 34.16319)
	case geopotKm <= 47:
		return 868.0187 * math.Pow(228.65/tempK, 12.2011)
	case geopotKm <= 51:
		return 110.9063 * math.Exp(-0.1262*(geopotKm-47))
	case geopotKm <= 71:
		return 66.93887 * math.Pow(270.65/tempK, -12.2011)
	default:
		return 3.956420 * math.Pow(214.65/tempK, -17.0816)
	}
}

// AirDensity applies the ideal gas law (kg/m³).
func AirDensity(pressurePa, tempK float64) float64 {
	return pressurePa / (SpecificGasConstant * tempK)
}

// Gravity returns gravitational acceleration (m/s²) at a geometric
// altitude (m): constant near the surface, a signed linear expansion of
// the inverse-square law to 100 km, the full inverse-square law beyond.
// Below the surface the linear term makes gravity increase.
func Gravity(altitudeM float64) float64 {
	abs := math.Abs(altitudeM)
	switch {
	case abs < 10000:
		return StandardGravity
	case abs < 100000:
		return StandardGravity * (1 - 2*altitudeM/RadiusM)
	default:
		factor := RadiusM / (RadiusM + altitudeM)
		return StandardGravity * factor * factor
	}
}
