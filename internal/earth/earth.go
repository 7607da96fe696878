// Package earth holds the geodetic conversion utilities and the standard
// atmosphere model. All functions are pure; positions are local NED metres
// relative to a fixed home geo-point.
package earth

import (
	"fmt"
	"math"

	"multirotor-sim/internal/vectormath"
)

// RadiusM is the Earth radius used for all local conversions (metres).
const RadiusM = 6378137.0

// GeoPoint is a global geodetic coordinate. Latitude and longitude are in
// degrees, altitude in metres above mean sea level.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

func (g GeoPoint) String() string {
	return fmt.Sprintf("lat=%f lon=%f alt=%f", g.Latitude, g.Longitude, g.Altitude)
}

// HomeGeoPoint is a fixed reference point with precomputed trigonometry for
// repeated NED conversions. Capture it once at initialization.
type HomeGeoPoint struct {
	Home   GeoPoint
	LatRad float64
	LonRad float64
	CosLat float64
	SinLat float64
}

// NewHomeGeoPoint caches the radian and trig forms of home.
func NewHomeGeoPoint(home GeoPoint) HomeGeoPoint {
	latRad := Radians(home.Latitude)
	return HomeGeoPoint{
		Home:   home,
		LatRad: latRad,
		LonRad: Radians(home.Longitude),
		CosLat: math.Cos(latRad),
		SinLat: math.Sin(latRad),
	}
}

// NedToGeodetic converts a local NED position to a geodetic coordinate via
// the inverse azimuthal equidistant projection about home. NED z is down,
// so altitude decreases as z grows.
func NedToGeodetic(v vectormath.Vector3, home HomeGeoPoint) GeoPoint {
	xRad := v.Y / RadiusM
	yRad := v.X / RadiusM
	c := math.Sqrt(xRad*xRad + yRad*yRad)

	if c == 0 {
		return GeoPoint{
			Latitude:  home.Home.Latitude,
			Longitude: home.Home.Longitude,
			Altitude:  home.Home.Altitude - v.Z,
		}
	}

	sinC, cosC := math.Sin(c), math.Cos(c)
	latRad := math.Asin(cosC*home.SinLat + (yRad*sinC*home.CosLat)/c)
	lonRad := home.LonRad + math.Atan2(xRad*sinC, c*home.CosLat*cosC-yRad*home.SinLat*sinC)

	return GeoPoint{
		Latitude:  Degrees(latRad),
		Longitude: Degrees(lonRad),
		Altitude:  home.Home.Altitude - v.Z,
	}
}

// GeodeticToNed converts a geodetic coordinate to local NED metres about
// home. Small-offset equirectangular form; adequate within the simulation
// arena, not for long-range navigation.
func GeodeticToNed(geo GeoPoint, home HomeGeoPoint) vectormath.Vector3 {
	dLat := Radians(geo.Latitude) - home.LatRad
	dLon := Radians(geo.Longitude) - home.LonRad
	return vectormath.Vector3{
		X: RadiusM * dLat,
		Y: RadiusM * home.CosLat * dLon,
		Z: home.Home.Altitude - geo.Altitude,
	}
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }
