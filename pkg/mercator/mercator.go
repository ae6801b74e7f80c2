// Package mercator implements the spherical Mercator latitude projection
// used to treat a small patch of the globe as a Euclidean plane. Only the
// latitude axis needs transforming; longitude maps to the plane unchanged.
package mercator

import "math"

// LatToY projects a WGS84 latitude (in degrees) onto the Mercator y axis.
func LatToY(lat float64) float64 {
	return 180 / math.Pi * math.Log(math.Tan(math.Pi/4+lat*(math.Pi/180)/2))
}

// YToLat is the inverse of LatToY.
func YToLat(y float64) float64 {
	return 180 / math.Pi * (2*math.Atan(math.Exp(y*math.Pi/180)) - math.Pi/2)
}
