// Package geo provides fixed-point geographic primitives: a scaled-integer
// coordinate type, great-circle and planar distance metrics, initial bearing,
// and projection of a point onto a road segment. All functions are pure and
// safe for concurrent use.
package geo

import "math"

const (
	// Precision is the fixed-point scaling factor. Coordinates carry six
	// decimal digits, roughly 11cm of resolution at the equator.
	Precision = 1e6

	// unset marks a coordinate field that has no value.
	unset = math.MinInt32

	maxLat = 90 * Precision
	maxLon = 180 * Precision
)

// Coordinate is a geographic point stored as latitude/longitude degrees
// scaled by Precision. The zero value is a valid point at (0, 0); use
// Unset for the explicit "no value" state.
type Coordinate struct {
	Lat int32
	Lon int32
}

// NewCoordinate creates a coordinate from scaled-integer degrees.
func NewCoordinate(lat, lon int32) Coordinate {
	return Coordinate{Lat: lat, Lon: lon}
}

// Unset returns the sentinel coordinate carrying no value.
func Unset() Coordinate {
	return Coordinate{Lat: unset, Lon: unset}
}

// FromDegrees creates a coordinate from floating-point degrees, rounding to
// the nearest representable unit.
func FromDegrees(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: int32(math.Round(lat * Precision)),
		Lon: int32(math.Round(lon * Precision)),
	}
}

// Reset clears the coordinate back to the unset sentinel.
func (c *Coordinate) Reset() {
	c.Lat = unset
	c.Lon = unset
}

// IsSet reports whether both fields hold a value.
func (c Coordinate) IsSet() bool {
	return c.Lat != unset && c.Lon != unset
}

// IsValid reports whether the coordinate lies within ±90° latitude and
// ±180° longitude. Out-of-range coordinates are not rejected by the math
// in this package, but results for them are meaningless.
func (c Coordinate) IsValid() bool {
	if c.Lat > maxLat || c.Lat < -maxLat || c.Lon > maxLon || c.Lon < -maxLon {
		return false
	}
	return true
}

// Equal reports exact field-wise equality.
func (c Coordinate) Equal(other Coordinate) bool {
	return c.Lat == other.Lat && c.Lon == other.Lon
}

// LatDegrees returns the latitude in floating-point degrees.
func (c Coordinate) LatDegrees() float64 {
	return float64(c.Lat) / Precision
}

// LonDegrees returns the longitude in floating-point degrees.
func (c Coordinate) LonDegrees() float64 {
	return float64(c.Lon) / Precision
}

// assertSet panics when a sentinel coordinate reaches a function that
// requires a value. Callers are expected to validate inputs up front, so
// tripping this is a caller bug, not a recoverable condition.
func assertSet(c Coordinate, fn string) {
	if !c.IsSet() {
		panic("geo: " + fn + " called with unset coordinate")
	}
}
