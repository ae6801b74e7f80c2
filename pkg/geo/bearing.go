package geo

import "math"

// Bearing returns the initial compass bearing in degrees when traveling
// from a to b, normalized into [0, 360). Coincident points are not special
// cased and yield whatever the floating-point math produces (typically 0).
// Panics if either coordinate is unset.
func Bearing(a, b Coordinate) float32 {
	assertSet(a, "Bearing")
	assertSet(b, "Bearing")

	deltaLong := (float64(b.Lon) - float64(a.Lon)) / Precision * degToRad
	lat1 := float64(a.Lat) / Precision * degToRad
	lat2 := float64(b.Lat) / Precision * degToRad

	y := math.Sin(deltaLong) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLong)
	result := float32(math.Atan2(y, x) * (180 / math.Pi))

	for result < 0 {
		result += 360
	}
	for result >= 360 {
		result -= 360
	}
	return result
}

// BearingFrom returns the initial bearing when traveling from other to c.
func (c Coordinate) BearingFrom(other Coordinate) float32 {
	return Bearing(other, c)
}
