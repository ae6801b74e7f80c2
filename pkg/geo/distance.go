package geo

import "math"

const (
	// earthRadius is the mean earth radius in meters, shared by every
	// distance metric in this package so the approximations never drift
	// from the great-circle form.
	earthRadius = 6372797.560856

	// degToRad converts degrees to radians.
	degToRad = 0.017453292519943295769236907684886
)

// GreatCircleDistance returns the haversine distance between two points in
// meters. Panics if either coordinate is unset.
func GreatCircleDistance(c1, c2 Coordinate) float64 {
	return GreatCircleDistanceRaw(c1.Lat, c1.Lon, c2.Lat, c2.Lon)
}

// GreatCircleDistanceRaw is GreatCircleDistance over raw scaled-integer
// values.
func GreatCircleDistanceRaw(lat1, lon1, lat2, lon2 int32) float64 {
	assertSet(Coordinate{Lat: lat1, Lon: lon1}, "GreatCircleDistance")
	assertSet(Coordinate{Lat: lat2, Lon: lon2}, "GreatCircleDistance")

	dlat1 := float64(lat1) / Precision * degToRad
	dlong1 := float64(lon1) / Precision * degToRad
	dlat2 := float64(lat2) / Precision * degToRad
	dlong2 := float64(lon2) / Precision * degToRad

	dLong := dlong1 - dlong2
	dLat := dlat1 - dlat2

	aHarv := math.Pow(math.Sin(dLat/2), 2) +
		math.Cos(dlat1)*math.Cos(dlat2)*math.Pow(math.Sin(dLong/2), 2)
	cHarv := 2 * math.Atan2(math.Sqrt(aHarv), math.Sqrt(1-aHarv))
	return earthRadius * cHarv
}

// EuclideanApproxDistance returns the equirectangular planar approximation
// of the distance between two points in meters. Cheaper than
// GreatCircleDistance and single precision; only meaningful for points that
// are close together. Panics if either coordinate is unset.
func EuclideanApproxDistance(c1, c2 Coordinate) float32 {
	return EuclideanApproxDistanceRaw(c1.Lat, c1.Lon, c2.Lat, c2.Lon)
}

// EuclideanApproxDistanceRaw is EuclideanApproxDistance over raw
// scaled-integer values.
func EuclideanApproxDistanceRaw(lat1, lon1, lat2, lon2 int32) float32 {
	assertSet(Coordinate{Lat: lat1, Lon: lon1}, "EuclideanApproxDistance")
	assertSet(Coordinate{Lat: lat2, Lon: lon2}, "EuclideanApproxDistance")

	floatLat1 := float32(float64(lat1) / Precision * degToRad)
	floatLon1 := float32(float64(lon1) / Precision * degToRad)
	floatLat2 := float32(float64(lat2) / Precision * degToRad)
	floatLon2 := float32(float64(lon2) / Precision * degToRad)

	// Scale the longitude delta by the cosine of the mean latitude to get
	// a local plane, then take the Euclidean distance in it.
	xValue := (floatLon2 - floatLon1) * float32(math.Cos(float64(floatLat1+floatLat2)/2))
	yValue := floatLat2 - floatLat1
	return float32(math.Sqrt(float64(xValue*xValue+yValue*yValue))) * earthRadius
}
