package geo

import (
	"math"

	"github.com/kass/go-geo-kernel/pkg/mercator"
)

// floatEpsilon is the smallest float32 e with 1+e != 1. The projection math
// runs in single precision, so branch decisions must use the single
// precision epsilon.
const floatEpsilon = 1.19209290e-07

// PerpendicularDistance returns the approximate distance in meters from
// query to the nearest point on the segment source–target. All three
// coordinates must be set and valid. Panics on unset input.
func PerpendicularDistance(query, source, target Coordinate) float32 {
	_, _, distance := ProjectOnSegment(source, target, query)
	return distance
}

// ProjectOnSegment projects query onto the segment source–target and
// returns the nearest point on the segment, the normalized position of the
// perpendicular foot along it (0 at source, 1 at target, snapped and
// clamped by endpoint selection) and the approximate distance in meters
// between query and the nearest point. Panics on unset input.
func ProjectOnSegment(source, target, query Coordinate) (nearest Coordinate, ratio float32, distance float32) {
	assertSet(source, "ProjectOnSegment")
	assertSet(target, "ProjectOnSegment")
	assertSet(query, "ProjectOnSegment")

	x := float32(mercator.LatToY(float64(query.Lat) / Precision))
	y := float32(float64(query.Lon) / Precision)
	a := float32(mercator.LatToY(float64(source.Lat) / Precision))
	b := float32(float64(source.Lon) / Precision)
	c := float32(mercator.LatToY(float64(target.Lat) / Precision))
	d := float32(float64(target.Lon) / Precision)

	var p, q float32
	if abs32(a-c) > floatEpsilon {
		m := (d - b) / (c - a) // slope
		// Projection of (x,y) on the line joining (a,b) and (c,d).
		p = ((x + m*y) + (m*m*a - m*b)) / (1 + m*m)
		q = b + m*(p-a)
	} else {
		// Numerically vertical in the transformed frame; solving for the
		// slope would divide by near-zero.
		p = c
		q = y
	}

	nY := (d*p - c*q) / (a*d - b*c)
	// Discretize to coordinate precision. Keeps the ratio stable when the
	// segment passes close to the projection origin, where float noise in
	// nY would otherwise flip the endpoint selection. It's a hack.
	if abs32(nY) < 1/Precision {
		nY = 0
	}

	// The parametric weights of the foot are n/(m+n) and m/(m+n); this form
	// yields their ratio directly without computing m or n.
	ratio = (p - nY*a) / c
	if math.IsNaN(float64(ratio)) {
		// Degenerate segment with c == 0: fall back to the endpoints.
		if target.Equal(query) {
			ratio = 1
		} else {
			ratio = 0
		}
	} else if abs32(ratio) <= floatEpsilon {
		ratio = 0
	} else if abs32(ratio-1) <= floatEpsilon {
		ratio = 1
	}

	switch {
	case ratio <= 0:
		// Query is "before" the source endpoint.
		nearest = source
	case ratio >= 1:
		// Query is "past" the target endpoint.
		nearest = target
	default:
		// Foot of the perpendicular lies on the segment; undo the latitude
		// transform and re-scale back to fixed point.
		nearest = Coordinate{
			Lat: int32(mercator.YToLat(float64(p)) * Precision),
			Lon: int32(float64(q) * Precision),
		}
	}

	distance = EuclideanApproxDistance(query, nearest)
	return nearest, ratio, distance
}

// OrderedPerpendicularDistance is an integer-only variant of
// PerpendicularDistance. Its result is not metrically accurate, but it
// preserves the relative order among candidate segments, which makes it
// useful for fast filtering and for simplification thresholds. Panics on
// unset input.
func OrderedPerpendicularDistance(query, source, target Coordinate) int32 {
	assertSet(query, "OrderedPerpendicularDistance")
	assertSet(source, "OrderedPerpendicularDistance")
	assertSet(target, "OrderedPerpendicularDistance")

	x := float32(mercator.LatToY(float64(query.Lat) / Precision))
	y := float32(float64(query.Lon) / Precision)
	a := float32(mercator.LatToY(float64(source.Lat) / Precision))
	b := float32(float64(source.Lon) / Precision)
	c := float32(mercator.LatToY(float64(target.Lat) / Precision))
	d := float32(float64(target.Lon) / Precision)

	var p, q float32
	if a != c {
		m := (d - b) / (c - a) // slope
		p = ((x + m*y) + (m*m*a - m*b)) / (1 + m*m)
		q = b + m*(p-a)
	} else {
		p = c
		q = y
	}

	nY := (d*p - c*q) / (a*d - b*c)
	ratio := (p - nY*a) / c
	if math.IsNaN(float64(ratio)) {
		if target.Equal(query) {
			ratio = 1
		} else {
			ratio = 0
		}
	}

	var dx, dy int64
	switch {
	case ratio < 0:
		dx = int64(query.Lon) - int64(source.Lon)
		dy = int64(query.Lat) - int64(source.Lat)
	case ratio > 1:
		dx = int64(query.Lon) - int64(target.Lon)
		dy = int64(query.Lat) - int64(target.Lat)
	default:
		// Foot lies on the segment.
		dx = int64(float64(query.Lon) - float64(q)*Precision)
		dy = int64(float64(query.Lat) - mercator.YToLat(float64(p))*Precision)
	}
	return int32(math.Sqrt(float64(dx*dx + dy*dy)))
}

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
