// Package polyline operates on sequences of fixed-point coordinates:
// Google encoded-polyline conversion, great-circle length, and
// Douglas-Peucker simplification driven by the ordering-only perpendicular
// distance approximation.
package polyline

import (
	"fmt"

	gpolyline "github.com/twpayne/go-polyline"

	"github.com/kass/go-geo-kernel/pkg/geo"
)

// Decode parses a Google encoded polyline into fixed-point coordinates.
func Decode(encoded []byte) ([]geo.Coordinate, error) {
	degrees, _, err := gpolyline.DecodeCoords(encoded)
	if err != nil {
		return nil, fmt.Errorf("polyline: decode failed: %w", err)
	}

	coords := make([]geo.Coordinate, len(degrees))
	for i, pair := range degrees {
		coords[i] = geo.FromDegrees(pair[0], pair[1])
		if !coords[i].IsValid() {
			return nil, fmt.Errorf("polyline: decoded coordinate %s out of range", coords[i].ReversedString())
		}
	}
	return coords, nil
}

// Encode renders coordinates as a Google encoded polyline.
func Encode(coords []geo.Coordinate) []byte {
	degrees := make([][]float64, len(coords))
	for i, c := range coords {
		degrees[i] = []float64{c.LatDegrees(), c.LonDegrees()}
	}
	return gpolyline.EncodeCoords(degrees)
}

// Length returns the great-circle length of the polyline in meters.
func Length(coords []geo.Coordinate) float64 {
	var total float64
	for i := 1; i < len(coords); i++ {
		total += geo.GreatCircleDistance(coords[i-1], coords[i])
	}
	return total
}

// Simplify runs Douglas-Peucker over the polyline and returns the points
// that survive. The threshold is in the fixed-point units of
// geo.OrderedPerpendicularDistance, so it ranks deviations consistently
// rather than measuring them in meters. Endpoints are always kept and the
// input is never mutated.
func Simplify(coords []geo.Coordinate, threshold int32) []geo.Coordinate {
	if len(coords) < 3 {
		out := make([]geo.Coordinate, len(coords))
		copy(out, coords)
		return out
	}

	keep := make([]bool, len(coords))
	keep[0] = true
	keep[len(coords)-1] = true

	type span struct {
		first, last int
	}
	stack := []span{{0, len(coords) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Farthest interior point from the chord first–last.
		farthest := -1
		var maxDist int32
		for i := s.first + 1; i < s.last; i++ {
			d := geo.OrderedPerpendicularDistance(coords[i], coords[s.first], coords[s.last])
			if d >= threshold && d > maxDist {
				farthest = i
				maxDist = d
			}
		}
		if farthest < 0 {
			continue
		}
		keep[farthest] = true
		stack = append(stack, span{s.first, farthest}, span{farthest, s.last})
	}

	out := make([]geo.Coordinate, 0, len(coords))
	for i, k := range keep {
		if k {
			out = append(out, coords[i])
		}
	}
	return out
}
