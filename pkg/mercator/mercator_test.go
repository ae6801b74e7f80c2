package mercator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLatToY(t *testing.T) {
	testCases := []struct {
		name     string
		lat      float64
		expected float64
		delta    float64
	}{
		{"equator", 0, 0, 1e-12},
		{"45 north", 45, 50.4987, 1e-3},
		{"web mercator limit", 85.0511287798, 180.0, 1e-6},
		{"mid latitude", 37.7749, 40.874, 1e-2},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, LatToY(tc.lat), tc.delta)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, lat := range []float64{-85, -45.5, -0.000001, 0, 0.000001, 12.34, 52.52, 85} {
		assert.InDelta(t, lat, YToLat(LatToY(lat)), 1e-9, "lat %f", lat)
	}
}

func TestAntisymmetry(t *testing.T) {
	for _, lat := range []float64{0.5, 10, 45, 80} {
		assert.InDelta(t, -LatToY(lat), LatToY(-lat), 1e-9)
	}
}
