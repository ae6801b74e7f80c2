package geo

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	sanFrancisco = NewCoordinate(37774900, -122419400)
	oakland      = NewCoordinate(37804400, -122271200)
	losAngeles   = NewCoordinate(34052200, -118243700)
	newYork      = NewCoordinate(40712800, -74006000)
)

func TestGreatCircleDistance(t *testing.T) {
	testCases := []struct {
		name     string
		from     Coordinate
		to       Coordinate
		expected float64
		delta    float64
	}{
		{"same point", sanFrancisco, sanFrancisco, 0, 0.001},
		{"sf to oakland", sanFrancisco, oakland, 13430, 500},
		{"sf to la", sanFrancisco, losAngeles, 559300, 2000},
		{"sf to nyc", sanFrancisco, newYork, 4130000, 15000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, GreatCircleDistance(tc.from, tc.to), tc.delta)
		})
	}
}

func TestGreatCircleDistanceRaw(t *testing.T) {
	byValue := GreatCircleDistance(sanFrancisco, oakland)
	byRaw := GreatCircleDistanceRaw(sanFrancisco.Lat, sanFrancisco.Lon, oakland.Lat, oakland.Lon)
	assert.Equal(t, byValue, byRaw)
}

func TestEuclideanApproxDistance(t *testing.T) {
	// Zero for identical points.
	assert.Equal(t, float32(0), EuclideanApproxDistance(sanFrancisco, sanFrancisco))

	// Close to the great-circle form for nearby points.
	haversine := GreatCircleDistance(sanFrancisco, oakland)
	planar := float64(EuclideanApproxDistance(sanFrancisco, oakland))
	assert.InDelta(t, haversine, planar, haversine*0.01)
}

func TestDistanceSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		a := NewCoordinate(rng.Int31n(180000000)-90000000, rng.Int31n(360000000)-180000000)
		b := NewCoordinate(rng.Int31n(180000000)-90000000, rng.Int31n(360000000)-180000000)

		assert.Equal(t, GreatCircleDistance(a, b), GreatCircleDistance(b, a))
		assert.Equal(t, EuclideanApproxDistance(a, b), EuclideanApproxDistance(b, a))
	}
}

func TestDistancePanicsOnUnset(t *testing.T) {
	assert.Panics(t, func() { GreatCircleDistance(Unset(), sanFrancisco) })
	assert.Panics(t, func() { GreatCircleDistance(sanFrancisco, Unset()) })
	assert.Panics(t, func() { EuclideanApproxDistance(Unset(), sanFrancisco) })
	assert.Panics(t, func() { EuclideanApproxDistance(sanFrancisco, Unset()) })
}

func BenchmarkGreatCircleDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = GreatCircleDistance(sanFrancisco, losAngeles)
	}
}

func BenchmarkEuclideanApproxDistance(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = EuclideanApproxDistance(sanFrancisco, losAngeles)
	}
}
