package polyline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kass/go-geo-kernel/pkg/geo"
)

func TestDecode(t *testing.T) {
	// The worked example from the Google encoded-polyline format docs.
	coords, err := Decode([]byte("_p~iF~ps|U_ulLnnqC_mqNvxq`@"))
	require.NoError(t, err)

	expected := []geo.Coordinate{
		geo.NewCoordinate(38500000, -120200000),
		geo.NewCoordinate(40700000, -120950000),
		geo.NewCoordinate(43252000, -126453000),
	}
	assert.Equal(t, expected, coords)
}

func TestDecodeMalformed(t *testing.T) {
	// Continuation bit set on the final byte.
	_, err := Decode([]byte("_"))
	assert.Error(t, err)
}

func TestDecodeOutOfRange(t *testing.T) {
	encoded := Encode([]geo.Coordinate{geo.NewCoordinate(91000000, 0)})

	_, err := Decode(encoded)
	assert.Error(t, err)
}

func TestEncodeRoundTrip(t *testing.T) {
	// The encoding keeps five decimal places, so coordinates quantized to
	// that grid survive a round trip exactly.
	original := []geo.Coordinate{
		geo.NewCoordinate(37774900, -122419400),
		geo.NewCoordinate(37804400, -122271200),
		geo.NewCoordinate(34052200, -118243700),
	}

	decoded, err := Decode(Encode(original))
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestLength(t *testing.T) {
	sanFrancisco := geo.NewCoordinate(37774900, -122419400)
	oakland := geo.NewCoordinate(37804400, -122271200)
	losAngeles := geo.NewCoordinate(34052200, -118243700)

	assert.Zero(t, Length(nil))
	assert.Zero(t, Length([]geo.Coordinate{sanFrancisco}))

	leg := geo.GreatCircleDistance(sanFrancisco, oakland)
	assert.InDelta(t, leg, Length([]geo.Coordinate{sanFrancisco, oakland}), 1e-9)

	total := leg + geo.GreatCircleDistance(oakland, losAngeles)
	assert.InDelta(t, total, Length([]geo.Coordinate{sanFrancisco, oakland, losAngeles}), 1e-9)
}

func TestSimplifyShortInput(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 1000000),
	}

	out := Simplify(coords, 1000)
	assert.Equal(t, coords, out)

	// The result is a copy, not an alias of the input.
	out[0] = geo.NewCoordinate(1, 1)
	assert.Equal(t, geo.NewCoordinate(0, 0), coords[0])
}

func TestSimplifyDropsCollinearPoint(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 500000),
		geo.NewCoordinate(0, 1000000),
	}

	out := Simplify(coords, 1)
	assert.Equal(t, []geo.Coordinate{coords[0], coords[2]}, out)
}

func TestSimplifyThreshold(t *testing.T) {
	// A V-shape whose apex sits roughly 0.05 degrees off the chord.
	coords := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(0, 500000),
		geo.NewCoordinate(100000, 1000000),
	}

	kept := Simplify(coords, 10000)
	assert.Equal(t, coords, kept)

	dropped := Simplify(coords, 100000)
	assert.Equal(t, []geo.Coordinate{coords[0], coords[2]}, dropped)
}

func TestSimplifyKeepsEndpoints(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(37774900, -122419400),
		geo.NewCoordinate(37780000, -122400000),
		geo.NewCoordinate(37790000, -122380000),
		geo.NewCoordinate(37804400, -122271200),
	}

	out := Simplify(coords, 1<<30)
	assert.Equal(t, []geo.Coordinate{coords[0], coords[3]}, out)
}

func TestSimplifyDoesNotMutateInput(t *testing.T) {
	coords := []geo.Coordinate{
		geo.NewCoordinate(0, 0),
		geo.NewCoordinate(200000, 500000),
		geo.NewCoordinate(0, 1000000),
	}
	snapshot := append([]geo.Coordinate{}, coords...)

	Simplify(coords, 1)
	assert.Equal(t, snapshot, coords)
}
