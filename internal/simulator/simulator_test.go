package simulator

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveStaysWithinPerturbationBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 100; i++ {
		lat, lng := 19.5, 72.5
		newLat, newLng, distance := Move(lat, lng, rng)

		assert.LessOrEqual(t, math.Abs(newLat-lat), deltaSpread/2)
		assert.LessOrEqual(t, math.Abs(newLng-lng), deltaSpread/2)

		// Flat-earth distance must agree with the coordinate deltas.
		expected := math.Hypot(newLat-lat, newLng-lng) * kmPerDegree
		assert.InDelta(t, expected, distance, 1e-9)
	}
}

func TestMoveDefaultsUnsetPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	newLat, newLng, _ := Move(0, 0, rng)

	assert.InDelta(t, defaultLat, newLat, deltaSpread/2)
	assert.InDelta(t, defaultLng, newLng, deltaSpread/2)
}

func TestMoveIsDeterministicForASeed(t *testing.T) {
	lat1, lng1, d1 := Move(19.5, 72.5, rand.New(rand.NewSource(7)))
	lat2, lng2, d2 := Move(19.5, 72.5, rand.New(rand.NewSource(7)))

	assert.Equal(t, lat1, lat2)
	assert.Equal(t, lng1, lng2)
	assert.Equal(t, d1, d2)
}
