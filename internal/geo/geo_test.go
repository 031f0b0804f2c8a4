package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHaversineMeters_KnownDistances(t *testing.T) {
	// Lower Manhattan reference points.
	d := HaversineMeters(40.7128, -74.0060, 40.7160, -74.0090)
	assert.InDelta(t, 437, d, 10)
	assert.Less(t, d, 1000.0)

	far := HaversineMeters(40.7128, -74.0060, 40.7300, -74.0000)
	assert.InDelta(t, 1978, far, 20)
	assert.Greater(t, far, 1000.0)
}

func TestHaversineMeters_Symmetry(t *testing.T) {
	cases := [][4]float64{
		{40.7128, -74.0060, 51.5074, -0.1278},
		{-33.8688, 151.2093, 35.6762, 139.6503},
		{89.9, 0, 89.9, 179.9}, // near pole
		{0, 179.99, 0, -179.99}, // across antimeridian
	}
	for _, c := range cases {
		ab := HaversineMeters(c[0], c[1], c[2], c[3])
		ba := HaversineMeters(c[2], c[3], c[0], c[1])
		assert.InDelta(t, ab, ba, 1e-6)
		assert.False(t, math.IsNaN(ab))
	}
}

func TestHaversineMeters_ZeroForIdenticalPoints(t *testing.T) {
	assert.Zero(t, HaversineMeters(40.7128, -74.0060, 40.7128, -74.0060))
	assert.Zero(t, HaversineMeters(0, 0, 0, 0))
	assert.Zero(t, HaversineMeters(90, 45, 90, 45))
}

func TestHaversineMeters_Antimeridian(t *testing.T) {
	// Two points 0.02 degrees apart straddling the antimeridian; the
	// distance must be small, not half the planet.
	d := HaversineMeters(0, 179.99, 0, -179.99)
	assert.InDelta(t, 2226, d, 50)
}

func TestNewBoundingBox(t *testing.T) {
	box := NewBoundingBox(40.7128, -74.0060, 1000)

	assert.InDelta(t, 40.7128-1000.0/111000, box.LatMin, 1e-9)
	assert.InDelta(t, 40.7128+1000.0/111000, box.LatMax, 1e-9)
	assert.Less(t, box.LngMin, -74.0060)
	assert.Greater(t, box.LngMax, -74.0060)

	// Longitude delta widens with latitude.
	wide := NewBoundingBox(60, 0, 1000)
	narrow := NewBoundingBox(0, 0, 1000)
	assert.Greater(t, wide.LngMax-wide.LngMin, narrow.LngMax-narrow.LngMin)
}

func TestNewBoundingBox_PolarDegeneracy(t *testing.T) {
	box := NewBoundingBox(90, 0, 1000)
	assert.Equal(t, -180.0, box.LngMin)
	assert.Equal(t, 180.0, box.LngMax)
	assert.True(t, box.Contains(89.999, 173))
}

func TestBoundingBox_IsSupersetOfRadiusDisk(t *testing.T) {
	// Every point within the radius must fall inside the box; box false
	// positives are fine, false negatives are not.
	centerLat, centerLng := 40.7128, -74.0060
	radius := 1500.0
	box := NewBoundingBox(centerLat, centerLng, radius)

	for _, p := range [][2]float64{
		{40.7160, -74.0090},
		{40.7128, -74.0237},
		{40.7263, -74.0060},
		{40.7000, -73.9950},
	} {
		d := HaversineMeters(centerLat, centerLng, p[0], p[1])
		require.LessOrEqual(t, d, radius, "test point must be inside the disk")
		assert.True(t, box.Contains(p[0], p[1]))
	}
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidCoordinates(40.7, -74.0))
	assert.True(t, ValidCoordinates(-90, 180))
	assert.False(t, ValidCoordinates(90.1, 0))
	assert.False(t, ValidCoordinates(0, -180.5))
}
