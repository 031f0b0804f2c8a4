// Package geo provides great-circle distance and bounding-box math for the
// proximity search pipeline. It is pure and holds no state.
package geo

import "math"

const (
	// EarthRadiusMeters is the spherical-earth radius used for all
	// great-circle math.
	EarthRadiusMeters = 6371000.0

	// metersPerDegreeLat overestimates the size of a degree at all
	// non-polar latitudes, which keeps the bounding box a true superset of
	// the radius disk.
	metersPerDegreeLat = 111000.0
)

// HaversineMeters returns the exact great-circle distance in meters between
// two points. The atan2 formulation stays numerically stable near the poles
// and the antimeridian where an asin-based variant can leave its domain.
func HaversineMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// BoundingBox is an axis-aligned lat/lng rectangle approximating a radius
// disk. It may over-include (false positives are pruned by the exact distance
// pass) but never under-includes.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LngMin float64
	LngMax float64
}

// NewBoundingBox converts a radius around a center point into a bounding box.
// Near the poles cos(lat) collapses and the longitude delta diverges; the box
// then spans the full longitude range instead of dividing by zero.
func NewBoundingBox(centerLat, centerLng, radiusMeters float64) BoundingBox {
	latDelta := radiusMeters / metersPerDegreeLat

	box := BoundingBox{
		LatMin: centerLat - latDelta,
		LatMax: centerLat + latDelta,
	}

	cosLat := math.Cos(radians(centerLat))
	if cosLat < 1e-6 {
		box.LngMin = -180
		box.LngMax = 180
		return box
	}

	lngDelta := radiusMeters / (metersPerDegreeLat * cosLat)
	box.LngMin = centerLng - lngDelta
	box.LngMax = centerLng + lngDelta
	return box
}

// Contains reports whether the point falls inside the box.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lng >= b.LngMin && lng <= b.LngMax
}

// ValidCoordinates reports whether lat/lng form a real WGS84 position.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
