package nearby

import (
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
)

// candidate is a location that survived the bounding-box prefilter and the
// exact-distance check.
type candidate struct {
	location *domain.Location
	distance float64
}

// selectCandidates narrows a location set to the users strictly within the
// radius. The box check is cheap and over-inclusive; the haversine pass
// prunes its false positives. The box can never produce false negatives
// because the degree approximation overestimates at non-polar latitudes.
func selectCandidates(locations []*domain.Location, centerLat, centerLng, radiusMeters float64, excludeUserID string) []candidate {
	box := geo.NewBoundingBox(centerLat, centerLng, radiusMeters)

	var out []candidate
	for _, loc := range locations {
		if loc.UserID == excludeUserID {
			continue
		}
		if !box.Contains(loc.Latitude, loc.Longitude) {
			continue
		}
		d := geo.HaversineMeters(centerLat, centerLng, loc.Latitude, loc.Longitude)
		if d > radiusMeters {
			continue
		}
		out = append(out, candidate{location: loc, distance: d})
	}
	return out
}
