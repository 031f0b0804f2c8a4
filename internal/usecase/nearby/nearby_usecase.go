package nearby

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
	"github.com/linkme-app/linkme-backend/internal/repository"
	"github.com/linkme-app/linkme-backend/internal/usecase/profile"
)

type NearbyUseCase struct {
	locationRepo repository.LocationRepository
	profileRepo  repository.ProfileRepository
	userRepo     repository.UserRepository
	log          *slog.Logger
}

func NewNearbyUseCase(
	locationRepo repository.LocationRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	log *slog.Logger,
) *NearbyUseCase {
	return &NearbyUseCase{
		locationRepo: locationRepo,
		profileRepo:  profileRepo,
		userRepo:     userRepo,
		log:          log,
	}
}

// SearchNearby runs the full proximity pipeline for a viewer: bounding-box
// candidate selection, exact-distance refinement, per-user profile
// resolution and distance-ascending ordering. Either a complete
// radius-satisfying list is returned or an explicit error, never partial
// data. A failing store surfaces as domain.ErrDataUnavailable.
func (uc *NearbyUseCase) SearchNearby(ctx context.Context, viewerID string, lat, lng, radiusMeters float64) ([]domain.NearbyMatch, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, domain.ErrInvalidCoordinates
	}
	if radiusMeters <= 0 {
		return nil, domain.ErrInvalidRadius
	}

	box := geo.NewBoundingBox(lat, lng, radiusMeters)
	locations, err := uc.locationRepo.ListInBox(ctx, box)
	if err != nil {
		uc.log.Error("location query failed", "err", err)
		return nil, fmt.Errorf("listing locations: %w", domain.ErrDataUnavailable)
	}

	candidates := selectCandidates(locations, lat, lng, radiusMeters, viewerID)
	if len(candidates) == 0 {
		return []domain.NearbyMatch{}, nil
	}

	userIDs := make([]string, len(candidates))
	for i, c := range candidates {
		userIDs[i] = c.location.UserID
	}

	profiles, err := uc.profileRepo.ListByUserIDs(ctx, userIDs, profile.ScopeNearby.VisibleTiers())
	if err != nil {
		uc.log.Error("profile query failed", "err", err)
		return nil, fmt.Errorf("listing profiles: %w", domain.ErrDataUnavailable)
	}
	profilesByUser := make(map[string][]*domain.Profile)
	for _, p := range profiles {
		profilesByUser[p.UserID] = append(profilesByUser[p.UserID], p)
	}

	users, err := uc.userRepo.ListByIDs(ctx, userIDs)
	if err != nil {
		uc.log.Error("user query failed", "err", err)
		return nil, fmt.Errorf("listing users: %w", domain.ErrDataUnavailable)
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	matches := make([]domain.NearbyMatch, 0, len(candidates))
	for _, c := range candidates {
		user, ok := usersByID[c.location.UserID]
		if !ok {
			continue
		}
		resolved, err := profile.Resolve(profilesByUser[c.location.UserID], nil, profile.ScopeNearby)
		if err != nil {
			// No visible profile: the user is silently excluded.
			continue
		}
		matches = append(matches, domain.NearbyMatch{
			User:           *user,
			Profile:        *resolved,
			Location:       *c.location,
			DistanceMeters: int(math.Round(c.distance)),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].DistanceMeters != matches[j].DistanceMeters {
			return matches[i].DistanceMeters < matches[j].DistanceMeters
		}
		return matches[i].User.ID < matches[j].User.ID
	})

	return matches, nil
}
