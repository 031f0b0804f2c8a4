package memory

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
)

type locationRepository struct {
	s *Store
}

func (r *locationRepository) Upsert(ctx context.Context, loc *domain.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	loc.UpdatedAt = now()
	r.s.locations[loc.UserID] = *loc
	return nil
}

func (r *locationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	loc, ok := r.s.locations[userID]
	if !ok {
		return nil, domain.ErrLocationNotFound
	}
	return &loc, nil
}

func (r *locationRepository) ListInBox(ctx context.Context, box geo.BoundingBox) ([]*domain.Location, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var locs []*domain.Location
	for _, loc := range r.s.locations {
		if box.Contains(loc.Latitude, loc.Longitude) {
			cp := loc
			locs = append(locs, &cp)
		}
	}
	return locs, nil
}
