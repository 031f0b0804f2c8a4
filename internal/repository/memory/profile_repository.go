package memory

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type profileRepository struct {
	s *Store
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := now()
	// One active profile per (user, variant): replace in place.
	for id, existing := range r.s.profiles {
		if existing.UserID == profile.UserID && existing.Variant == profile.Variant {
			profile.ID = id
			profile.CreatedAt = existing.CreatedAt
			profile.UpdatedAt = t
			r.s.profiles[id] = *profile
			return nil
		}
	}
	profile.CreatedAt = t
	profile.UpdatedAt = t
	r.s.profiles[profile.ID] = *profile
	return nil
}

func (r *profileRepository) GetByUserAndVariant(ctx context.Context, userID string, variant domain.ProfileVariant) (*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, p := range r.s.profiles {
		if p.UserID == userID && p.Variant == variant {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrProfileNotFound
}

func (r *profileRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var profiles []*domain.Profile
	for _, p := range r.s.profiles {
		if p.UserID == userID {
			cp := p
			profiles = append(profiles, &cp)
		}
	}
	return profiles, nil
}

func (r *profileRepository) ListByUserIDs(ctx context.Context, userIDs []string, visibilityIn []domain.Visibility) ([]*domain.Profile, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	wanted := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		wanted[id] = true
	}
	visible := make(map[domain.Visibility]bool, len(visibilityIn))
	for _, v := range visibilityIn {
		visible[v] = true
	}

	var profiles []*domain.Profile
	for _, p := range r.s.profiles {
		if wanted[p.UserID] && visible[p.Visibility] {
			cp := p
			profiles = append(profiles, &cp)
		}
	}
	return profiles, nil
}
