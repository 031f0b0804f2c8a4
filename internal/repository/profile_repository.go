package repository

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *domain.Profile) error
	GetByUserAndVariant(ctx context.Context, userID string, variant domain.ProfileVariant) (*domain.Profile, error)
	ListByUserID(ctx context.Context, userID string) ([]*domain.Profile, error)
	// ListByUserIDs batches the profile fetch for a candidate set,
	// restricted to the given visibility tiers.
	ListByUserIDs(ctx context.Context, userIDs []string, visibilityIn []domain.Visibility) ([]*domain.Profile, error)
}
