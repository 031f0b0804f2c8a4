package repository

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
)

type LocationRepository interface {
	Upsert(ctx context.Context, loc *domain.Location) error
	GetByUserID(ctx context.Context, userID string) (*domain.Location, error)
	// ListInBox returns every location inside the bounding box. The box is
	// a cheap prefilter; callers still apply the exact-distance check.
	ListInBox(ctx context.Context, box geo.BoundingBox) ([]*domain.Location, error)
}
