package location

import (
	"context"
	"fmt"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

// UpdateLocationRequest is a position report from the client.
type UpdateLocationRequest struct {
	Latitude  float64 `json:"lat" binding:"min=-90,max=90"`
	Longitude float64 `json:"lng" binding:"min=-180,max=180"`
}

// Update upserts the caller's singleton location record.
func (uc *LocationUseCase) Update(ctx context.Context, userID string, req *UpdateLocationRequest) (*domain.Location, error) {
	if !geo.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, domain.ErrInvalidCoordinates
	}

	loc := &domain.Location{
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := uc.locationRepo.Upsert(ctx, loc); err != nil {
		return nil, fmt.Errorf("failed to upsert location: %w", err)
	}
	return loc, nil
}
