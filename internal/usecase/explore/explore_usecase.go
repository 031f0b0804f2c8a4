package explore

import (
	"context"
	"log/slog"
	"strings"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
	"github.com/linkme-app/linkme-backend/internal/infrastructure/gemini"
)

// PlaceFinder is the slice of the Gemini client this usecase needs.
type PlaceFinder interface {
	FindNearbyPlaces(ctx context.Context, query string, lat, lng float64) ([]gemini.Place, error)
}

type ExploreUseCase struct {
	finder PlaceFinder
	log    *slog.Logger
}

// NewExploreUseCase accepts a nil finder; the usecase then degrades to the
// fallback answer instead of failing.
func NewExploreUseCase(finder PlaceFinder, log *slog.Logger) *ExploreUseCase {
	return &ExploreUseCase{finder: finder, log: log}
}

// ExploreRequest is a free-form place query anchored at the caller's position.
type ExploreRequest struct {
	Query     string  `json:"query" binding:"required,max=300"`
	Latitude  float64 `json:"lat" binding:"min=-90,max=90"`
	Longitude float64 `json:"lng" binding:"min=-180,max=180"`
}

type ExploreResponse struct {
	Places   []gemini.Place `json:"places"`
	Fallback string         `json:"fallback,omitempty"`
}

const fallbackAnswer = "Place suggestions are unavailable right now. Try again in a bit, or search a map app directly."

// Explore asks the model for venue suggestions. Model failures are not
// surfaced as errors; the caller gets a fallback text instead.
func (uc *ExploreUseCase) Explore(ctx context.Context, req *ExploreRequest) (*ExploreResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if !geo.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, domain.ErrInvalidCoordinates
	}

	if uc.finder == nil {
		return &ExploreResponse{Places: []gemini.Place{}, Fallback: fallbackAnswer}, nil
	}

	places, err := uc.finder.FindNearbyPlaces(ctx, req.Query, req.Latitude, req.Longitude)
	if err != nil {
		uc.log.Warn("place lookup failed", "err", err)
		return &ExploreResponse{Places: []gemini.Place{}, Fallback: fallbackAnswer}, nil
	}
	return &ExploreResponse{Places: places}, nil
}
