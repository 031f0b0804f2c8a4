package explore

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/infrastructure/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFinder struct {
	places []gemini.Place
	err    error
}

func (s *stubFinder) FindNearbyPlaces(ctx context.Context, query string, lat, lng float64) ([]gemini.Place, error) {
	return s.places, s.err
}

func TestExplore_ReturnsPlaces(t *testing.T) {
	finder := &stubFinder{places: []gemini.Place{
		{Name: "Blue Bottle", Category: "cafe", Area: "SoMa"},
	}}
	uc := NewExploreUseCase(finder, slog.Default())

	resp, err := uc.Explore(context.Background(), &ExploreRequest{
		Query: "quiet cafe for a first meetup", Latitude: 37.78, Longitude: -122.41,
	})
	require.NoError(t, err)
	require.Len(t, resp.Places, 1)
	assert.Equal(t, "Blue Bottle", resp.Places[0].Name)
	assert.Empty(t, resp.Fallback)
}

func TestExplore_FallsBackOnModelFailure(t *testing.T) {
	uc := NewExploreUseCase(&stubFinder{err: errors.New("quota exceeded")}, slog.Default())

	resp, err := uc.Explore(context.Background(), &ExploreRequest{
		Query: "parks", Latitude: 1, Longitude: 1,
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Places)
	assert.NotEmpty(t, resp.Fallback)
}

func TestExplore_FallsBackWithoutFinder(t *testing.T) {
	uc := NewExploreUseCase(nil, slog.Default())

	resp, err := uc.Explore(context.Background(), &ExploreRequest{
		Query: "parks", Latitude: 1, Longitude: 1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Fallback)
}

func TestExplore_Validation(t *testing.T) {
	uc := NewExploreUseCase(&stubFinder{}, slog.Default())
	ctx := context.Background()

	_, err := uc.Explore(ctx, &ExploreRequest{Query: "   ", Latitude: 1, Longitude: 1})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = uc.Explore(ctx, &ExploreRequest{Query: "cafes", Latitude: 91, Longitude: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidCoordinates)
}
