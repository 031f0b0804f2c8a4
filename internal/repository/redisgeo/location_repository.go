// Package redisgeo keeps location records in Redis. Locations are hot,
// per-user singleton rows with no relational ties, so they can live apart
// from the postgres schema when STORAGE_LOCATIONS=redis.
package redisgeo

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
	"github.com/linkme-app/linkme-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const indexKey = "locations:index"

type locationRepository struct {
	client *redis.Client
}

func NewLocationRepository(client *redis.Client) repository.LocationRepository {
	return &locationRepository{client: client}
}

func locationKey(userID string) string {
	return "locations:" + userID
}

func (r *locationRepository) Upsert(ctx context.Context, loc *domain.Location) error {
	loc.UpdatedAt = time.Now().UTC()

	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, locationKey(loc.UserID), map[string]interface{}{
		"latitude":   loc.Latitude,
		"longitude":  loc.Longitude,
		"updated_at": loc.UpdatedAt.Format(time.RFC3339Nano),
	})
	pipe.SAdd(ctx, indexKey, loc.UserID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to upsert location: %w", err)
	}
	return nil
}

func (r *locationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Location, error) {
	fields, err := r.client.HGetAll(ctx, locationKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, domain.ErrLocationNotFound
	}
	return parseLocation(userID, fields)
}

// ListInBox scans the tracked user set and filters by the bounding box. The
// working set is a single metro area, so a full scan stays cheap.
func (r *locationRepository) ListInBox(ctx context.Context, box geo.BoundingBox) ([]*domain.Location, error) {
	userIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, err
	}
	if len(userIDs) == 0 {
		return nil, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(userIDs))
	for i, id := range userIDs {
		cmds[i] = pipe.HGetAll(ctx, locationKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}

	var locs []*domain.Location
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil || len(fields) == 0 {
			continue
		}
		loc, err := parseLocation(userIDs[i], fields)
		if err != nil {
			continue
		}
		if box.Contains(loc.Latitude, loc.Longitude) {
			locs = append(locs, loc)
		}
	}
	return locs, nil
}

func parseLocation(userID string, fields map[string]string) (*domain.Location, error) {
	lat, err := strconv.ParseFloat(fields["latitude"], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt latitude for %s: %w", userID, err)
	}
	lng, err := strconv.ParseFloat(fields["longitude"], 64)
	if err != nil {
		return nil, fmt.Errorf("corrupt longitude for %s: %w", userID, err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("corrupt updated_at for %s: %w", userID, err)
	}
	return &domain.Location{
		UserID:    userID,
		Latitude:  lat,
		Longitude: lng,
		UpdatedAt: updatedAt,
	}, nil
}
