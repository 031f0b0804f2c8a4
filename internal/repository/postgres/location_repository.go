package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/geo"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type locationRepository struct {
	db *sqlx.DB
}

func NewLocationRepository(db *sqlx.DB) repository.LocationRepository {
	return &locationRepository{db: db}
}

func (r *locationRepository) Upsert(ctx context.Context, loc *domain.Location) error {
	query := `
		INSERT INTO locations (user_id, latitude, longitude, updated_at)
		VALUES ($1, $2, $3, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id) DO UPDATE
		SET latitude = EXCLUDED.latitude,
		    longitude = EXCLUDED.longitude,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING updated_at
	`
	return r.db.QueryRowContext(ctx, query, loc.UserID, loc.Latitude, loc.Longitude).
		Scan(&loc.UpdatedAt)
}

func (r *locationRepository) GetByUserID(ctx context.Context, userID string) (*domain.Location, error) {
	var loc domain.Location
	query := `SELECT * FROM locations WHERE user_id = $1`
	err := r.db.GetContext(ctx, &loc, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLocationNotFound
		}
		return nil, err
	}
	return &loc, nil
}

func (r *locationRepository) ListInBox(ctx context.Context, box geo.BoundingBox) ([]*domain.Location, error) {
	var locs []*domain.Location
	query := `
		SELECT * FROM locations
		WHERE latitude BETWEEN $1 AND $2
		  AND longitude BETWEEN $3 AND $4
	`
	err := r.db.SelectContext(ctx, &locs, query, box.LatMin, box.LatMax, box.LngMin, box.LngMax)
	return locs, err
}
