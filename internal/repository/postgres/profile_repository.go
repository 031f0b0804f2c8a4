package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (
			id, user_id, profile_variant, name, headline, bio, visibility,
			professional, personal
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, profile_variant) DO UPDATE
		SET name = EXCLUDED.name,
		    headline = EXCLUDED.headline,
		    bio = EXCLUDED.bio,
		    visibility = EXCLUDED.visibility,
		    professional = EXCLUDED.professional,
		    personal = EXCLUDED.personal,
		    updated_at = CURRENT_TIMESTAMP
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		profile.ID, profile.UserID, profile.Variant, profile.Name,
		profile.Headline, profile.Bio, profile.Visibility,
		profile.Professional, profile.Personal,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) GetByUserAndVariant(ctx context.Context, userID string, variant domain.ProfileVariant) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1 AND profile_variant = $2`
	err := r.db.GetContext(ctx, &profile, query, userID, variant)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	query := `SELECT * FROM profiles WHERE user_id = $1 ORDER BY profile_variant`
	err := r.db.SelectContext(ctx, &profiles, query, userID)
	return profiles, err
}

func (r *profileRepository) ListByUserIDs(ctx context.Context, userIDs []string, visibilityIn []domain.Visibility) ([]*domain.Profile, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	tiers := make([]string, len(visibilityIn))
	for i, v := range visibilityIn {
		tiers[i] = string(v)
	}

	var profiles []*domain.Profile
	query := `
		SELECT * FROM profiles
		WHERE user_id = ANY($1)
		  AND visibility = ANY($2)
	`
	err := r.db.SelectContext(ctx, &profiles, query, pq.Array(userIDs), pq.Array(tiers))
	return profiles, err
}
