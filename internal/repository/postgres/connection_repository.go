package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type connectionRepository struct {
	db *sqlx.DB
}

func NewConnectionRepository(db *sqlx.DB) repository.ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	query := `
		INSERT INTO connections (
			id, from_user, to_user, profile_variant, message, status, proposed_meetup
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		conn.ID, conn.FromUser, conn.ToUser, conn.ProfileVariant,
		conn.Message, conn.Status, conn.ProposedMeetup,
	).Scan(&conn.CreatedAt, &conn.UpdatedAt)
}

func (r *connectionRepository) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	var conn domain.Connection
	query := `SELECT * FROM connections WHERE id = $1`
	err := r.db.GetContext(ctx, &conn, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrConnectionNotFound
		}
		return nil, err
	}
	return &conn, nil
}

func (r *connectionRepository) HasPendingBetween(ctx context.Context, fromUser, toUser string) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM connections
			WHERE from_user = $1 AND to_user = $2 AND status = 'pending'
		)
	`
	err := r.db.GetContext(ctx, &exists, query, fromUser, toUser)
	return exists, err
}

// UpdateStatusIfPending is the compare-and-set transition: the WHERE clause
// on the current status guarantees that racing accept/reject requests cannot
// both succeed.
func (r *connectionRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.ConnectionStatus) (*domain.Connection, error) {
	var conn domain.Connection
	query := `
		UPDATE connections
		SET status = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2 AND status = 'pending'
		RETURNING *
	`
	err := r.db.GetContext(ctx, &conn, query, status, id)
	if err == nil {
		return &conn, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// Zero rows: either the connection does not exist or it is terminal.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrInvalidTransition
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Connection, error) {
	var conns []*domain.Connection
	query := `
		SELECT * FROM connections
		WHERE from_user = $1 OR to_user = $1
		ORDER BY updated_at DESC
	`
	err := r.db.SelectContext(ctx, &conns, query, userID)
	return conns, err
}
