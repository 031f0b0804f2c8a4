package repository

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type ConnectionRepository interface {
	Create(ctx context.Context, conn *domain.Connection) error
	GetByID(ctx context.Context, id string) (*domain.Connection, error)
	// HasPendingBetween reports whether a pending request from fromUser to
	// toUser already exists.
	HasPendingBetween(ctx context.Context, fromUser, toUser string) (bool, error)
	// UpdateStatusIfPending atomically moves the connection out of pending
	// (compare-and-set; concurrent accept/reject must not both succeed).
	// Returns domain.ErrInvalidTransition when the status is already
	// terminal and domain.ErrConnectionNotFound when the id is unknown.
	UpdateStatusIfPending(ctx context.Context, id string, status domain.ConnectionStatus) (*domain.Connection, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Connection, error)
}
