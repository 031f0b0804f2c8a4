package repository

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.Message) error
	// ListByConnection returns messages ordered by created_at ascending.
	ListByConnection(ctx context.Context, connectionID string) ([]*domain.Message, error)
}
