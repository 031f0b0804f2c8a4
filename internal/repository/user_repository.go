package repository

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.User, error)
	TouchLastActive(ctx context.Context, id string) error
}
