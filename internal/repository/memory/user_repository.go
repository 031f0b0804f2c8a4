package memory

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) Upsert(ctx context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := now()
	user.LastActive = &t
	if existing, ok := r.s.users[user.ID]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = t
	}
	r.s.users[user.ID] = *user
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var users []*domain.User
	for _, id := range ids {
		if user, ok := r.s.users[id]; ok {
			u := user
			users = append(users, &u)
		}
	}
	return users, nil
}

func (r *userRepository) TouchLastActive(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	t := now()
	user.LastActive = &t
	r.s.users[id] = user
	return nil
}
