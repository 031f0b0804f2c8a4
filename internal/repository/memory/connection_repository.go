package memory

import (
	"context"
	"sort"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type connectionRepository struct {
	s *Store
}

func (r *connectionRepository) Create(ctx context.Context, conn *domain.Connection) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := now()
	conn.CreatedAt = t
	conn.UpdatedAt = t
	r.s.connections[conn.ID] = *conn
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id string) (*domain.Connection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	conn, ok := r.s.connections[id]
	if !ok {
		return nil, domain.ErrConnectionNotFound
	}
	return &conn, nil
}

func (r *connectionRepository) HasPendingBetween(ctx context.Context, fromUser, toUser string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, c := range r.s.connections {
		if c.FromUser == fromUser && c.ToUser == toUser && c.Status == domain.ConnectionPending {
			return true, nil
		}
	}
	return false, nil
}

// UpdateStatusIfPending checks and swaps the status under the store lock,
// matching the conditional-update semantics of the postgres implementation.
func (r *connectionRepository) UpdateStatusIfPending(ctx context.Context, id string, status domain.ConnectionStatus) (*domain.Connection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	conn, ok := r.s.connections[id]
	if !ok {
		return nil, domain.ErrConnectionNotFound
	}
	if conn.Status != domain.ConnectionPending {
		return nil, domain.ErrInvalidTransition
	}
	conn.Status = status
	conn.UpdatedAt = now()
	r.s.connections[id] = conn
	return &conn, nil
}

func (r *connectionRepository) ListForUser(ctx context.Context, userID string) ([]*domain.Connection, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var conns []*domain.Connection
	for _, c := range r.s.connections {
		if c.HasUser(userID) {
			cp := c
			conns = append(conns, &cp)
		}
	}
	sort.Slice(conns, func(i, j int) bool {
		return conns[i].UpdatedAt.After(conns[j].UpdatedAt)
	})
	return conns, nil
}
