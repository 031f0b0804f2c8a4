package memory

import (
	"context"

	"github.com/linkme-app/linkme-backend/internal/domain"
)

type messageRepository struct {
	s *Store
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	msg.CreatedAt = now()
	r.s.messages[msg.ConnectionID] = append(r.s.messages[msg.ConnectionID], *msg)
	return nil
}

func (r *messageRepository) ListByConnection(ctx context.Context, connectionID string) ([]*domain.Message, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// Append-only slice is already in created_at order.
	stored := r.s.messages[connectionID]
	msgs := make([]*domain.Message, 0, len(stored))
	for i := range stored {
		cp := stored[i]
		msgs = append(msgs, &cp)
	}
	return msgs, nil
}
