package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (id, connection_id, sender_id, text)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	return r.db.QueryRowContext(ctx, query, msg.ID, msg.ConnectionID, msg.SenderID, msg.Text).
		Scan(&msg.CreatedAt)
}

func (r *messageRepository) ListByConnection(ctx context.Context, connectionID string) ([]*domain.Message, error) {
	var msgs []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE connection_id = $1
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &msgs, query, connectionID)
	return msgs, err
}
