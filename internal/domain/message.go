package domain

import "time"

// Message is append-only; creation is permitted only while the owning
// connection is accepted.
type Message struct {
	ID           string    `json:"id" db:"id"`
	ConnectionID string    `json:"connection_id" db:"connection_id"`
	SenderID     string    `json:"sender_id" db:"sender_id"`
	Text         string    `json:"text" db:"text"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
