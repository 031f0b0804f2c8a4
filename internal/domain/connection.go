package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

type ConnectionStatus string

const (
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
	ConnectionRejected ConnectionStatus = "rejected"
)

// MeetupProposal is immutable once attached; it is set only when the
// connection request is created.
type MeetupProposal struct {
	PlaceName string  `json:"place_name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
	Note      string  `json:"note"`
}

func (m *MeetupProposal) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *MeetupProposal) Scan(src interface{}) error {
	return scanJSON(src, m)
}

type Connection struct {
	ID             string           `json:"id" db:"id"`
	FromUser       string           `json:"from_user" db:"from_user"`
	ToUser         string           `json:"to_user" db:"to_user"`
	ProfileVariant ProfileVariant   `json:"profile_variant" db:"profile_variant"`
	Message        string           `json:"message" db:"message"`
	Status         ConnectionStatus `json:"status" db:"status"`
	ProposedMeetup *MeetupProposal  `json:"proposed_meetup,omitempty" db:"proposed_meetup"`
	CreatedAt      time.Time        `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at" db:"updated_at"`
}

func (c *Connection) HasUser(userID string) bool {
	return c.FromUser == userID || c.ToUser == userID
}

// PeerOf returns the other party of the connection.
func (c *Connection) PeerOf(userID string) (string, bool) {
	if c.FromUser == userID {
		return c.ToUser, true
	}
	if c.ToUser == userID {
		return c.FromUser, true
	}
	return "", false
}

// MessagingOpen reports whether the messaging gate for this connection is
// open. Accepting a request is the only event that opens it.
func (c *Connection) MessagingOpen() bool {
	return c.Status == ConnectionAccepted
}

// Terminal reports whether the status admits no further transitions.
func (c *Connection) Terminal() bool {
	return c.Status == ConnectionAccepted || c.Status == ConnectionRejected
}
