package connection

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
	"github.com/linkme-app/linkme-backend/internal/usecase/profile"
)

type ConnectionUseCase struct {
	connRepo    repository.ConnectionRepository
	messageRepo repository.MessageRepository
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
	log         *slog.Logger
}

func NewConnectionUseCase(
	connRepo repository.ConnectionRepository,
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
	log *slog.Logger,
) *ConnectionUseCase {
	return &ConnectionUseCase{
		connRepo:    connRepo,
		messageRepo: messageRepo,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		log:         log,
	}
}

// CreateConnectionRequest is the payload for a new request. The meetup
// proposal, when present, is frozen into the connection at creation.
type CreateConnectionRequest struct {
	ToUser         string                 `json:"to_user" binding:"required"`
	ProfileVariant domain.ProfileVariant  `json:"profile_variant" binding:"required,oneof=professional personal"`
	Message        string                 `json:"message" binding:"required"`
	ProposedMeetup *domain.MeetupProposal `json:"proposed_meetup" binding:"omitempty"`
}

// ConnectionView is a connection annotated with the resolved peer (the
// other party from the caller's perspective) and that peer's profile for
// the variant stored on the connection.
type ConnectionView struct {
	*domain.Connection
	Peer        *domain.User    `json:"peer,omitempty"`
	PeerProfile *domain.Profile `json:"peer_profile,omitempty"`
}

// CreateRequest opens a new connection in pending state. A second pending
// request in the same direction is rejected; a fresh request after a
// rejection is allowed.
func (uc *ConnectionUseCase) CreateRequest(ctx context.Context, fromUser string, req *CreateConnectionRequest) (*domain.Connection, error) {
	if fromUser == req.ToUser {
		return nil, domain.ErrSelfConnection
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, domain.ErrEmptyMessage
	}
	if !req.ProfileVariant.Valid() {
		return nil, domain.ErrInvalidVariant
	}

	exists, err := uc.connRepo.HasPendingBetween(ctx, fromUser, req.ToUser)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending requests: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateRequest
	}

	conn := &domain.Connection{
		ID:             uuid.NewString(),
		FromUser:       fromUser,
		ToUser:         req.ToUser,
		ProfileVariant: req.ProfileVariant,
		Message:        req.Message,
		Status:         domain.ConnectionPending,
		ProposedMeetup: req.ProposedMeetup,
	}
	if err := uc.connRepo.Create(ctx, conn); err != nil {
		return nil, fmt.Errorf("failed to create connection: %w", err)
	}

	uc.log.Info("connection request created",
		"connection_id", conn.ID, "from", fromUser, "to", req.ToUser)
	return conn, nil
}

// Respond moves a pending connection to accepted or rejected. Only the
// recipient may respond. The store transition is a compare-and-set on the
// pending status, so racing responses cannot both win.
func (uc *ConnectionUseCase) Respond(ctx context.Context, userID, connectionID string, accept bool) (*domain.Connection, error) {
	conn, err := uc.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if conn.ToUser != userID {
		return nil, domain.ErrNotParticipant
	}

	status := domain.ConnectionRejected
	if accept {
		status = domain.ConnectionAccepted
	}
	updated, err := uc.connRepo.UpdateStatusIfPending(ctx, connectionID, status)
	if err != nil {
		return nil, err
	}

	uc.log.Info("connection responded", "connection_id", connectionID, "status", status)
	return updated, nil
}

// SendMessage appends a message to an accepted connection. Any other status
// keeps the gate closed.
func (uc *ConnectionUseCase) SendMessage(ctx context.Context, senderID, connectionID, text string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	conn, err := uc.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasUser(senderID) {
		return nil, domain.ErrNotParticipant
	}
	if !conn.MessagingOpen() {
		return nil, domain.ErrGateClosed
	}

	msg := &domain.Message{
		ID:           uuid.NewString(),
		ConnectionID: connectionID,
		SenderID:     senderID,
		Text:         text,
	}
	if err := uc.messageRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// ListMessages returns the conversation in created_at order, participants
// only.
func (uc *ConnectionUseCase) ListMessages(ctx context.Context, userID, connectionID string) ([]*domain.Message, error) {
	conn, err := uc.connRepo.GetByID(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if !conn.HasUser(userID) {
		return nil, domain.ErrNotParticipant
	}
	return uc.messageRepo.ListByConnection(ctx, connectionID)
}

// ListForUser returns every connection the user participates in, each
// annotated with the peer identity and the peer's profile for the variant
// stored on the connection. The profile is resolved live: a peer who has
// since gone private shows up without a profile rather than leaking the old
// record.
func (uc *ConnectionUseCase) ListForUser(ctx context.Context, userID string) ([]*ConnectionView, error) {
	conns, err := uc.connRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	if len(conns) == 0 {
		return []*ConnectionView{}, nil
	}

	peerIDs := make([]string, 0, len(conns))
	seen := make(map[string]bool)
	for _, c := range conns {
		if peer, ok := c.PeerOf(userID); ok && !seen[peer] {
			seen[peer] = true
			peerIDs = append(peerIDs, peer)
		}
	}

	users, err := uc.userRepo.ListByIDs(ctx, peerIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to list peers: %w", err)
	}
	usersByID := make(map[string]*domain.User, len(users))
	for _, u := range users {
		usersByID[u.ID] = u
	}

	profiles, err := uc.profileRepo.ListByUserIDs(ctx, peerIDs, profile.ScopeNearby.VisibleTiers())
	if err != nil {
		return nil, fmt.Errorf("failed to list peer profiles: %w", err)
	}
	profilesByUser := make(map[string][]*domain.Profile)
	for _, p := range profiles {
		profilesByUser[p.UserID] = append(profilesByUser[p.UserID], p)
	}

	views := make([]*ConnectionView, 0, len(conns))
	for _, c := range conns {
		view := &ConnectionView{Connection: c}
		if peerID, ok := c.PeerOf(userID); ok {
			view.Peer = usersByID[peerID]
			variant := c.ProfileVariant
			if resolved, err := profile.Resolve(profilesByUser[peerID], &variant, profile.ScopeNearby); err == nil {
				view.PeerProfile = resolved
			}
		}
		views = append(views, view)
	}
	return views, nil
}
