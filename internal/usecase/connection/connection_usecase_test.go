package connection

import (
	"context"
	"log/slog"
	"testing"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(store *memory.Store) *ConnectionUseCase {
	return NewConnectionUseCase(
		store.Connections(), store.Messages(), store.Profiles(), store.Users(), slog.Default(),
	)
}

func seedUsers(t *testing.T, store *memory.Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, store.Users().Upsert(context.Background(), &domain.User{
			ID: id, Email: id + "@example.com", Name: "User " + id,
		}))
	}
}

func createRequest(t *testing.T, uc *ConnectionUseCase, from, to string) *domain.Connection {
	t.Helper()
	conn, err := uc.CreateRequest(context.Background(), from, &CreateConnectionRequest{
		ToUser:         to,
		ProfileVariant: domain.VariantProfessional,
		Message:        "hi",
	})
	require.NoError(t, err)
	return conn
}

func TestCreateRequest_StartsPending(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)

	conn := createRequest(t, uc, "a", "b")
	assert.Equal(t, domain.ConnectionPending, conn.Status)
	assert.NotEmpty(t, conn.ID)
	assert.False(t, conn.MessagingOpen())
}

func TestCreateRequest_Validation(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	ctx := context.Background()

	_, err := uc.CreateRequest(ctx, "a", &CreateConnectionRequest{
		ToUser: "a", ProfileVariant: domain.VariantPersonal, Message: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrSelfConnection)

	_, err = uc.CreateRequest(ctx, "a", &CreateConnectionRequest{
		ToUser: "b", ProfileVariant: domain.VariantPersonal, Message: "   ",
	})
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)

	_, err = uc.CreateRequest(ctx, "a", &CreateConnectionRequest{
		ToUser: "b", ProfileVariant: "romantic", Message: "hi",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidVariant)
}

func TestCreateRequest_DuplicatePendingBlocked(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	createRequest(t, uc, "a", "b")
	_, err := uc.CreateRequest(ctx, "a", &CreateConnectionRequest{
		ToUser: "b", ProfileVariant: domain.VariantProfessional, Message: "hi again",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)

	// The reverse direction is a distinct request and allowed.
	_, err = uc.CreateRequest(ctx, "b", &CreateConnectionRequest{
		ToUser: "a", ProfileVariant: domain.VariantProfessional, Message: "hello",
	})
	assert.NoError(t, err)
}

func TestCreateRequest_RenewalAfterRejection(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	first := createRequest(t, uc, "a", "b")
	_, err := uc.Respond(ctx, "b", first.ID, false)
	require.NoError(t, err)

	second, err := uc.CreateRequest(ctx, "a", &CreateConnectionRequest{
		ToUser: "b", ProfileVariant: domain.VariantProfessional, Message: "second try",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestLifecycle_AcceptThenMessageThenRejectFails(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	conn := createRequest(t, uc, "a", "b")

	accepted, err := uc.Respond(ctx, "b", conn.ID, true)
	require.NoError(t, err)
	assert.Equal(t, domain.ConnectionAccepted, accepted.Status)

	msg, err := uc.SendMessage(ctx, "a", conn.ID, "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", msg.Text)

	// Rejecting the now-accepted connection is an invalid transition.
	_, err = uc.Respond(ctx, "b", conn.ID, false)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	// So is accepting twice.
	_, err = uc.Respond(ctx, "b", conn.ID, true)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSendMessage_GateClosedWhilePending(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	conn := createRequest(t, uc, "a", "b")
	_, err := uc.SendMessage(ctx, "a", conn.ID, "too early")
	assert.ErrorIs(t, err, domain.ErrGateClosed)
}

func TestSendMessage_GateStaysClosedAfterRejection(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	conn := createRequest(t, uc, "a", "b")
	_, err := uc.Respond(ctx, "b", conn.ID, false)
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "a", conn.ID, "still there?")
	assert.ErrorIs(t, err, domain.ErrGateClosed)
}

func TestSendMessage_OutsiderAndUnknownConnection(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b", "c")
	uc := newUseCase(store)
	ctx := context.Background()

	conn := createRequest(t, uc, "a", "b")
	_, err := uc.Respond(ctx, "b", conn.ID, true)
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "c", conn.ID, "let me in")
	assert.ErrorIs(t, err, domain.ErrNotParticipant)

	_, err = uc.SendMessage(ctx, "a", "no-such-id", "hi")
	assert.ErrorIs(t, err, domain.ErrConnectionNotFound)
}

func TestRespond_OnlyRecipientMayRespond(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)

	conn := createRequest(t, uc, "a", "b")
	_, err := uc.Respond(context.Background(), "a", conn.ID, true)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestListMessages_OrderedAndGated(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	uc := newUseCase(store)
	ctx := context.Background()

	conn := createRequest(t, uc, "a", "b")
	_, err := uc.Respond(ctx, "b", conn.ID, true)
	require.NoError(t, err)

	for _, text := range []string{"one", "two", "three"} {
		_, err := uc.SendMessage(ctx, "a", conn.ID, text)
		require.NoError(t, err)
	}

	msgs, err := uc.ListMessages(ctx, "b", conn.ID)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "three", msgs[2].Text)

	_, err = uc.ListMessages(ctx, "outsider", conn.ID)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}

func TestListForUser_AnnotatesPeer(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	require.NoError(t, store.Profiles().Upsert(context.Background(), &domain.Profile{
		ID: "pb", UserID: "b", Variant: domain.VariantProfessional,
		Headline: "b pro", Visibility: domain.VisibilityNearby,
		Professional: &domain.ProfessionalDetails{},
	}))
	uc := newUseCase(store)

	conn := createRequest(t, uc, "a", "b")

	views, err := uc.ListForUser(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, conn.ID, views[0].ID)
	require.NotNil(t, views[0].Peer)
	assert.Equal(t, "b", views[0].Peer.ID)
	require.NotNil(t, views[0].PeerProfile)
	assert.Equal(t, domain.VariantProfessional, views[0].PeerProfile.Variant)
}

func TestListForUser_PeerGonePrivateDegradesToNoProfile(t *testing.T) {
	store := memory.NewStore()
	seedUsers(t, store, "a", "b")
	ctx := context.Background()
	require.NoError(t, store.Profiles().Upsert(ctx, &domain.Profile{
		ID: "pb", UserID: "b", Variant: domain.VariantProfessional,
		Headline: "b pro", Visibility: domain.VisibilityNearby,
		Professional: &domain.ProfessionalDetails{},
	}))
	uc := newUseCase(store)
	createRequest(t, uc, "a", "b")

	// Peer flips the variant to private after the request was sent.
	require.NoError(t, store.Profiles().Upsert(ctx, &domain.Profile{
		ID: "pb", UserID: "b", Variant: domain.VariantProfessional,
		Headline: "b pro", Visibility: domain.VisibilityPrivate,
		Professional: &domain.ProfessionalDetails{},
	}))

	views, err := uc.ListForUser(ctx, "a")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.NotNil(t, views[0].Peer)
	assert.Nil(t, views[0].PeerProfile)
}
