package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateStatusIfPending_ConcurrentAcceptReject(t *testing.T) {
	store := NewStore()
	repo := store.Connections()
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Connection{
		ID:       "c1",
		FromUser: "a",
		ToUser:   "b",
		Message:  "hi",
		Status:   domain.ConnectionPending,
	}))

	// Exactly one of a racing accept/reject pair may win.
	var wg sync.WaitGroup
	results := make([]error, 2)
	statuses := []domain.ConnectionStatus{domain.ConnectionAccepted, domain.ConnectionRejected}
	for i, status := range statuses {
		wg.Add(1)
		go func(i int, status domain.ConnectionStatus) {
			defer wg.Done()
			_, results[i] = repo.UpdateStatusIfPending(ctx, "c1", status)
		}(i, status)
	}
	wg.Wait()

	wins := 0
	for _, err := range results {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		}
	}
	assert.Equal(t, 1, wins)

	conn, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.True(t, conn.Terminal())
}

func TestUpdateStatusIfPending_NotFound(t *testing.T) {
	store := NewStore()
	_, err := store.Connections().UpdateStatusIfPending(context.Background(), "missing", domain.ConnectionAccepted)
	assert.ErrorIs(t, err, domain.ErrConnectionNotFound)
}
