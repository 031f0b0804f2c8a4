package auth

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository/memory"
	"github.com/linkme-app/linkme-backend/internal/usecase/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newUseCase(store *memory.Store, validate tokenValidator) *GoogleAuthUseCase {
	profiles := profile.NewProfileUseCase(store.Profiles(), store.Users())
	uc := NewGoogleAuthUseCase(store.Users(), profiles, "client-id", testSecret, 60, slog.Default())
	if validate != nil {
		uc.validate = validate
	}
	return uc
}

func stubValidator(payload *idtoken.Payload, err error) tokenValidator {
	return func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return payload, err
	}
}

func googlePayload(sub, email, name string) *idtoken.Payload {
	return &idtoken.Payload{
		Subject: sub,
		Claims: map[string]interface{}{
			"email":   email,
			"name":    name,
			"picture": "https://example.com/p.png",
		},
	}
}

func TestSignIn_SyncsUserAndSeedsProfiles(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store, stubValidator(googlePayload("sub-1", "ada@example.com", "Ada"), nil))
	ctx := context.Background()

	resp, err := uc.SignIn(ctx, &SignInRequest{IDToken: "google-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "sub-1", resp.User.ID)
	assert.Equal(t, "ada@example.com", resp.User.Email)

	// Both default variants exist after the first sign-in.
	profiles, err := store.Profiles().ListByUserID(ctx, "sub-1")
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.Equal(t, domain.VisibilityNearby, p.Visibility)
	}
}

func TestSignIn_SecondSignInKeepsEditedProfiles(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store, stubValidator(googlePayload("sub-1", "ada@example.com", "Ada"), nil))
	ctx := context.Background()

	_, err := uc.SignIn(ctx, &SignInRequest{IDToken: "t"})
	require.NoError(t, err)

	edited, err := store.Profiles().GetByUserAndVariant(ctx, "sub-1", domain.VariantProfessional)
	require.NoError(t, err)
	edited.Headline = "Staff Engineer"
	require.NoError(t, store.Profiles().Upsert(ctx, edited))

	_, err = uc.SignIn(ctx, &SignInRequest{IDToken: "t"})
	require.NoError(t, err)

	after, err := store.Profiles().GetByUserAndVariant(ctx, "sub-1", domain.VariantProfessional)
	require.NoError(t, err)
	assert.Equal(t, "Staff Engineer", after.Headline)
}

func TestSignIn_RejectsInvalidGoogleToken(t *testing.T) {
	uc := newUseCase(memory.NewStore(), stubValidator(nil, errors.New("bad audience")))

	_, err := uc.SignIn(context.Background(), &SignInRequest{IDToken: "junk"})
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store, stubValidator(googlePayload("sub-9", "bob@example.com", "Bob"), nil))

	resp, err := uc.SignIn(context.Background(), &SignInRequest{IDToken: "t"})
	require.NoError(t, err)

	userID, err := uc.VerifyToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "sub-9", userID)
}

func TestVerifyToken_RejectsGarbage(t *testing.T) {
	uc := newUseCase(memory.NewStore(), nil)

	_, err := uc.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
