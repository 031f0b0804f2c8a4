package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
	"github.com/linkme-app/linkme-backend/internal/usecase/profile"
	"google.golang.org/api/idtoken"
)

// tokenValidator verifies a Google ID token. Indirection exists so tests can
// substitute the network call.
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type GoogleAuthUseCase struct {
	userRepo       repository.UserRepository
	profileUseCase *profile.ProfileUseCase
	clientID       string
	jwtSecret      string
	accessExpiry   time.Duration
	validate       tokenValidator
	log            *slog.Logger
}

func NewGoogleAuthUseCase(
	userRepo repository.UserRepository,
	profileUseCase *profile.ProfileUseCase,
	clientID string,
	jwtSecret string,
	accessExpiryMin int,
	log *slog.Logger,
) *GoogleAuthUseCase {
	return &GoogleAuthUseCase{
		userRepo:       userRepo,
		profileUseCase: profileUseCase,
		clientID:       clientID,
		jwtSecret:      jwtSecret,
		accessExpiry:   time.Duration(accessExpiryMin) * time.Minute,
		validate:       idtoken.Validate,
		log:            log,
	}
}

// SignInRequest carries the ID token obtained from Google on the client.
type SignInRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// AuthResponse is the issued app token plus the synced user record.
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// SignIn validates the Google ID token, syncs the user record and seeds
// default profiles for first-time users, then issues an app access token.
func (uc *GoogleAuthUseCase) SignIn(ctx context.Context, req *SignInRequest) (*AuthResponse, error) {
	payload, err := uc.validate(ctx, req.IDToken, uc.clientID)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, domain.ErrInvalidToken
	}
	name, _ := payload.Claims["name"].(string)
	if name == "" {
		name = strings.Split(email, "@")[0]
	}

	user := &domain.User{
		ID:    payload.Subject,
		Email: email,
		Name:  name,
	}
	if picture, ok := payload.Claims["picture"].(string); ok && picture != "" {
		user.AvatarURL = &picture
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to sync user: %w", err)
	}

	if err := uc.profileUseCase.EnsureDefaultProfiles(ctx, user.ID); err != nil {
		// A missing default profile should not block sign-in; the user
		// can still create one explicitly.
		uc.log.Warn("failed to seed default profiles", "user_id", user.ID, "err", err)
	}

	token, expiresAt, err := uc.issueToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	uc.log.Info("user signed in", "user_id", user.ID)
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Me returns the identity behind a user id, refreshing last_active.
func (uc *GoogleAuthUseCase) Me(ctx context.Context, userID string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := uc.userRepo.TouchLastActive(ctx, userID); err != nil {
		uc.log.Warn("failed to touch last_active", "user_id", userID, "err", err)
	}
	return user, nil
}

func (uc *GoogleAuthUseCase) issueToken(userID string) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.accessExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	})
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken verifies an app access token and returns the user id.
func (uc *GoogleAuthUseCase) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
