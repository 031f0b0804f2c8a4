package profile

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/linkme-app/linkme-backend/internal/repository"
)

type ProfileUseCase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileUseCase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) *ProfileUseCase {
	return &ProfileUseCase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// UpsertProfileRequest creates or replaces one variant of the caller's
// profile.
type UpsertProfileRequest struct {
	Variant      domain.ProfileVariant       `json:"profile_variant" binding:"required,oneof=professional personal"`
	Name         *string                     `json:"name" binding:"omitempty,max=100"`
	Headline     string                      `json:"headline" binding:"required,max=150"`
	Bio          string                      `json:"bio" binding:"omitempty,max=500"`
	Visibility   domain.Visibility           `json:"visibility" binding:"required,oneof=public nearby private"`
	Professional *domain.ProfessionalDetails `json:"professional" binding:"omitempty"`
	Personal     *domain.PersonalDetails     `json:"personal" binding:"omitempty"`
}

// GetMyProfile returns the caller's own profile, optionally pinned to a
// variant. The owner sees every tier, private included.
func (uc *ProfileUseCase) GetMyProfile(ctx context.Context, userID string, variant *domain.ProfileVariant) (*domain.Profile, error) {
	profiles, err := uc.profileRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	resolved, err := Resolve(profiles, variant, ScopeOwner)
	if err != nil {
		return nil, domain.ErrProfileNotFound
	}
	return resolved, nil
}

// GetProfileByUserID is the direct (non-radius) lookup path: only public
// profiles are exposed, unless the caller is looking at themselves.
func (uc *ProfileUseCase) GetProfileByUserID(ctx context.Context, viewerID, targetUserID string, variant *domain.ProfileVariant) (*domain.Profile, error) {
	scope := ScopeDirect
	if viewerID == targetUserID {
		scope = ScopeOwner
	}

	profiles, err := uc.profileRepo.ListByUserID(ctx, targetUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return Resolve(profiles, variant, scope)
}

// UpsertProfile creates or updates the caller's profile for one variant,
// keeping the tagged-variant invariant: only the details matching the
// variant are persisted.
func (uc *ProfileUseCase) UpsertProfile(ctx context.Context, userID string, req *UpsertProfileRequest) (*domain.Profile, error) {
	if !req.Variant.Valid() {
		return nil, domain.ErrInvalidVariant
	}

	p := &domain.Profile{
		ID:         uuid.NewString(),
		UserID:     userID,
		Variant:    req.Variant,
		Name:       req.Name,
		Headline:   req.Headline,
		Bio:        req.Bio,
		Visibility: req.Visibility,
	}
	switch req.Variant {
	case domain.VariantProfessional:
		p.Professional = req.Professional
		if p.Professional == nil {
			p.Professional = &domain.ProfessionalDetails{}
		}
	case domain.VariantPersonal:
		p.Personal = req.Personal
		if p.Personal == nil {
			p.Personal = &domain.PersonalDetails{}
		}
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to upsert profile: %w", err)
	}
	return p, nil
}

// EnsureDefaultProfiles seeds both variants for a newly synced user so they
// are discoverable right after sign-in. Existing profiles are left alone.
func (uc *ProfileUseCase) EnsureDefaultProfiles(ctx context.Context, userID string) error {
	existing, err := uc.profileRepo.ListByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	defaults := []*domain.Profile{
		{
			ID:           uuid.NewString(),
			UserID:       userID,
			Variant:      domain.VariantProfessional,
			Headline:     "New Professional",
			Visibility:   domain.VisibilityNearby,
			Professional: &domain.ProfessionalDetails{},
		},
		{
			ID:         uuid.NewString(),
			UserID:     userID,
			Variant:    domain.VariantPersonal,
			Headline:   "New User",
			Visibility: domain.VisibilityNearby,
			Personal:   &domain.PersonalDetails{},
		},
	}
	for _, p := range defaults {
		if err := uc.profileRepo.Upsert(ctx, p); err != nil {
			return fmt.Errorf("failed to seed %s profile: %w", p.Variant, err)
		}
	}
	return nil
}

// ParseVariant converts an optional query value into a variant pointer.
func ParseVariant(raw string) (*domain.ProfileVariant, error) {
	if raw == "" {
		return nil, nil
	}
	v := domain.ProfileVariant(raw)
	if !v.Valid() {
		return nil, domain.ErrInvalidVariant
	}
	return &v, nil
}
