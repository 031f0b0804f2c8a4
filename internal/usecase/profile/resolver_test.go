package profile

import (
	"testing"

	"github.com/linkme-app/linkme-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func prof(variant domain.ProfileVariant, vis domain.Visibility) *domain.Profile {
	return &domain.Profile{
		ID:         string(variant) + "-id",
		UserID:     "x",
		Variant:    variant,
		Headline:   "h",
		Visibility: vis,
	}
}

func TestResolve_PrefersProfessionalWhenNoVariantRequested(t *testing.T) {
	profiles := []*domain.Profile{
		prof(domain.VariantPersonal, domain.VisibilityPublic),
		prof(domain.VariantProfessional, domain.VisibilityPublic),
	}
	got, err := Resolve(profiles, nil, ScopeNearby)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantProfessional, got.Variant)
}

func TestResolve_ProfessionalPublicPersonalPrivate(t *testing.T) {
	// Professional public + personal private: no requested variant
	// resolves to the professional record.
	profiles := []*domain.Profile{
		prof(domain.VariantProfessional, domain.VisibilityPublic),
		prof(domain.VariantPersonal, domain.VisibilityPrivate),
	}
	got, err := Resolve(profiles, nil, ScopeNearby)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantProfessional, got.Variant)
}

func TestResolve_RequestedVariant(t *testing.T) {
	profiles := []*domain.Profile{
		prof(domain.VariantProfessional, domain.VisibilityPublic),
		prof(domain.VariantPersonal, domain.VisibilityNearby),
	}
	personal := domain.VariantPersonal
	got, err := Resolve(profiles, &personal, ScopeNearby)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantPersonal, got.Variant)
}

func TestResolve_RequestedVariantHiddenByVisibility(t *testing.T) {
	profiles := []*domain.Profile{
		prof(domain.VariantProfessional, domain.VisibilityPublic),
		prof(domain.VariantPersonal, domain.VisibilityPrivate),
	}
	personal := domain.VariantPersonal
	_, err := Resolve(profiles, &personal, ScopeNearby)
	assert.ErrorIs(t, err, domain.ErrNoVisibleProfile)
}

func TestResolve_SingleVisibleVariant(t *testing.T) {
	profiles := []*domain.Profile{
		prof(domain.VariantPersonal, domain.VisibilityNearby),
	}
	got, err := Resolve(profiles, nil, ScopeNearby)
	require.NoError(t, err)
	assert.Equal(t, domain.VariantPersonal, got.Variant)
}

func TestResolve_NothingVisible(t *testing.T) {
	profiles := []*domain.Profile{
		prof(domain.VariantProfessional, domain.VisibilityPrivate),
		prof(domain.VariantPersonal, domain.VisibilityPrivate),
	}
	_, err := Resolve(profiles, nil, ScopeNearby)
	assert.ErrorIs(t, err, domain.ErrNoVisibleProfile)

	_, err = Resolve(nil, nil, ScopeNearby)
	assert.ErrorIs(t, err, domain.ErrNoVisibleProfile)
}

func TestResolve_ScopeTiers(t *testing.T) {
	nearbyOnly := []*domain.Profile{
		prof(domain.VariantProfessional, domain.VisibilityNearby),
	}

	// "nearby" visibility never surfaces through a cold direct lookup.
	_, err := Resolve(nearbyOnly, nil, ScopeDirect)
	assert.ErrorIs(t, err, domain.ErrNoVisibleProfile)

	got, err := Resolve(nearbyOnly, nil, ScopeNearby)
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityNearby, got.Visibility)

	// The owner sees private records.
	private := []*domain.Profile{
		prof(domain.VariantPersonal, domain.VisibilityPrivate),
	}
	got, err = Resolve(private, nil, ScopeOwner)
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPrivate, got.Visibility)
}
