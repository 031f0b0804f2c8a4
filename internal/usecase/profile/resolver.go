package profile

import (
	"github.com/linkme-app/linkme-backend/internal/domain"
)

// ResolveScope is the context a profile is being looked up in. The same
// record can be visible in one scope and hidden in another: "nearby"
// visibility only surfaces through the radius search or an established
// connection, never through a cold direct lookup.
type ResolveScope string

const (
	ScopeOwner  ResolveScope = "owner"
	ScopeNearby ResolveScope = "nearby"
	ScopeDirect ResolveScope = "direct"
)

// VisibleTiers returns the visibility tiers a scope may surface.
func (s ResolveScope) VisibleTiers() []domain.Visibility {
	switch s {
	case ScopeOwner:
		return []domain.Visibility{domain.VisibilityPublic, domain.VisibilityNearby, domain.VisibilityPrivate}
	case ScopeNearby:
		return []domain.Visibility{domain.VisibilityPublic, domain.VisibilityNearby}
	default:
		return []domain.Visibility{domain.VisibilityPublic}
	}
}

// Resolve selects the single profile to expose for a user out of their
// candidate records. Policy, in order: the requested variant when present
// and visible; otherwise professional over personal; otherwise the one
// visible variant. No visible variant yields domain.ErrNoVisibleProfile,
// which is a filtering outcome: callers drop the user, they do not fail.
func Resolve(profiles []*domain.Profile, requested *domain.ProfileVariant, scope ResolveScope) (*domain.Profile, error) {
	allowed := make(map[domain.Visibility]bool)
	for _, v := range scope.VisibleTiers() {
		allowed[v] = true
	}

	var visible []*domain.Profile
	for _, p := range profiles {
		if allowed[p.Visibility] {
			visible = append(visible, p)
		}
	}

	if requested != nil {
		for _, p := range visible {
			if p.Variant == *requested {
				return p, nil
			}
		}
		return nil, domain.ErrNoVisibleProfile
	}

	// Deterministic tie-break: professional wins over personal.
	for _, variant := range []domain.ProfileVariant{domain.VariantProfessional, domain.VariantPersonal} {
		for _, p := range visible {
			if p.Variant == variant {
				return p, nil
			}
		}
	}
	return nil, domain.ErrNoVisibleProfile
}
