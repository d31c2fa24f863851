package policy

import (
	"stagevault/internal/config"
	"stagevault/internal/model"
	"stagevault/internal/pages"
)

// Rules holds the static access sets, built once from configuration and
// consulted read-only afterwards.
type Rules struct {
	approved      map[string]struct{}
	restricted    map[string]struct{}
	hoursAdmin    map[string]struct{}
	hoursLimited  map[string]struct{}
	passwordGated map[string]string
}

// NewRules builds the rule sets from access configuration.
func NewRules(access config.Access) *Rules {
	return &Rules{
		approved:      toSet(access.Approved),
		restricted:    toSet(access.Restricted),
		hoursAdmin:    toSet(access.HoursAdmin),
		hoursLimited:  toSet(access.HoursLimited),
		passwordGated: access.PasswordGated,
	}
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// IsApproved reports whether the identifier may log in with full access.
func (r *Rules) IsApproved(userID string) bool {
	_, ok := r.approved[userID]
	return ok
}

// RequiredSecret returns the shared secret for a password-gated identifier,
// or false if the identifier is not gated.
func (r *Rules) RequiredSecret(userID string) (string, bool) {
	secret, ok := r.passwordGated[userID]
	return secret, ok
}

// CanAccess decides whether the session may view the given canonical page.
// It is a pure function of the rule sets and the page's capability; denial is
// a normal outcome for the caller to render, never an error.
func (r *Rules) CanAccess(session *model.Session, page model.PageID) bool {
	if session == nil {
		return false
	}

	capability, ok := pages.Lookup(page)
	if !ok {
		return false
	}

	if session.IsGuest() {
		return capability == model.CapabilityGuestAllowed
	}

	switch capability {
	case model.CapabilityRestricted:
		_, ok := r.restricted[session.UserID]
		return ok
	case model.CapabilityHoursLimited:
		if _, ok := r.hoursAdmin[session.UserID]; ok {
			return true
		}
		_, ok := r.hoursLimited[session.UserID]
		return ok
	case model.CapabilityHoursAdmin:
		_, ok := r.hoursAdmin[session.UserID]
		return ok
	default:
		return true
	}
}
