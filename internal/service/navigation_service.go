package service

import (
	"context"
	"log"
	"sync"

	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/pages"
	"stagevault/internal/policy"
	"stagevault/internal/repository"
)

// Denial placeholder texts, rendered by the client inside the page frame.
const (
	deniedUnknownPage    = "This page does not exist."
	deniedGuest          = "Guests can only view the venues page."
	deniedPurchaseOrders = "You do not have access to the Purchase Orders page."
	deniedHours          = "Nosey, Nosey! You do not have access to the Hours page."
	deniedGeneric        = "You do not have access to this page."
)

// navState is the per-user navigation state. ReturnPage is a single slot, not
// a stack: at most one overlay is ever open.
type navState struct {
	current    model.PageID
	overlay    *model.Overlay
	returnPage model.PageID
}

// NavigationService owns current-page and overlay state and turns navigation
// requests into render decisions. Login and logout are the only events that
// change the top-level authentication state; page navigation never does.
type NavigationService interface {
	Navigate(ctx context.Context, session *model.Session, requested model.PageID) model.RenderDecision
	OpenOverlay(ctx context.Context, session *model.Session, overlay *model.Overlay) model.RenderDecision
	CloseOverlay(ctx context.Context, session *model.Session) (model.RenderDecision, error)
	Reset(session *model.Session)
	Clear(userID string)
}

type navigationService struct {
	rules *policy.Rules
	audit repository.AuditRepository

	mu     sync.Mutex
	states map[string]*navState
}

// NewNavigationService creates a new navigation service.
func NewNavigationService(rules *policy.Rules, audit repository.AuditRepository) NavigationService {
	return &navigationService{
		rules:  rules,
		audit:  audit,
		states: make(map[string]*navState),
	}
}

// Navigate resolves the requested page, evaluates policy and either moves the
// current-page state to the canonical page or produces a denial placeholder.
// Denial is a first-class outcome; it never aborts navigation.
func (s *navigationService) Navigate(ctx context.Context, session *model.Session, requested model.PageID) model.RenderDecision {
	canonical := pages.Resolve(requested)

	capability, known := pages.Lookup(canonical)
	if !known {
		return model.ShowDenied(deniedUnknownPage)
	}

	if !s.rules.CanAccess(session, canonical) {
		s.recordDenial(ctx, session, canonical)
		return model.ShowDenied(denialReason(session, capability))
	}

	state := s.state(session.UserID)
	s.mu.Lock()
	state.current = canonical
	state.overlay = nil
	s.mu.Unlock()

	return model.ShowPage(canonical)
}

// OpenOverlay opens a document or gallery overlay on top of the current page.
// The page active right before the overlay opened is remembered so closing
// restores it exactly.
func (s *navigationService) OpenOverlay(ctx context.Context, session *model.Session, overlay *model.Overlay) model.RenderDecision {
	overlayPage := model.PageID(overlay.Kind)
	if !s.rules.CanAccess(session, overlayPage) {
		s.recordDenial(ctx, session, overlayPage)
		return model.ShowDenied(denialReason(session, model.CapabilityGuestAllowed))
	}

	state := s.state(session.UserID)
	s.mu.Lock()
	if state.overlay == nil {
		state.returnPage = state.current
	}
	state.overlay = overlay
	s.mu.Unlock()

	return model.ShowOverlay(overlay)
}

// CloseOverlay closes the active overlay and restores the page that was
// active immediately before it opened.
func (s *navigationService) CloseOverlay(ctx context.Context, session *model.Session) (model.RenderDecision, error) {
	state := s.state(session.UserID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if state.overlay == nil {
		return model.RenderDecision{}, errors.ErrNoOverlay
	}
	state.overlay = nil
	state.current = state.returnPage
	return model.ShowPage(state.returnPage), nil
}

// Reset places a fresh session on its landing page: venues for guests, home
// for full users.
func (s *navigationService) Reset(session *model.Session) {
	landing := pages.Home
	if session.IsGuest() {
		landing = pages.Venues
	}

	s.mu.Lock()
	s.states[session.UserID] = &navState{current: landing, returnPage: landing}
	s.mu.Unlock()
}

// Clear drops the navigation state on logout.
func (s *navigationService) Clear(userID string) {
	s.mu.Lock()
	delete(s.states, userID)
	s.mu.Unlock()
}

func (s *navigationService) state(userID string) *navState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok {
		state = &navState{current: pages.Home, returnPage: pages.Home}
		s.states[userID] = state
	}
	return state
}

// recordDenial logs the denial on the audit trail as a normal outcome.
func (s *navigationService) recordDenial(ctx context.Context, session *model.Session, page model.PageID) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, session.UserID, model.AuditNavDenied, string(page)); err != nil {
		log.Printf("warning: audit record failed: %v", err)
	}
}

func denialReason(session *model.Session, capability model.Capability) string {
	if session.IsGuest() {
		return deniedGuest
	}
	switch capability {
	case model.CapabilityRestricted:
		return deniedPurchaseOrders
	case model.CapabilityHoursLimited, model.CapabilityHoursAdmin:
		return deniedHours
	default:
		return deniedGeneric
	}
}
