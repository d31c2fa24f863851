package service

import (
	"context"
	"log"
	"strings"

	"stagevault/internal/auth"
	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/policy"
	"stagevault/internal/repository"
)

// IdentityService resolves a submitted identifier to a session and owns the
// durable session lifecycle.
type IdentityService interface {
	Login(ctx context.Context, rawInput, secret string) (*model.Session, string, error)
	Restore(ctx context.Context, userID string) (*model.Session, error)
	Logout(ctx context.Context, userID string) error
}

type identityService struct {
	rules      *policy.Rules
	jwtService *auth.JWTService
	sessions   auth.SessionStoreInterface
	audit      repository.AuditRepository
}

// NewIdentityService creates a new identity service.
func NewIdentityService(rules *policy.Rules, jwtService *auth.JWTService, sessions auth.SessionStoreInterface, audit repository.AuditRepository) IdentityService {
	return &identityService{
		rules:      rules,
		jwtService: jwtService,
		sessions:   sessions,
		audit:      audit,
	}
}

// Login evaluates the identifier against the rule sets and, on success,
// persists the session and signs an access token for it.
//
// The literal identifier "guest" always succeeds with the guest role,
// bypassing the approved list. Password-gated identifiers must supply the
// exact shared secret; a mismatch creates no session and writes nothing.
func (s *identityService) Login(ctx context.Context, rawInput, secret string) (*model.Session, string, error) {
	clean := strings.ToLower(strings.TrimSpace(rawInput))
	if clean == "" {
		return nil, "", errors.ErrUnknownIdentity
	}

	session, err := s.evaluate(clean, secret)
	if err != nil {
		s.record(ctx, clean, model.AuditLoginDenied, err.Error())
		return nil, "", err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", err
	}

	token, err := s.jwtService.GenerateToken(session)
	if err != nil {
		return nil, "", err
	}

	s.record(ctx, session.UserID, model.AuditLogin, string(session.Role))
	return session, token, nil
}

func (s *identityService) evaluate(clean, secret string) (*model.Session, error) {
	if clean == "guest" {
		return &model.Session{UserID: "guest", Role: model.RoleGuest}, nil
	}

	if required, gated := s.rules.RequiredSecret(clean); gated {
		if secret != required {
			return nil, errors.ErrInvalidCredential
		}
	}

	if !s.rules.IsApproved(clean) {
		return nil, errors.ErrUnknownIdentity
	}

	return &model.Session{UserID: clean, Role: model.RoleFull}, nil
}

// Restore reads the persisted session. Missing or malformed entries come back
// as (nil, nil); the caller proceeds to the unauthenticated state.
func (s *identityService) Restore(ctx context.Context, userID string) (*model.Session, error) {
	return s.sessions.Load(ctx, userID)
}

// Logout removes the persisted session.
func (s *identityService) Logout(ctx context.Context, userID string) error {
	s.record(ctx, userID, model.AuditLogout, "")
	return s.sessions.Delete(ctx, userID)
}

// record appends an audit event; the trail is best-effort and never fails the
// request.
func (s *identityService) record(ctx context.Context, userID, action, detail string) {
	if s.audit == nil {
		return
	}
	if err := s.audit.Record(ctx, userID, action, detail); err != nil {
		log.Printf("warning: audit record failed: %v", err)
	}
}
