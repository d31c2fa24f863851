package auth

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"stagevault/internal/cache"
	"stagevault/internal/model"
)

// sessionKeyPrefix is the fixed durable namespace for persisted sessions.
const sessionKeyPrefix = "stagevault:session:v1:"

// SessionStoreInterface defines durable session storage operations.
type SessionStoreInterface interface {
	Save(ctx context.Context, session *model.Session) error
	Load(ctx context.Context, userID string) (*model.Session, error)
	Delete(ctx context.Context, userID string) error
}

// SessionBackend is the key-value surface the store persists through.
// *cache.Client satisfies it.
type SessionBackend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// SessionStore persists the active session in Redis. A missing or malformed
// entry is reported as no session, never as an error: startup must fall back
// to the unauthenticated state rather than fail.
type SessionStore struct {
	backend SessionBackend
}

var (
	_ SessionStoreInterface = (*SessionStore)(nil)
	_ SessionBackend        = (*cache.Client)(nil)
)

// NewSessionStore creates a session store over the Redis cache.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return NewSessionStoreWithBackend(cache)
}

// NewSessionStoreWithBackend creates a session store over any backend.
func NewSessionStoreWithBackend(backend SessionBackend) *SessionStore {
	return &SessionStore{backend: backend}
}

// Save writes the session under the fixed namespace. Sessions have no TTL;
// they live until logout.
func (s *SessionStore) Save(ctx context.Context, session *model.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, sessionKeyPrefix+session.UserID, payload, 0)
}

// Load restores a persisted session. Returns (nil, nil) when there is none.
func (s *SessionStore) Load(ctx context.Context, userID string) (*model.Session, error) {
	data, err := s.backend.Get(ctx, sessionKeyPrefix+userID)
	if err != nil || data == nil {
		return nil, nil
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		log.Printf("warning: malformed session entry for %s, treating as absent: %v", userID, err)
		return nil, nil
	}
	if session.UserID == "" || session.Role == "" {
		log.Printf("warning: incomplete session entry for %s, treating as absent", userID)
		return nil, nil
	}
	return &session, nil
}

// Delete removes the persisted session.
func (s *SessionStore) Delete(ctx context.Context, userID string) error {
	return s.backend.Delete(ctx, sessionKeyPrefix+userID)
}
