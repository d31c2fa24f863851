package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"stagevault/internal/auth"
	"stagevault/internal/config"
	"stagevault/internal/errors"
	"stagevault/internal/model"
	"stagevault/internal/policy"
)

// MockSessionStore is a mock implementation of auth.SessionStoreInterface.
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Save(ctx context.Context, session *model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionStore) Load(ctx context.Context, userID string) (*model.Session, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Session), args.Error(1)
}

func (m *MockSessionStore) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockAuditRepository is a mock implementation of repository.AuditRepository.
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Record(ctx context.Context, userID, action, detail string) error {
	args := m.Called(ctx, userID, action, detail)
	return args.Error(0)
}

func (m *MockAuditRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.AuditEvent, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEvent), args.Error(1)
}

func (m *MockAuditRepository) ListRecent(ctx context.Context, limit int) ([]model.AuditEvent, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AuditEvent), args.Error(1)
}

func testIdentityRules() *policy.Rules {
	return policy.NewRules(config.Access{
		Approved:      []string{"cp2532", "gr73", "js9640"},
		PasswordGated: map[string]string{"js9640": "sekrit"},
	})
}

func TestIdentityService_Login(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		secret        string
		setupMock     func(*MockSessionStore, *MockAuditRepository)
		expectedError error
		expectedRole  model.Role
		expectedID    string
	}{
		{
			name:  "guest succeeds regardless of casing and whitespace",
			input: "  GuEsT  ",
			setupMock: func(store *MockSessionStore, audit *MockAuditRepository) {
				store.On("Save", mock.Anything, &model.Session{UserID: "guest", Role: model.RoleGuest}).Return(nil)
				audit.On("Record", mock.Anything, "guest", model.AuditLogin, "guest").Return(nil)
			},
			expectedRole: model.RoleGuest,
			expectedID:   "guest",
		},
		{
			name:  "approved identifier gets full role",
			input: " CP2532 ",
			setupMock: func(store *MockSessionStore, audit *MockAuditRepository) {
				store.On("Save", mock.Anything, &model.Session{UserID: "cp2532", Role: model.RoleFull}).Return(nil)
				audit.On("Record", mock.Anything, "cp2532", model.AuditLogin, "full").Return(nil)
			},
			expectedRole: model.RoleFull,
			expectedID:   "cp2532",
		},
		{
			name:   "password-gated identifier with correct secret",
			input:  "js9640",
			secret: "sekrit",
			setupMock: func(store *MockSessionStore, audit *MockAuditRepository) {
				store.On("Save", mock.Anything, &model.Session{UserID: "js9640", Role: model.RoleFull}).Return(nil)
				audit.On("Record", mock.Anything, "js9640", model.AuditLogin, "full").Return(nil)
			},
			expectedRole: model.RoleFull,
			expectedID:   "js9640",
		},
		{
			name:   "wrong secret creates no session and writes nothing",
			input:  "js9640",
			secret: "wrong",
			setupMock: func(store *MockSessionStore, audit *MockAuditRepository) {
				audit.On("Record", mock.Anything, "js9640", model.AuditLoginDenied, mock.Anything).Return(nil)
			},
			expectedError: errors.ErrInvalidCredential,
		},
		{
			name:  "unknown identifier rejected",
			input: "intruder",
			setupMock: func(store *MockSessionStore, audit *MockAuditRepository) {
				audit.On("Record", mock.Anything, "intruder", model.AuditLoginDenied, mock.Anything).Return(nil)
			},
			expectedError: errors.ErrUnknownIdentity,
		},
		{
			name:          "blank input rejected",
			input:         "   ",
			setupMock:     func(store *MockSessionStore, audit *MockAuditRepository) {},
			expectedError: errors.ErrUnknownIdentity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockSessionStore)
			audit := new(MockAuditRepository)
			tt.setupMock(store, audit)

			svc := NewIdentityService(testIdentityRules(), auth.NewJWTService("test-secret"), store, audit)
			session, token, err := svc.Login(context.Background(), tt.input, tt.secret)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
				assert.Empty(t, token)
				store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, tt.expectedID, session.UserID)
				assert.Equal(t, tt.expectedRole, session.Role)
			}

			store.AssertExpectations(t)
			audit.AssertExpectations(t)
		})
	}
}

func TestIdentityService_LoginTokenRoundTrip(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Save", mock.Anything, mock.Anything).Return(nil)
	audit := new(MockAuditRepository)
	audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	jwtService := auth.NewJWTService("test-secret")
	svc := NewIdentityService(testIdentityRules(), jwtService, store, audit)

	session, token, err := svc.Login(context.Background(), "gr73", "")
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, session, claims.Session())
}

func TestIdentityService_Restore(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Load", mock.Anything, "cp2532").Return(&model.Session{UserID: "cp2532", Role: model.RoleFull}, nil)
	store.On("Load", mock.Anything, "nobody").Return(nil, nil)

	svc := NewIdentityService(testIdentityRules(), auth.NewJWTService("test-secret"), store, nil)

	session, err := svc.Restore(context.Background(), "cp2532")
	assert.NoError(t, err)
	assert.Equal(t, "cp2532", session.UserID)

	// Missing entries come back as no session, not as an error.
	session, err = svc.Restore(context.Background(), "nobody")
	assert.NoError(t, err)
	assert.Nil(t, session)
}

func TestIdentityService_Logout(t *testing.T) {
	store := new(MockSessionStore)
	store.On("Delete", mock.Anything, "cp2532").Return(nil)
	audit := new(MockAuditRepository)
	audit.On("Record", mock.Anything, "cp2532", model.AuditLogout, "").Return(nil)

	svc := NewIdentityService(testIdentityRules(), auth.NewJWTService("test-secret"), store, audit)
	assert.NoError(t, svc.Logout(context.Background(), "cp2532"))

	store.AssertExpectations(t)
	audit.AssertExpectations(t)
}
