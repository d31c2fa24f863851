package model

import (
	"time"

	"github.com/google/uuid"
)

// Audit actions recorded by the identity and navigation layers.
const (
	AuditLogin       = "login"
	AuditLoginDenied = "login_denied"
	AuditLogout      = "logout"
	AuditNavDenied   = "navigation_denied"
)

// AuditEvent is one entry in the login/navigation audit trail. Denied
// navigation is recorded as a normal outcome, not a failure.
type AuditEvent struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:64;index"`
	Action    string    `json:"action" gorm:"size:32;not null"`
	Detail    string    `json:"detail,omitempty" gorm:"size:255"`
	CreatedAt time.Time `json:"created_at"`
}
