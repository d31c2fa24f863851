package model

// Role is the access level bound to a session.
type Role string

const (
	// RoleGuest grants venue-only access.
	RoleGuest Role = "guest"
	// RoleFull grants access to all non-restricted pages.
	RoleFull Role = "full"
)

// Session represents the authenticated identity bound to the current client.
type Session struct {
	UserID string `json:"id"`
	Role   Role   `json:"role"`
}

// IsGuest reports whether the session carries the guest role.
func (s *Session) IsGuest() bool {
	return s != nil && s.Role == RoleGuest
}
