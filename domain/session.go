package domain

import "time"

// SessionRole identifies which surface a session is allowed to see.
type SessionRole string

const (
	RoleAdmin    SessionRole = "admin"
	RoleEmployee SessionRole = "employee"
)

// Session represents a cached login session stored in Redis. Admin sessions
// carry no employee binding; employee sessions are tied to one record.
type Session struct {
	ID         string      `json:"id"`
	Role       SessionRole `json:"role"`
	EmployeeID string      `json:"employee_id,omitempty"`
	Email      string      `json:"email,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	ExpiresAt  time.Time   `json:"expires_at"`
}

func (s *Session) IsAdmin() bool {
	return s != nil && s.Role == RoleAdmin
}

func (s *Session) IsExpired(reference time.Time) bool {
	if s == nil {
		return true
	}
	if reference.IsZero() {
		reference = time.Now()
	}
	return !s.ExpiresAt.After(reference)
}
