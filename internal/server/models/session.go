package models

import "time"

// Session binds a bearer token to its owner. A zero ExpiresAt means the
// session never expires.
type Session struct {
	Token     string
	UserName  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
