package models

import "time"

// Session backs one issued token. ID is the token's jti.
type Session struct {
	ID        string
	UserID    string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Active reports whether the session may still authorize calls at now.
func (s *Session) Active(now time.Time) bool {
	return s.RevokedAt == nil && now.Before(s.ExpiresAt)
}

// Identity is the caller resolved from a verified token.
type Identity struct {
	UserID    string
	Username  string
	SessionID string
}
