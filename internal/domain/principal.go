package domain

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the resolved identity of the current caller. It lives for one
// request and is never persisted by this layer.
type Principal struct {
	UserID         uuid.UUID
	OrganizationID uuid.UUID
}

// Session is a stored dashboard session. The raw token never touches the
// database; only its SHA-256 hash is stored and looked up.
type Session struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	OrganizationID uuid.UUID
	TokenHash      string
	ExpiresAt      time.Time
	CreatedAt      time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// Principal returns the per-request identity carried by this session.
func (s *Session) Principal() Principal {
	return Principal{UserID: s.UserID, OrganizationID: s.OrganizationID}
}
