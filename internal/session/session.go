// Package session implements the server-side session store backing the
// dual-role authentication gate. Session state lives in Redis keyed by an
// opaque token; the browser cookie carries the token wrapped in a signed
// JWT so a tampered cookie fails before the store is consulted.
package session

import (
	"time"

	"github.com/zaalasociety/academy-api/internal/models"
)

// Session is the server-side record for one authenticated principal.
type Session struct {
	Token     string           `json:"token"`
	Principal models.Principal `json:"principal"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
