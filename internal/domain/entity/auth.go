// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, authorized user session. It is
// exchanged for a new access token without re-presenting credentials and is
// rotated in place on every successful use.
type RefreshToken struct {
	ID        uuid.UUID // The unique ID for this session row; stable across rotations.
	UserID    uuid.UUID // Links this session to the User it belongs to.
	TokenHash string    // SHA-256 hash of the raw opaque token; the raw value is never stored.
	ExpiresAt time.Time // The moment this refresh token stops validating.
	CreatedAt time.Time // When the session was created (the login moment).
	UpdatedAt time.Time // Bumped on rotation.
}

// Expired reports whether the session is past its expiry at the given instant.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
