package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the payload of an access token: the user identity plus the
// standard registered claims (issue and expiry times).
type Claims struct {
	UserID uuid.UUID
	Email  string
	jwt.RegisteredClaims
}

// TokenService mints and verifies access tokens and produces the opaque
// refresh-token values whose hashes the session store keeps.
type TokenService interface {
	// GenerateAccessToken creates a signed, self-contained access token for
	// the given user. Validity is determined entirely by signature and expiry.
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)

	// ValidateAccessToken checks signature and expiry and returns the claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// NewRefreshToken returns a fresh opaque token value with at least 128
	// bits of entropy. The raw value goes to the client only.
	NewRefreshToken() (string, error)

	// HashToken derives the storable digest of a raw token value.
	HashToken(raw string) string

	// AccessTokenTTL returns the access-token lifetime.
	AccessTokenTTL() time.Duration
}
