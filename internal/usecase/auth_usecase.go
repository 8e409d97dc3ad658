// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pssports/internal/domain/entity"
)

// --- Input DTOs ---

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// --- Output DTOs ---

// LoginOutput returns the session credentials after a successful login.
type LoginOutput struct {
	User         *entity.User `json:"user"`
	AccessToken  string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
	ExpiresIn    int64        `json:"expiresIn"`
}

// RefreshOutput returns the rotated session credentials.
type RefreshOutput struct {
	AccessToken  string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthUsecase defines the session lifecycle: issuing, rotating and revoking
// refresh-token sessions. Access-token verification lives in the HTTP
// middleware; it needs no state beyond the signing key.
type AuthUsecase interface {
	// Login verifies credentials and opens a new session. Each successful
	// call inserts exactly one session row; existing rows are never touched.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a live refresh token for fresh credentials, rotating
	// the session row in place. The presented value is invalid afterwards.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Logout revokes the session carrying the given refresh token. Unknown
	// tokens are not an error; logout is idempotent.
	Logout(ctx context.Context, refreshToken string) error

	// CleanupExpiredSessions removes every session row past its expiry.
	// Refresh already deletes expired rows it touches; this sweeps the rows
	// nobody presents again.
	CleanupExpiredSessions(ctx context.Context) error
}
