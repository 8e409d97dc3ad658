package repository

import (
	"context"
	"time"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no session row matches a lookup,
// a rotation precondition, or a deletion. A rotated-away token and a token
// that never existed are indistinguishable through this error.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines persistence for refresh-token sessions.
// One row per live session; terminal states are represented by row absence.
type RefreshTokenRepository interface {
	// Create persists a new session row. Called once per successful login.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a session row by the SHA-256 hash of the presented
	// token. Expiry is NOT checked here; callers decide what an expired row
	// means and whether to clean it up.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// Rotate atomically replaces the token hash and expiry of the row
	// identified by id, but only while the row still carries oldHash
	// (conditional update, affected-row count checked). Losing a concurrent
	// rotation race yields ErrRefreshTokenNotFound.
	Rotate(ctx context.Context, id uuid.UUID, oldHash, newHash string, expiresAt time.Time) error

	// DeleteByID removes a session row.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// DeleteByHash removes the session row carrying the given hash.
	// Returns ErrRefreshTokenNotFound when nothing matched.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteByUserID removes every session of a user (logout everywhere).
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpired removes all sessions past their expiry. Periodic cleanup.
	DeleteExpired(ctx context.Context) error
}
