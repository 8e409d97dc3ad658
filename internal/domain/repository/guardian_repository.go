package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for guardian persistence.
var (
	// ErrGuardianNotFound is returned when a guardian is not found.
	ErrGuardianNotFound = errors.New("guardian not found")
	// ErrPlayerGuardianNotFound is returned when a player-guardian link is not found.
	ErrPlayerGuardianNotFound = errors.New("player-guardian link not found")
)

// GuardianRepository defines persistence for guardian profiles and their
// links to players.
type GuardianRepository interface {
	Create(ctx context.Context, guardian *entity.Guardian) error
	FindByID(ctx context.Context, id int64) (*entity.Guardian, error)
	List(ctx context.Context) ([]*entity.Guardian, error)
	Update(ctx context.Context, guardian *entity.Guardian) error
	Delete(ctx context.Context, id int64) error

	LinkPlayer(ctx context.Context, link entity.PlayerGuardian) error
	UnlinkPlayer(ctx context.Context, link entity.PlayerGuardian) error
	ListPlayers(ctx context.Context, guardianID int64) ([]*entity.Player, error)
}
