package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrPlayerNotFound is returned when a player is not found.
var ErrPlayerNotFound = errors.New("player not found")

// PlayerRepository defines persistence for athletic profiles.
type PlayerRepository interface {
	Create(ctx context.Context, player *entity.Player) error
	FindByID(ctx context.Context, id int64) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
	Update(ctx context.Context, player *entity.Player) error
	Delete(ctx context.Context, id int64) error
}
