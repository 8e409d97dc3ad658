package usecase

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// GuardianInput defines the data for creating or updating a guardian profile.
type GuardianInput struct {
	Kinship string    `json:"kinship" validate:"max=50"`
	UserID  uuid.UUID `json:"user_id" validate:"required"`
}

// GuardianUsecase defines guardian-profile management plus the links between
// guardians and the players they answer for.
type GuardianUsecase interface {
	Create(ctx context.Context, input GuardianInput) (*entity.Guardian, error)
	GetByID(ctx context.Context, id int64) (*entity.Guardian, error)
	List(ctx context.Context) ([]*entity.Guardian, error)
	Update(ctx context.Context, id int64, input GuardianInput) (*entity.Guardian, error)
	Delete(ctx context.Context, id int64) error

	LinkPlayer(ctx context.Context, guardianID, playerID int64) error
	UnlinkPlayer(ctx context.Context, guardianID, playerID int64) error
	ListPlayers(ctx context.Context, guardianID int64) ([]*entity.Player, error)
}
