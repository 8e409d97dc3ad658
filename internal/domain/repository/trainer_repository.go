package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTrainerNotFound is returned when a trainer is not found.
var ErrTrainerNotFound = errors.New("trainer not found")

// TrainerRepository defines persistence for coaching profiles.
type TrainerRepository interface {
	Create(ctx context.Context, trainer *entity.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Trainer, error)
	List(ctx context.Context) ([]*entity.Trainer, error)
	Update(ctx context.Context, trainer *entity.Trainer) error
	Delete(ctx context.Context, id uuid.UUID) error
}
