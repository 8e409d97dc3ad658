package usecase

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// TrainerInput defines the data for creating or updating a coaching profile.
type TrainerInput struct {
	LicenseLevel string    `json:"license_level" validate:"max=50"`
	Specialty    string    `json:"specialty" validate:"max=100"`
	UserID       uuid.UUID `json:"user_id" validate:"required"`
}

// TrainerUsecase defines coaching-profile management operations.
type TrainerUsecase interface {
	Create(ctx context.Context, input TrainerInput) (*entity.Trainer, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Trainer, error)
	List(ctx context.Context) ([]*entity.Trainer, error)
	Update(ctx context.Context, id uuid.UUID, input TrainerInput) (*entity.Trainer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
