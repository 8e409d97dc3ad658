package usecase

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryInput defines the data for creating or updating an age category.
type CategoryInput struct {
	Name   string `json:"name" validate:"required,max=100"`
	MinAge int    `json:"min_age" validate:"min=0"`
	MaxAge int    `json:"max_age" validate:"gtefield=MinAge"`
}

// CategoryUsecase defines age-category management operations.
type CategoryUsecase interface {
	Create(ctx context.Context, input CategoryInput) (*entity.Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, id uuid.UUID, input CategoryInput) (*entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
