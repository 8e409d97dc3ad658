package usecase

import (
	"context"

	"pssports/internal/domain/entity"
)

// SchoolInput defines the data for creating or updating a training site.
type SchoolInput struct {
	Name    string `json:"name" validate:"required,max=100"`
	Address string `json:"address" validate:"max=255"`
	Phone   string `json:"phone" validate:"max=20"`
}

// SchoolUsecase defines training-site management operations.
type SchoolUsecase interface {
	Create(ctx context.Context, input SchoolInput) (*entity.School, error)
	GetByID(ctx context.Context, id int64) (*entity.School, error)
	List(ctx context.Context) ([]*entity.School, error)
	Update(ctx context.Context, id int64, input SchoolInput) (*entity.School, error)
	Delete(ctx context.Context, id int64) error
}
