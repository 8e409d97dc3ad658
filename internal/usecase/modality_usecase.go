package usecase

import (
	"context"

	"pssports/internal/domain/entity"
)

// ModalityInput defines the data for creating or updating a sport modality.
type ModalityInput struct {
	Name string `json:"name" validate:"required,max=45"`
}

// ModalityUsecase defines sport-modality management operations.
type ModalityUsecase interface {
	Create(ctx context.Context, input ModalityInput) (*entity.Modality, error)
	GetByID(ctx context.Context, id int64) (*entity.Modality, error)
	List(ctx context.Context) ([]*entity.Modality, error)
	Update(ctx context.Context, id int64, input ModalityInput) (*entity.Modality, error)
	Delete(ctx context.Context, id int64) error
}
