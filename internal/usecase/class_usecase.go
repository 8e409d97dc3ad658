package usecase

import (
	"context"
	"time"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// ClassInput defines the data for creating or updating a training class.
// ModalityID and CategoryID are optional references.
type ClassInput struct {
	Name       string     `json:"name" validate:"required,max=100"`
	Weekdays   string     `json:"weekdays" validate:"max=50"`
	Schedule   time.Time  `json:"schedule"`
	Status     string     `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
	ModalityID *int64     `json:"modality_id"`
	CategoryID *uuid.UUID `json:"category_id"`
	TrainerID  uuid.UUID  `json:"trainer_id" validate:"required"`
}

// ClassUsecase defines training-class management operations.
type ClassUsecase interface {
	Create(ctx context.Context, input ClassInput) (*entity.Class, error)
	GetByID(ctx context.Context, id int64) (*entity.Class, error)
	List(ctx context.Context) ([]*entity.Class, error)
	Update(ctx context.Context, id int64, input ClassInput) (*entity.Class, error)
	Delete(ctx context.Context, id int64) error
}
