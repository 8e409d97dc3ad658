package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrModalityNotFound is returned when a modality is not found.
var ErrModalityNotFound = errors.New("modality not found")

// ModalityRepository defines persistence for sport modalities.
type ModalityRepository interface {
	Create(ctx context.Context, modality *entity.Modality) error
	FindByID(ctx context.Context, id int64) (*entity.Modality, error)
	List(ctx context.Context) ([]*entity.Modality, error)
	Update(ctx context.Context, modality *entity.Modality) error
	Delete(ctx context.Context, id int64) error
}
