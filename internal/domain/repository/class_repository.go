package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrClassNotFound is returned when a class is not found.
var ErrClassNotFound = errors.New("class not found")

// ClassRepository defines persistence for training classes.
type ClassRepository interface {
	Create(ctx context.Context, class *entity.Class) error
	FindByID(ctx context.Context, id int64) (*entity.Class, error)
	List(ctx context.Context) ([]*entity.Class, error)
	Update(ctx context.Context, class *entity.Class) error
	Delete(ctx context.Context, id int64) error
}
