package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSchoolNotFound is returned when a school is not found.
var ErrSchoolNotFound = errors.New("school not found")

// SchoolRepository defines persistence for training sites.
type SchoolRepository interface {
	Create(ctx context.Context, school *entity.School) error
	FindByID(ctx context.Context, id int64) (*entity.School, error)
	List(ctx context.Context) ([]*entity.School, error)
	Update(ctx context.Context, school *entity.School) error
	Delete(ctx context.Context, id int64) error
}
