package usecase

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// RoleInput defines the data for creating or updating a role.
type RoleInput struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=255"`
}

// RoleUsecase defines role management and user-role assignment operations.
type RoleUsecase interface {
	Create(ctx context.Context, input RoleInput) (*entity.Role, error)
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, id int64, input RoleInput) (*entity.Role, error)
	Delete(ctx context.Context, id int64) error

	Assign(ctx context.Context, userID uuid.UUID, roleID int64) error
	Unassign(ctx context.Context, userID uuid.UUID, roleID int64) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error)
}
