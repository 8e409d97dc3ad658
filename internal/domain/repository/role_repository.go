package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for role persistence.
var (
	// ErrRoleNotFound is returned when a role is not found.
	ErrRoleNotFound = errors.New("role not found")
	// ErrRoleAssignmentNotFound is returned when a user-role link is not found.
	ErrRoleAssignmentNotFound = errors.New("role assignment not found")
)

// RoleRepository defines persistence for roles and user-role assignments.
type RoleRepository interface {
	Create(ctx context.Context, role *entity.Role) error
	FindByID(ctx context.Context, id int64) (*entity.Role, error)
	List(ctx context.Context) ([]*entity.Role, error)
	Update(ctx context.Context, role *entity.Role) error
	Delete(ctx context.Context, id int64) error

	Assign(ctx context.Context, link entity.UserRole) error
	Unassign(ctx context.Context, link entity.UserRole) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error)
}
