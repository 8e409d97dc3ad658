// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrEmailTaken is returned when the email unique constraint is violated.
	ErrEmailTaken = errors.New("email already registered")
	// ErrCPFTaken is returned when the cpf unique constraint is violated.
	ErrCPFTaken = errors.New("cpf already registered")
)

// UserRepository defines persistence operations for user accounts.
// FindByEmail is the only lookup whose projection includes the password hash;
// it exists for the login flow.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a user by email including the stored password hash.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	List(ctx context.Context) ([]*entity.User, error)

	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Refresh tokens cascade at the schema level.
	Delete(ctx context.Context, id uuid.UUID) error
}
