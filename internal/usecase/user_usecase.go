package usecase

import (
	"context"
	"time"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUserInput defines the data required to register a new user account.
type CreateUserInput struct {
	Name      string    `json:"name" validate:"required,max=100"`
	BirthDate time.Time `json:"birth_date" validate:"required"`
	RG        string    `json:"rg"`
	CPF       string    `json:"cpf" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password" validate:"required,min=8"`
	Status    string    `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

// UpdateUserInput defines the mutable fields of a user account. Nil pointers
// leave the current value untouched.
type UpdateUserInput struct {
	Name      *string    `json:"name" validate:"omitempty,max=100"`
	BirthDate *time.Time `json:"birth_date"`
	RG        *string    `json:"rg"`
	CPF       *string    `json:"cpf"`
	Email     *string    `json:"email" validate:"omitempty,email"`
	Password  *string    `json:"password" validate:"omitempty,min=8"`
	Status    *string    `json:"status" validate:"omitempty,oneof=Ativo Inativo"`
}

// UserUsecase defines account management operations.
type UserUsecase interface {
	Create(ctx context.Context, input CreateUserInput) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
