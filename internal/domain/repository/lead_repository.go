package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrLeadNotFound is returned when a lead is not found.
var ErrLeadNotFound = errors.New("lead not found")

// LeadRepository defines persistence for prospects.
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	FindByMagicToken(ctx context.Context, token string) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
}
