package usecase

import (
	"context"
	"time"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerInput defines the data for creating or updating an athletic profile.
type PlayerInput struct {
	Weight          decimal.Decimal `json:"weight"`
	Height          decimal.Decimal `json:"height"`
	PrimaryPosition string          `json:"primary_position" validate:"max=50"`
	SecondPosition  string          `json:"second_position" validate:"max=50"`
	DominantFoot    string          `json:"dominant_foot" validate:"omitempty,oneof=Destro Canhoto Ambidestro"`
	EntryDate       time.Time       `json:"entry_date"`
	SportStatus     string          `json:"sport_status" validate:"max=20"`
	Notes           string          `json:"notes"`
	UserID          uuid.UUID       `json:"user_id" validate:"required"`
	SchoolID        int64           `json:"school_id" validate:"required"`
}

// PlayerUsecase defines athletic-profile management operations.
type PlayerUsecase interface {
	Create(ctx context.Context, input PlayerInput) (*entity.Player, error)
	GetByID(ctx context.Context, id int64) (*entity.Player, error)
	List(ctx context.Context) ([]*entity.Player, error)
	Update(ctx context.Context, id int64, input PlayerInput) (*entity.Player, error)
	Delete(ctx context.Context, id int64) error
}
