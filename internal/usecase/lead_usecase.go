package usecase

import (
	"context"
	"time"

	"pssports/internal/domain/entity"

	"github.com/google/uuid"
)

// LeadInput defines the data for creating or updating a prospect.
type LeadInput struct {
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"max=20"`
	EntryDate time.Time `json:"entry_date"`
	Source    string    `json:"source" validate:"max=50"`
	Status    string    `json:"status" validate:"omitempty,oneof=Novo 'Em contato' Agendado Convertido Desqualificado"`
}

// MagicLinkOutput carries a freshly issued trial-booking link for a lead:
// the raw token, its expiry, and a QR code PNG rendering of the link.
type MagicLinkOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	QRCodePNG []byte    `json:"-"`
}

// LeadUsecase defines prospect management and the magic-link flow that lets a
// lead book a trial class without an account.
type LeadUsecase interface {
	Create(ctx context.Context, input LeadInput) (*entity.Lead, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	List(ctx context.Context) ([]*entity.Lead, error)
	Update(ctx context.Context, id uuid.UUID, input LeadInput) (*entity.Lead, error)
	Delete(ctx context.Context, id uuid.UUID) error

	// IssueMagicLink generates a fresh magic token for the lead, stores it
	// with its expiry, and renders the booking link as a QR code.
	IssueMagicLink(ctx context.Context, id uuid.UUID) (*MagicLinkOutput, error)

	// ResolveMagicToken returns the lead holding a live magic token. Expired
	// or unknown tokens are indistinguishable to the caller.
	ResolveMagicToken(ctx context.Context, token string) (*entity.Lead, error)
}
