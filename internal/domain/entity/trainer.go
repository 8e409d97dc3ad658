package entity

import (
	"time"

	"github.com/google/uuid"
)

// Trainer is the coaching profile attached to a user account.
type Trainer struct {
	ID           uuid.UUID `json:"id"`
	LicenseLevel string    `json:"license_level"`
	Specialty    string    `json:"specialty"`
	UserID       uuid.UUID `json:"user_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
