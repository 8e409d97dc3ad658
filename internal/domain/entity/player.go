package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Player is the athletic profile attached to a user account.
type Player struct {
	ID              int64           `json:"id"`
	Weight          decimal.Decimal `json:"weight"`
	Height          decimal.Decimal `json:"height"`
	PrimaryPosition string          `json:"primary_position,omitempty"`
	SecondPosition  string          `json:"second_position"`
	DominantFoot    string          `json:"dominant_foot"`
	EntryDate       time.Time       `json:"entry_date"`
	SportStatus     string          `json:"sport_status"`
	Notes           string          `json:"notes,omitempty"`
	UserID          uuid.UUID       `json:"user_id"`
	SchoolID        int64           `json:"school_id"`
}
