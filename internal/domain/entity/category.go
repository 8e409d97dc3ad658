package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category is an age bracket players are grouped into (sub-11, sub-13, ...).
// Classes may reference one to constrain who can enroll.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	MinAge    int       `json:"min_age"`
	MaxAge    int       `json:"max_age"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
