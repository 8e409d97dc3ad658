package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassStatus is the activity state of a training class.
type ClassStatus string

const (
	ClassActive   ClassStatus = "Ativo"
	ClassInactive ClassStatus = "Inativo"
)

// Class is a recurring training group led by a trainer. The modality and
// category references are optional; a class without them accepts any player.
type Class struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	Weekdays   string      `json:"weekdays"`
	Schedule   time.Time   `json:"schedule"`
	Status     ClassStatus `json:"status"`
	ModalityID *int64      `json:"modality_id,omitempty"`
	CategoryID *uuid.UUID  `json:"category_id,omitempty"`
	TrainerID  uuid.UUID   `json:"trainer_id"`
}
