package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus is the funnel state of a prospect.
type LeadStatus string

const (
	LeadNew          LeadStatus = "Novo"
	LeadInContact    LeadStatus = "Em contato"
	LeadScheduled    LeadStatus = "Agendado"
	LeadConverted    LeadStatus = "Convertido"
	LeadDisqualified LeadStatus = "Desqualificado"
)

// Lead is a prospect who has not yet enrolled. A lead may receive a magic
// link (opaque token plus expiry) granting access to a trial booking page.
type Lead struct {
	ID             uuid.UUID  `json:"id"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	EntryDate      time.Time  `json:"entry_date"`
	Source         string     `json:"source,omitempty"`
	Status         LeadStatus `json:"status"`
	MagicToken     string     `json:"-"`
	MagicExpiresAt *time.Time `json:"magic_expires_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
