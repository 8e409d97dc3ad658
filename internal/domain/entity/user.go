// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserStatus is the activity state of a user account.
type UserStatus string

const (
	// StatusActive marks an account that may authenticate.
	StatusActive UserStatus = "Ativo"
	// StatusInactive marks a disabled account. Sessions are never created for it.
	StatusInactive UserStatus = "Inativo"
)

// User is the core identity record. Every person in the system (player,
// trainer, guardian, staff) is backed by one User row.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	BirthDate    time.Time  `json:"birth_date"`
	RG           string     `json:"rg,omitempty"`
	CPF          string     `json:"cpf"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"` // never serialized
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsActive reports whether the account may hold sessions.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
