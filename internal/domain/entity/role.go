package entity

import "github.com/google/uuid"

// Role is a named function a user can hold in the school (e.g. "Treinador",
// "Secretaria"). Roles are stored and assignable; authorization decisions are
// out of scope.
type Role struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// UserRole links a user to a role.
type UserRole struct {
	UserID uuid.UUID `json:"user_id"`
	RoleID int64     `json:"role_id"`
}
