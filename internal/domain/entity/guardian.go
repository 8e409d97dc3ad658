package entity

import "github.com/google/uuid"

// Guardian is the legal-guardian profile attached to a user account.
type Guardian struct {
	ID      int64     `json:"id"`
	Kinship string    `json:"kinship"`
	UserID  uuid.UUID `json:"user_id"`
}

// PlayerGuardian links a guardian to one of the players they answer for.
type PlayerGuardian struct {
	PlayerID   int64 `json:"player_id"`
	GuardianID int64 `json:"guardian_id"`
}
