package entity

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment.
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "Ativo"
	EnrollmentInactive  EnrollmentStatus = "Inativo"
	EnrollmentPending   EnrollmentStatus = "Pendente"
	EnrollmentCancelled EnrollmentStatus = "Cancelado"
)

// Enrollment links a player to a class.
type Enrollment struct {
	ID        int64            `json:"id"`
	EntryDate time.Time        `json:"entry_date"`
	Status    EnrollmentStatus `json:"status"`
	PlayerID  int64            `json:"player_id"`
	ClassID   int64            `json:"class_id"`
}

// Attendance records whether an enrolled player showed up on a class date.
// Status follows the original schema: 1 for present, 0 for absent.
type Attendance struct {
	ID           int64     `json:"id"`
	ClassDate    time.Time `json:"class_date"`
	Status       int       `json:"status"`
	EnrollmentID int64     `json:"enrollment_id"`
}
