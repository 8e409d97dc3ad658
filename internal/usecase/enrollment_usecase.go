package usecase

import (
	"context"
	"time"

	"pssports/internal/domain/entity"
)

// EnrollmentInput defines the data for creating or updating an enrollment.
type EnrollmentInput struct {
	EntryDate time.Time `json:"entry_date" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=Ativo Inativo Pendente Cancelado"`
	PlayerID  int64     `json:"player_id" validate:"required"`
	ClassID   int64     `json:"class_id" validate:"required"`
}

// AttendanceInput defines the data for recording or correcting a presence mark.
type AttendanceInput struct {
	ClassDate    time.Time `json:"class_date" validate:"required"`
	Status       int       `json:"status" validate:"oneof=0 1"`
	EnrollmentID int64     `json:"enrollment_id" validate:"required"`
}

// EnrollmentUsecase defines enrollment management plus the attendance records
// hanging off each enrollment.
type EnrollmentUsecase interface {
	Create(ctx context.Context, input EnrollmentInput) (*entity.Enrollment, error)
	GetByID(ctx context.Context, id int64) (*entity.Enrollment, error)
	List(ctx context.Context) ([]*entity.Enrollment, error)
	Update(ctx context.Context, id int64, input EnrollmentInput) (*entity.Enrollment, error)
	Delete(ctx context.Context, id int64) error

	CreateAttendance(ctx context.Context, input AttendanceInput) (*entity.Attendance, error)
	GetAttendanceByID(ctx context.Context, id int64) (*entity.Attendance, error)
	ListAttendances(ctx context.Context) ([]*entity.Attendance, error)
	ListAttendancesByEnrollment(ctx context.Context, enrollmentID int64) ([]*entity.Attendance, error)
	UpdateAttendance(ctx context.Context, id int64, input AttendanceInput) (*entity.Attendance, error)
	DeleteAttendance(ctx context.Context, id int64) error
}
