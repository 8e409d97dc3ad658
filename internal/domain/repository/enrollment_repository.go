package repository

import (
	"context"

	"pssports/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for enrollment persistence.
var (
	// ErrEnrollmentNotFound is returned when an enrollment is not found.
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	// ErrAttendanceNotFound is returned when an attendance record is not found.
	ErrAttendanceNotFound = errors.New("attendance not found")
)

// EnrollmentRepository defines persistence for enrollments and the attendance
// records hanging off them.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *entity.Enrollment) error
	FindByID(ctx context.Context, id int64) (*entity.Enrollment, error)
	List(ctx context.Context) ([]*entity.Enrollment, error)
	Update(ctx context.Context, enrollment *entity.Enrollment) error
	Delete(ctx context.Context, id int64) error

	CreateAttendance(ctx context.Context, attendance *entity.Attendance) error
	FindAttendanceByID(ctx context.Context, id int64) (*entity.Attendance, error)
	ListAttendances(ctx context.Context) ([]*entity.Attendance, error)
	ListAttendancesByEnrollment(ctx context.Context, enrollmentID int64) ([]*entity.Attendance, error)
	UpdateAttendance(ctx context.Context, attendance *entity.Attendance) error
	DeleteAttendance(ctx context.Context, id int64) error
}
