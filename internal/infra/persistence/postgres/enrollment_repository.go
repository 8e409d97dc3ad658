package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// enrollmentRepository implements the domain.EnrollmentRepository interface.
// Attendance records live here too since they only exist under an enrollment.
type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository is the constructor for enrollmentRepository.
func NewEnrollmentRepository(db *gorm.DB) repository.EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (repo *enrollmentRepository) Create(ctx context.Context, enrollment *entity.Enrollment) error {
	enrollmentM := fromEnrollmentDomain(enrollment)

	if err := repo.db.WithContext(ctx).Create(enrollmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrPlayerNotFound
		}

		return errors.WithStack(err)
	}

	enrollment.ID = enrollmentM.ID

	return nil
}

func (repo *enrollmentRepository) FindByID(ctx context.Context, id int64) (*entity.Enrollment, error) {
	enrollmentM := new(model.EnrollmentModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(enrollmentM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEnrollmentNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toEnrollmentDomain(enrollmentM), nil
}

func (repo *enrollmentRepository) List(ctx context.Context) ([]*entity.Enrollment, error) {
	var enrollmentModels []*model.EnrollmentModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&enrollmentModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	enrollments := make([]*entity.Enrollment, 0, len(enrollmentModels))
	for _, enrollmentM := range enrollmentModels {
		enrollments = append(enrollments, toEnrollmentDomain(enrollmentM))
	}

	return enrollments, nil
}

func (repo *enrollmentRepository) Update(ctx context.Context, enrollment *entity.Enrollment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EnrollmentModel{}).
		Where("id = ?", enrollment.ID).
		Updates(map[string]any{
			"entry_date": enrollment.EntryDate,
			"status":     string(enrollment.Status),
			"player_id":  enrollment.PlayerID,
			"class_id":   enrollment.ClassID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrPlayerNotFound
		}

		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

func (repo *enrollmentRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.EnrollmentModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrEnrollmentNotFound
	}

	return nil
}

// CreateAttendance records a presence mark for an enrollment.
func (repo *enrollmentRepository) CreateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	attendanceM := fromAttendanceDomain(attendance)

	if err := repo.db.WithContext(ctx).Create(attendanceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEnrollmentNotFound
		}

		return errors.WithStack(err)
	}

	attendance.ID = attendanceM.ID

	return nil
}

func (repo *enrollmentRepository) FindAttendanceByID(ctx context.Context, id int64) (*entity.Attendance, error) {
	attendanceM := new(model.AttendanceModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(attendanceM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAttendanceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAttendanceDomain(attendanceM), nil
}

func (repo *enrollmentRepository) ListAttendances(ctx context.Context) ([]*entity.Attendance, error) {
	var attendanceModels []*model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Order("class_date DESC, id").
		Find(&attendanceModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toAttendanceDomainSlice(attendanceModels), nil
}

func (repo *enrollmentRepository) ListAttendancesByEnrollment(ctx context.Context, enrollmentID int64) ([]*entity.Attendance, error) {
	var attendanceModels []*model.AttendanceModel

	if err := repo.db.WithContext(ctx).
		Where("enrollment_id = ?", enrollmentID).
		Order("class_date DESC, id").
		Find(&attendanceModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return toAttendanceDomainSlice(attendanceModels), nil
}

func (repo *enrollmentRepository) UpdateAttendance(ctx context.Context, attendance *entity.Attendance) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AttendanceModel{}).
		Where("id = ?", attendance.ID).
		Updates(map[string]any{
			"class_date": attendance.ClassDate,
			"status":     attendance.Status,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

func (repo *enrollmentRepository) DeleteAttendance(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AttendanceModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrAttendanceNotFound
	}

	return nil
}

// toEnrollmentDomain converts a GORM EnrollmentModel to a domain Enrollment entity.
func toEnrollmentDomain(data *model.EnrollmentModel) *entity.Enrollment {
	return &entity.Enrollment{
		ID:        data.ID,
		EntryDate: data.EntryDate,
		Status:    entity.EnrollmentStatus(data.Status),
		PlayerID:  data.PlayerID,
		ClassID:   data.ClassID,
	}
}

// fromEnrollmentDomain converts a domain Enrollment entity to a GORM EnrollmentModel.
func fromEnrollmentDomain(data *entity.Enrollment) *model.EnrollmentModel {
	return &model.EnrollmentModel{
		ID:        data.ID,
		EntryDate: data.EntryDate,
		Status:    string(data.Status),
		PlayerID:  data.PlayerID,
		ClassID:   data.ClassID,
	}
}

// toAttendanceDomain converts a GORM AttendanceModel to a domain Attendance entity.
func toAttendanceDomain(data *model.AttendanceModel) *entity.Attendance {
	return &entity.Attendance{
		ID:           data.ID,
		ClassDate:    data.ClassDate,
		Status:       data.Status,
		EnrollmentID: data.EnrollmentID,
	}
}

func toAttendanceDomainSlice(models []*model.AttendanceModel) []*entity.Attendance {
	attendances := make([]*entity.Attendance, 0, len(models))
	for _, attendanceM := range models {
		attendances = append(attendances, toAttendanceDomain(attendanceM))
	}

	return attendances
}

// fromAttendanceDomain converts a domain Attendance entity to a GORM AttendanceModel.
func fromAttendanceDomain(data *entity.Attendance) *model.AttendanceModel {
	return &model.AttendanceModel{
		ID:           data.ID,
		ClassDate:    data.ClassDate,
		Status:       data.Status,
		EnrollmentID: data.EnrollmentID,
	}
}
