package impl

import (
	"context"
	"log/slog"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/pkg/errors"
)

// enrollmentService implements the EnrollmentUsecase interface. Enrollment
// creation crosses three tables, so it runs inside one transaction.
type enrollmentService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewEnrollmentService is the constructor for enrollmentService.
func NewEnrollmentService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.EnrollmentUsecase {
	return &enrollmentService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *enrollmentService) Create(ctx context.Context, input usecase.EnrollmentInput) (*entity.Enrollment, error) {
	status := entity.EnrollmentStatus(input.Status)
	if status == "" {
		status = entity.EnrollmentPending
	}

	enrollment := &entity.Enrollment{
		EntryDate: input.EntryDate,
		Status:    status,
		PlayerID:  input.PlayerID,
		ClassID:   input.ClassID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.PlayerRepo().FindByID(ctx, input.PlayerID); err != nil {
			if errors.Is(err, repository.ErrPlayerNotFound) {
				return domainerrors.ErrPlayerNotFound
			}

			return errors.Wrap(err, "failed to find player")
		}

		class, err := repoFactory.ClassRepo().FindByID(ctx, input.ClassID)
		if err != nil {
			if errors.Is(err, repository.ErrClassNotFound) {
				return domainerrors.ErrClassNotFound
			}

			return errors.Wrap(err, "failed to find class")
		}

		// No enrollments into a deactivated class.
		if class.Status != entity.ClassActive {
			return domainerrors.ErrClassNotFound
		}

		if err := repoFactory.EnrollmentRepo().Create(ctx, enrollment); err != nil {
			return errors.Wrap(err, "failed to create enrollment")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Enrollment created",
		slog.Int64("enrollment_id", enrollment.ID),
		slog.Int64("player_id", enrollment.PlayerID),
		slog.Int64("class_id", enrollment.ClassID),
	)

	return enrollment, nil
}

func (srv *enrollmentService) GetByID(ctx context.Context, id int64) (*entity.Enrollment, error) {
	var enrollment *entity.Enrollment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EnrollmentRepo().FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrEnrollmentNotFound
			}

			return errors.Wrap(err, "failed to find enrollment")
		}
		enrollment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (srv *enrollmentService) List(ctx context.Context) ([]*entity.Enrollment, error) {
	var enrollments []*entity.Enrollment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EnrollmentRepo().List(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list enrollments")
		}
		enrollments = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollments, nil
}

func (srv *enrollmentService) Update(ctx context.Context, id int64, input usecase.EnrollmentInput) (*entity.Enrollment, error) {
	var enrollment *entity.Enrollment

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enrollmentRepo := repoFactory.EnrollmentRepo()

		found, err := enrollmentRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrEnrollmentNotFound
			}

			return errors.Wrap(err, "failed to find enrollment")
		}

		found.EntryDate = input.EntryDate
		if input.Status != "" {
			found.Status = entity.EnrollmentStatus(input.Status)
		}
		found.PlayerID = input.PlayerID
		found.ClassID = input.ClassID

		if err := enrollmentRepo.Update(ctx, found); err != nil {
			switch {
			case errors.Is(err, repository.ErrEnrollmentNotFound):
				return domainerrors.ErrEnrollmentNotFound
			case errors.Is(err, repository.ErrPlayerNotFound):
				return domainerrors.ErrPlayerNotFound
			}

			return errors.Wrap(err, "failed to update enrollment")
		}
		enrollment = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

func (srv *enrollmentService) Delete(ctx context.Context, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.EnrollmentRepo().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrEnrollmentNotFound
			}

			return errors.Wrap(err, "failed to delete enrollment")
		}

		return nil
	})
}

// CreateAttendance records a presence mark against an active enrollment.
func (srv *enrollmentService) CreateAttendance(ctx context.Context, input usecase.AttendanceInput) (*entity.Attendance, error) {
	attendance := &entity.Attendance{
		ClassDate:    input.ClassDate,
		Status:       input.Status,
		EnrollmentID: input.EnrollmentID,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enrollmentRepo := repoFactory.EnrollmentRepo()

		if _, err := enrollmentRepo.FindByID(ctx, input.EnrollmentID); err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrEnrollmentNotFound
			}

			return errors.Wrap(err, "failed to find enrollment")
		}

		if err := enrollmentRepo.CreateAttendance(ctx, attendance); err != nil {
			return errors.Wrap(err, "failed to create attendance")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendance, nil
}

func (srv *enrollmentService) GetAttendanceByID(ctx context.Context, id int64) (*entity.Attendance, error) {
	var attendance *entity.Attendance

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EnrollmentRepo().FindAttendanceByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAttendanceNotFound) {
				return domainerrors.ErrAttendanceNotFound
			}

			return errors.Wrap(err, "failed to find attendance")
		}
		attendance = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendance, nil
}

func (srv *enrollmentService) ListAttendances(ctx context.Context) ([]*entity.Attendance, error) {
	var attendances []*entity.Attendance

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.EnrollmentRepo().ListAttendances(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to list attendances")
		}
		attendances = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendances, nil
}

func (srv *enrollmentService) ListAttendancesByEnrollment(ctx context.Context, enrollmentID int64) ([]*entity.Attendance, error) {
	var attendances []*entity.Attendance

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enrollmentRepo := repoFactory.EnrollmentRepo()

		if _, err := enrollmentRepo.FindByID(ctx, enrollmentID); err != nil {
			if errors.Is(err, repository.ErrEnrollmentNotFound) {
				return domainerrors.ErrEnrollmentNotFound
			}

			return errors.Wrap(err, "failed to find enrollment")
		}

		found, err := enrollmentRepo.ListAttendancesByEnrollment(ctx, enrollmentID)
		if err != nil {
			return errors.Wrap(err, "failed to list attendances")
		}
		attendances = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendances, nil
}

func (srv *enrollmentService) UpdateAttendance(ctx context.Context, id int64, input usecase.AttendanceInput) (*entity.Attendance, error) {
	var attendance *entity.Attendance

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		enrollmentRepo := repoFactory.EnrollmentRepo()

		found, err := enrollmentRepo.FindAttendanceByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrAttendanceNotFound) {
				return domainerrors.ErrAttendanceNotFound
			}

			return errors.Wrap(err, "failed to find attendance")
		}

		found.ClassDate = input.ClassDate
		found.Status = input.Status

		if err := enrollmentRepo.UpdateAttendance(ctx, found); err != nil {
			if errors.Is(err, repository.ErrAttendanceNotFound) {
				return domainerrors.ErrAttendanceNotFound
			}

			return errors.Wrap(err, "failed to update attendance")
		}
		attendance = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return attendance, nil
}

func (srv *enrollmentService) DeleteAttendance(ctx context.Context, id int64) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.EnrollmentRepo().DeleteAttendance(ctx, id); err != nil {
			if errors.Is(err, repository.ErrAttendanceNotFound) {
				return domainerrors.ErrAttendanceNotFound
			}

			return errors.Wrap(err, "failed to delete attendance")
		}

		return nil
	})
}
