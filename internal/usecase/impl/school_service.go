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

// schoolService implements the SchoolUsecase interface.
type schoolService struct {
	schoolRepo repository.SchoolRepository
	logger     *slog.Logger
}

// NewSchoolService is the constructor for schoolService.
func NewSchoolService(schoolRepo repository.SchoolRepository, logger *slog.Logger) usecase.SchoolUsecase {
	return &schoolService{
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

func (srv *schoolService) Create(ctx context.Context, input usecase.SchoolInput) (*entity.School, error) {
	school := &entity.School{
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := srv.schoolRepo.Create(ctx, school); err != nil {
		return nil, errors.Wrap(err, "failed to create school")
	}

	return school, nil
}

func (srv *schoolService) GetByID(ctx context.Context, id int64) (*entity.School, error) {
	school, err := srv.schoolRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find school")
	}

	return school, nil
}

func (srv *schoolService) List(ctx context.Context) ([]*entity.School, error) {
	schools, err := srv.schoolRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list schools")
	}

	return schools, nil
}

func (srv *schoolService) Update(ctx context.Context, id int64, input usecase.SchoolInput) (*entity.School, error) {
	school := &entity.School{
		ID:      id,
		Name:    input.Name,
		Address: input.Address,
		Phone:   input.Phone,
	}

	if err := srv.schoolRepo.Update(ctx, school); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to update school")
	}

	return school, nil
}

func (srv *schoolService) Delete(ctx context.Context, id int64) error {
	if err := srv.schoolRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return domainerrors.ErrSchoolNotFound
		}

		return errors.Wrap(err, "failed to delete school")
	}

	return nil
}
