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

// classService implements the ClassUsecase interface.
type classService struct {
	classRepo    repository.ClassRepository
	trainerRepo  repository.TrainerRepository
	modalityRepo repository.ModalityRepository
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewClassService is the constructor for classService.
func NewClassService(
	classRepo repository.ClassRepository,
	trainerRepo repository.TrainerRepository,
	modalityRepo repository.ModalityRepository,
	categoryRepo repository.CategoryRepository,
	logger *slog.Logger,
) usecase.ClassUsecase {
	return &classService{
		classRepo:    classRepo,
		trainerRepo:  trainerRepo,
		modalityRepo: modalityRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// checkReferences verifies that the trainer and the optional modality and
// category references of the input exist.
func (srv *classService) checkReferences(ctx context.Context, input usecase.ClassInput) error {
	if _, err := srv.trainerRepo.FindByID(ctx, input.TrainerID); err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return domainerrors.ErrTrainerNotFound
		}

		return errors.Wrap(err, "failed to find trainer")
	}

	if input.ModalityID != nil {
		if _, err := srv.modalityRepo.FindByID(ctx, *input.ModalityID); err != nil {
			if errors.Is(err, repository.ErrModalityNotFound) {
				return domainerrors.ErrModalityNotFound
			}

			return errors.Wrap(err, "failed to find modality")
		}
	}

	if input.CategoryID != nil {
		if _, err := srv.categoryRepo.FindByID(ctx, *input.CategoryID); err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return domainerrors.ErrCategoryNotFound
			}

			return errors.Wrap(err, "failed to find category")
		}
	}

	return nil
}

func (srv *classService) Create(ctx context.Context, input usecase.ClassInput) (*entity.Class, error) {
	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	status := entity.ClassStatus(input.Status)
	if status == "" {
		status = entity.ClassActive
	}

	class := &entity.Class{
		Name:       input.Name,
		Weekdays:   input.Weekdays,
		Schedule:   input.Schedule,
		Status:     status,
		ModalityID: input.ModalityID,
		CategoryID: input.CategoryID,
		TrainerID:  input.TrainerID,
	}

	if err := srv.classRepo.Create(ctx, class); err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return nil, domainerrors.ErrTrainerNotFound
		}

		return nil, errors.Wrap(err, "failed to create class")
	}

	return class, nil
}

func (srv *classService) GetByID(ctx context.Context, id int64) (*entity.Class, error) {
	class, err := srv.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	return class, nil
}

func (srv *classService) List(ctx context.Context) ([]*entity.Class, error) {
	classes, err := srv.classRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list classes")
	}

	return classes, nil
}

func (srv *classService) Update(ctx context.Context, id int64, input usecase.ClassInput) (*entity.Class, error) {
	class, err := srv.classRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return nil, domainerrors.ErrClassNotFound
		}

		return nil, errors.Wrap(err, "failed to find class")
	}

	if err := srv.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	class.Name = input.Name
	class.Weekdays = input.Weekdays
	class.Schedule = input.Schedule
	if input.Status != "" {
		class.Status = entity.ClassStatus(input.Status)
	}
	class.ModalityID = input.ModalityID
	class.CategoryID = input.CategoryID
	class.TrainerID = input.TrainerID

	if err := srv.classRepo.Update(ctx, class); err != nil {
		switch {
		case errors.Is(err, repository.ErrClassNotFound):
			return nil, domainerrors.ErrClassNotFound
		case errors.Is(err, repository.ErrTrainerNotFound):
			return nil, domainerrors.ErrTrainerNotFound
		}

		return nil, errors.Wrap(err, "failed to update class")
	}

	return class, nil
}

func (srv *classService) Delete(ctx context.Context, id int64) error {
	if err := srv.classRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrClassNotFound) {
			return domainerrors.ErrClassNotFound
		}

		return errors.Wrap(err, "failed to delete class")
	}

	return nil
}
