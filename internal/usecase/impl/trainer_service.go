package impl

import (
	"context"
	"log/slog"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// trainerService implements the TrainerUsecase interface.
type trainerService struct {
	trainerRepo repository.TrainerRepository
	userRepo    repository.UserRepository
	logger      *slog.Logger
}

// NewTrainerService is the constructor for trainerService.
func NewTrainerService(
	trainerRepo repository.TrainerRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.TrainerUsecase {
	return &trainerService{
		trainerRepo: trainerRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

func (srv *trainerService) Create(ctx context.Context, input usecase.TrainerInput) (*entity.Trainer, error) {
	// The profile must attach to an existing account.
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	trainer := &entity.Trainer{
		LicenseLevel: input.LicenseLevel,
		Specialty:    input.Specialty,
		UserID:       input.UserID,
	}

	if err := srv.trainerRepo.Create(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create trainer")
	}

	return trainer, nil
}

func (srv *trainerService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Trainer, error) {
	trainer, err := srv.trainerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return nil, domainerrors.ErrTrainerNotFound
		}

		return nil, errors.Wrap(err, "failed to find trainer")
	}

	return trainer, nil
}

func (srv *trainerService) List(ctx context.Context) ([]*entity.Trainer, error) {
	trainers, err := srv.trainerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trainers")
	}

	return trainers, nil
}

func (srv *trainerService) Update(ctx context.Context, id uuid.UUID, input usecase.TrainerInput) (*entity.Trainer, error) {
	trainer, err := srv.trainerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return nil, domainerrors.ErrTrainerNotFound
		}

		return nil, errors.Wrap(err, "failed to find trainer")
	}

	trainer.LicenseLevel = input.LicenseLevel
	trainer.Specialty = input.Specialty

	if err := srv.trainerRepo.Update(ctx, trainer); err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return nil, domainerrors.ErrTrainerNotFound
		}

		return nil, errors.Wrap(err, "failed to update trainer")
	}

	return trainer, nil
}

func (srv *trainerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.trainerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTrainerNotFound) {
			return domainerrors.ErrTrainerNotFound
		}

		return errors.Wrap(err, "failed to delete trainer")
	}

	return nil
}
