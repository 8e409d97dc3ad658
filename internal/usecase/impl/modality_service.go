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

// modalityService implements the ModalityUsecase interface.
type modalityService struct {
	modalityRepo repository.ModalityRepository
	logger       *slog.Logger
}

// NewModalityService is the constructor for modalityService.
func NewModalityService(modalityRepo repository.ModalityRepository, logger *slog.Logger) usecase.ModalityUsecase {
	return &modalityService{
		modalityRepo: modalityRepo,
		logger:       logger,
	}
}

func (srv *modalityService) Create(ctx context.Context, input usecase.ModalityInput) (*entity.Modality, error) {
	modality := &entity.Modality{Name: input.Name}

	if err := srv.modalityRepo.Create(ctx, modality); err != nil {
		return nil, errors.Wrap(err, "failed to create modality")
	}

	return modality, nil
}

func (srv *modalityService) GetByID(ctx context.Context, id int64) (*entity.Modality, error) {
	modality, err := srv.modalityRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrModalityNotFound) {
			return nil, domainerrors.ErrModalityNotFound
		}

		return nil, errors.Wrap(err, "failed to find modality")
	}

	return modality, nil
}

func (srv *modalityService) List(ctx context.Context) ([]*entity.Modality, error) {
	modalities, err := srv.modalityRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list modalities")
	}

	return modalities, nil
}

func (srv *modalityService) Update(ctx context.Context, id int64, input usecase.ModalityInput) (*entity.Modality, error) {
	modality := &entity.Modality{ID: id, Name: input.Name}

	if err := srv.modalityRepo.Update(ctx, modality); err != nil {
		if errors.Is(err, repository.ErrModalityNotFound) {
			return nil, domainerrors.ErrModalityNotFound
		}

		return nil, errors.Wrap(err, "failed to update modality")
	}

	return modality, nil
}

func (srv *modalityService) Delete(ctx context.Context, id int64) error {
	if err := srv.modalityRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrModalityNotFound) {
			return domainerrors.ErrModalityNotFound
		}

		return errors.Wrap(err, "failed to delete modality")
	}

	return nil
}
