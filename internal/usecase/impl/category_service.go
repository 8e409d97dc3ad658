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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(categoryRepo repository.CategoryRepository, logger *slog.Logger) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (srv *categoryService) Create(ctx context.Context, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		Name:   input.Name,
		MinAge: input.MinAge,
		MaxAge: input.MaxAge,
	}

	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		return nil, errors.Wrap(err, "failed to create category")
	}

	return category, nil
}

func (srv *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return category, nil
}

func (srv *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) Update(ctx context.Context, id uuid.UUID, input usecase.CategoryInput) (*entity.Category, error) {
	category := &entity.Category{
		ID:     id,
		Name:   input.Name,
		MinAge: input.MinAge,
		MaxAge: input.MaxAge,
	}

	if err := srv.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to update category")
	}

	return category, nil
}

func (srv *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.categoryRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return domainerrors.ErrCategoryNotFound
		}

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}
