package impl

import (
	"context"
	"testing"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainerRepo struct {
	byID map[uuid.UUID]*entity.Trainer
}

func (r *fakeTrainerRepo) Create(ctx context.Context, trainer *entity.Trainer) error { return nil }

func (r *fakeTrainerRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trainer, error) {
	trainer, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrTrainerNotFound
	}

	return trainer, nil
}

func (r *fakeTrainerRepo) List(ctx context.Context) ([]*entity.Trainer, error) { return nil, nil }

func (r *fakeTrainerRepo) Update(ctx context.Context, trainer *entity.Trainer) error { return nil }

func (r *fakeTrainerRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeModalityRepo struct {
	byID map[int64]*entity.Modality
}

func (r *fakeModalityRepo) Create(ctx context.Context, modality *entity.Modality) error {
	if modality.ID == 0 {
		modality.ID = int64(len(r.byID)) + 1
	}
	r.byID[modality.ID] = modality

	return nil
}

func (r *fakeModalityRepo) FindByID(ctx context.Context, id int64) (*entity.Modality, error) {
	modality, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrModalityNotFound
	}

	return modality, nil
}

func (r *fakeModalityRepo) List(ctx context.Context) ([]*entity.Modality, error) { return nil, nil }

func (r *fakeModalityRepo) Update(ctx context.Context, modality *entity.Modality) error { return nil }

func (r *fakeModalityRepo) Delete(ctx context.Context, id int64) error { return nil }

type fakeCategoryRepo struct {
	byID map[uuid.UUID]*entity.Category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	r.byID[category.ID] = category

	return nil
}

func (r *fakeCategoryRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrCategoryNotFound
	}

	return category, nil
}

func (r *fakeCategoryRepo) List(ctx context.Context) ([]*entity.Category, error) { return nil, nil }

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error { return nil }

func (r *fakeCategoryRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type classFixture struct {
	svc        usecase.ClassUsecase
	classes    *fakeClassRepo
	trainerID  uuid.UUID
	modalityID int64
	categoryID uuid.UUID
}

func newClassFixture(t *testing.T) *classFixture {
	t.Helper()

	trainerID := uuid.New()
	categoryID := uuid.New()

	trainers := &fakeTrainerRepo{byID: map[uuid.UUID]*entity.Trainer{
		trainerID: {ID: trainerID, LicenseLevel: "CBF-A"},
	}}
	modalities := &fakeModalityRepo{byID: map[int64]*entity.Modality{
		1: {ID: 1, Name: "Futebol"},
	}}
	categories := &fakeCategoryRepo{byID: map[uuid.UUID]*entity.Category{
		categoryID: {ID: categoryID, Name: "Sub-11", MinAge: 9, MaxAge: 11},
	}}
	classes := &fakeClassRepo{byID: make(map[int64]*entity.Class)}

	svc := NewClassService(classes, trainers, modalities, categories, testLogger())

	return &classFixture{
		svc:        svc,
		classes:    classes,
		trainerID:  trainerID,
		modalityID: 1,
		categoryID: categoryID,
	}
}

func TestClassCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("CarriesModalityAndCategory", func(t *testing.T) {
		f := newClassFixture(t)

		class, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:       "Sub-11 Manhã",
			Weekdays:   "Seg,Qua",
			ModalityID: &f.modalityID,
			CategoryID: &f.categoryID,
			TrainerID:  f.trainerID,
		})
		require.NoError(t, err)

		assert.Equal(t, entity.ClassActive, class.Status)
		require.NotNil(t, class.ModalityID)
		assert.Equal(t, f.modalityID, *class.ModalityID)
		require.NotNil(t, class.CategoryID)
		assert.Equal(t, f.categoryID, *class.CategoryID)
	})

	t.Run("ReferencesAreOptional", func(t *testing.T) {
		f := newClassFixture(t)

		class, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:      "Treino Livre",
			TrainerID: f.trainerID,
		})
		require.NoError(t, err)

		assert.Nil(t, class.ModalityID)
		assert.Nil(t, class.CategoryID)
	})

	t.Run("UnknownTrainer", func(t *testing.T) {
		f := newClassFixture(t)

		_, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:      "Sub-11 Manhã",
			TrainerID: uuid.New(),
		})
		assert.ErrorIs(t, err, domainerrors.ErrTrainerNotFound)
	})

	t.Run("UnknownModality", func(t *testing.T) {
		f := newClassFixture(t)

		missing := int64(99)
		_, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:       "Sub-11 Manhã",
			ModalityID: &missing,
			TrainerID:  f.trainerID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrModalityNotFound)
	})

	t.Run("UnknownCategory", func(t *testing.T) {
		f := newClassFixture(t)

		missing := uuid.New()
		_, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:       "Sub-11 Manhã",
			CategoryID: &missing,
			TrainerID:  f.trainerID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestClassUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("SwapsReferences", func(t *testing.T) {
		f := newClassFixture(t)

		created, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:      "Sub-11 Manhã",
			TrainerID: f.trainerID,
		})
		require.NoError(t, err)

		updated, err := f.svc.Update(ctx, created.ID, usecase.ClassInput{
			Name:       "Sub-11 Tarde",
			ModalityID: &f.modalityID,
			CategoryID: &f.categoryID,
			TrainerID:  f.trainerID,
		})
		require.NoError(t, err)

		require.NotNil(t, updated.ModalityID)
		assert.Equal(t, f.modalityID, *updated.ModalityID)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, f.categoryID, *updated.CategoryID)
	})

	t.Run("UnknownModality", func(t *testing.T) {
		f := newClassFixture(t)

		created, err := f.svc.Create(ctx, usecase.ClassInput{
			Name:      "Sub-11 Manhã",
			TrainerID: f.trainerID,
		})
		require.NoError(t, err)

		missing := int64(99)
		_, err = f.svc.Update(ctx, created.ID, usecase.ClassInput{
			Name:       "Sub-11 Manhã",
			ModalityID: &missing,
			TrainerID:  f.trainerID,
		})
		assert.ErrorIs(t, err, domainerrors.ErrModalityNotFound)
	})
}

func TestCategoryService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := &fakeCategoryRepo{byID: make(map[uuid.UUID]*entity.Category)}
		svc := NewCategoryService(repo, testLogger())

		created, err := svc.Create(ctx, usecase.CategoryInput{Name: "Sub-13", MinAge: 11, MaxAge: 13})
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)

		found, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Sub-13", found.Name)
	})

	t.Run("UnknownID", func(t *testing.T) {
		svc := NewCategoryService(&fakeCategoryRepo{byID: make(map[uuid.UUID]*entity.Category)}, testLogger())

		_, err := svc.GetByID(ctx, uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
	})
}

func TestModalityService(t *testing.T) {
	ctx := context.Background()

	t.Run("CreateAndGet", func(t *testing.T) {
		repo := &fakeModalityRepo{byID: make(map[int64]*entity.Modality)}
		svc := NewModalityService(repo, testLogger())

		created, err := svc.Create(ctx, usecase.ModalityInput{Name: "Futsal"})
		require.NoError(t, err)
		require.NotZero(t, created.ID)

		found, err := svc.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Futsal", found.Name)
	})

	t.Run("UnknownID", func(t *testing.T) {
		svc := NewModalityService(&fakeModalityRepo{byID: make(map[int64]*entity.Modality)}, testLogger())

		_, err := svc.GetByID(ctx, int64(99))
		assert.ErrorIs(t, err, domainerrors.ErrModalityNotFound)
	})
}
