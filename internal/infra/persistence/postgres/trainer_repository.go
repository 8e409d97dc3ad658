package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// trainerRepository implements the domain.TrainerRepository interface.
type trainerRepository struct {
	db *gorm.DB
}

// NewTrainerRepository is the constructor for trainerRepository.
func NewTrainerRepository(db *gorm.DB) repository.TrainerRepository {
	return &trainerRepository{db: db}
}

func (repo *trainerRepository) Create(ctx context.Context, trainer *entity.Trainer) error {
	trainerM := fromTrainerDomain(trainer)

	if err := repo.db.WithContext(ctx).Create(trainerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.WithStack(err)
	}

	trainer.ID = trainerM.ID
	trainer.CreatedAt = trainerM.CreatedAt
	trainer.UpdatedAt = trainerM.UpdatedAt

	return nil
}

func (repo *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Trainer, error) {
	trainerM := new(model.TrainerModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(trainerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTrainerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTrainerDomain(trainerM), nil
}

func (repo *trainerRepository) List(ctx context.Context) ([]*entity.Trainer, error) {
	var trainerModels []*model.TrainerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&trainerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	trainers := make([]*entity.Trainer, 0, len(trainerModels))
	for _, trainerM := range trainerModels {
		trainers = append(trainers, toTrainerDomain(trainerM))
	}

	return trainers, nil
}

func (repo *trainerRepository) Update(ctx context.Context, trainer *entity.Trainer) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TrainerModel{}).
		Where("id = ?", trainer.ID).
		Updates(map[string]any{
			"license_level": trainer.LicenseLevel,
			"specialty":     trainer.Specialty,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTrainerNotFound
	}

	return nil
}

func (repo *trainerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TrainerModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTrainerNotFound
	}

	return nil
}

// toTrainerDomain converts a GORM TrainerModel to a domain Trainer entity.
func toTrainerDomain(data *model.TrainerModel) *entity.Trainer {
	return &entity.Trainer{
		ID:           data.ID,
		LicenseLevel: data.LicenseLevel,
		Specialty:    data.Specialty,
		UserID:       data.UserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTrainerDomain converts a domain Trainer entity to a GORM TrainerModel.
func fromTrainerDomain(data *entity.Trainer) *model.TrainerModel {
	return &model.TrainerModel{
		ID:           data.ID,
		LicenseLevel: data.LicenseLevel,
		Specialty:    data.Specialty,
		UserID:       data.UserID,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
