package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// modalityRepository implements the domain.ModalityRepository interface.
type modalityRepository struct {
	db *gorm.DB
}

// NewModalityRepository is the constructor for modalityRepository.
func NewModalityRepository(db *gorm.DB) repository.ModalityRepository {
	return &modalityRepository{db: db}
}

func (repo *modalityRepository) Create(ctx context.Context, modality *entity.Modality) error {
	modalityM := fromModalityDomain(modality)

	if err := repo.db.WithContext(ctx).Create(modalityM).Error; err != nil {
		return errors.WithStack(err)
	}

	modality.ID = modalityM.ID

	return nil
}

func (repo *modalityRepository) FindByID(ctx context.Context, id int64) (*entity.Modality, error) {
	modalityM := new(model.ModalityModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(modalityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrModalityNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toModalityDomain(modalityM), nil
}

func (repo *modalityRepository) List(ctx context.Context) ([]*entity.Modality, error) {
	var modalityModels []*model.ModalityModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&modalityModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	modalities := make([]*entity.Modality, 0, len(modalityModels))
	for _, modalityM := range modalityModels {
		modalities = append(modalities, toModalityDomain(modalityM))
	}

	return modalities, nil
}

func (repo *modalityRepository) Update(ctx context.Context, modality *entity.Modality) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ModalityModel{}).
		Where("id = ?", modality.ID).
		Updates(map[string]any{
			"name": modality.Name,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrModalityNotFound
	}

	return nil
}

func (repo *modalityRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ModalityModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrModalityNotFound
	}

	return nil
}

// toModalityDomain converts a GORM ModalityModel to a domain Modality entity.
func toModalityDomain(data *model.ModalityModel) *entity.Modality {
	return &entity.Modality{
		ID:   data.ID,
		Name: data.Name,
	}
}

// fromModalityDomain converts a domain Modality entity to a GORM ModalityModel.
func fromModalityDomain(data *entity.Modality) *model.ModalityModel {
	return &model.ModalityModel{
		ID:   data.ID,
		Name: data.Name,
	}
}
