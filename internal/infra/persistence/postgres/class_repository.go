package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// classRepository implements the domain.ClassRepository interface.
type classRepository struct {
	db *gorm.DB
}

// NewClassRepository is the constructor for classRepository.
func NewClassRepository(db *gorm.DB) repository.ClassRepository {
	return &classRepository{db: db}
}

func (repo *classRepository) Create(ctx context.Context, class *entity.Class) error {
	classM := fromClassDomain(class)

	if err := repo.db.WithContext(ctx).Create(classM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrTrainerNotFound
		}

		return errors.WithStack(err)
	}

	class.ID = classM.ID

	return nil
}

func (repo *classRepository) FindByID(ctx context.Context, id int64) (*entity.Class, error) {
	classM := new(model.ClassModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(classM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrClassNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toClassDomain(classM), nil
}

func (repo *classRepository) List(ctx context.Context) ([]*entity.Class, error) {
	var classModels []*model.ClassModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&classModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	classes := make([]*entity.Class, 0, len(classModels))
	for _, classM := range classModels {
		classes = append(classes, toClassDomain(classM))
	}

	return classes, nil
}

func (repo *classRepository) Update(ctx context.Context, class *entity.Class) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ClassModel{}).
		Where("id = ?", class.ID).
		Updates(map[string]any{
			"name":        class.Name,
			"weekdays":    class.Weekdays,
			"schedule":    class.Schedule,
			"status":      string(class.Status),
			"modality_id": class.ModalityID,
			"category_id": class.CategoryID,
			"trainer_id":  class.TrainerID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrTrainerNotFound
		}

		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

func (repo *classRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ClassModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrClassNotFound
	}

	return nil
}

// toClassDomain converts a GORM ClassModel to a domain Class entity.
func toClassDomain(data *model.ClassModel) *entity.Class {
	return &entity.Class{
		ID:         data.ID,
		Name:       data.Name,
		Weekdays:   data.Weekdays,
		Schedule:   data.Schedule,
		Status:     entity.ClassStatus(data.Status),
		ModalityID: data.ModalityID,
		CategoryID: data.CategoryID,
		TrainerID:  data.TrainerID,
	}
}

// fromClassDomain converts a domain Class entity to a GORM ClassModel.
func fromClassDomain(data *entity.Class) *model.ClassModel {
	return &model.ClassModel{
		ID:         data.ID,
		Name:       data.Name,
		Weekdays:   data.Weekdays,
		Schedule:   data.Schedule,
		Status:     string(data.Status),
		ModalityID: data.ModalityID,
		CategoryID: data.CategoryID,
		TrainerID:  data.TrainerID,
	}
}
