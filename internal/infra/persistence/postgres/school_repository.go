package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// schoolRepository implements the domain.SchoolRepository interface.
type schoolRepository struct {
	db *gorm.DB
}

// NewSchoolRepository is the constructor for schoolRepository.
func NewSchoolRepository(db *gorm.DB) repository.SchoolRepository {
	return &schoolRepository{db: db}
}

func (repo *schoolRepository) Create(ctx context.Context, school *entity.School) error {
	schoolM := fromSchoolDomain(school)

	if err := repo.db.WithContext(ctx).Create(schoolM).Error; err != nil {
		return errors.WithStack(err)
	}

	school.ID = schoolM.ID
	school.CreatedAt = schoolM.CreatedAt
	school.UpdatedAt = schoolM.UpdatedAt

	return nil
}

func (repo *schoolRepository) FindByID(ctx context.Context, id int64) (*entity.School, error) {
	schoolM := new(model.SchoolModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(schoolM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSchoolNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toSchoolDomain(schoolM), nil
}

func (repo *schoolRepository) List(ctx context.Context) ([]*entity.School, error) {
	var schoolModels []*model.SchoolModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&schoolModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	schools := make([]*entity.School, 0, len(schoolModels))
	for _, schoolM := range schoolModels {
		schools = append(schools, toSchoolDomain(schoolM))
	}

	return schools, nil
}

func (repo *schoolRepository) Update(ctx context.Context, school *entity.School) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SchoolModel{}).
		Where("id = ?", school.ID).
		Updates(map[string]any{
			"name":    school.Name,
			"address": school.Address,
			"phone":   school.Phone,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchoolNotFound
	}

	return nil
}

func (repo *schoolRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SchoolModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrSchoolNotFound
	}

	return nil
}

// toSchoolDomain converts a GORM SchoolModel to a domain School entity.
func toSchoolDomain(data *model.SchoolModel) *entity.School {
	return &entity.School{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSchoolDomain converts a domain School entity to a GORM SchoolModel.
func fromSchoolDomain(data *entity.School) *model.SchoolModel {
	return &model.SchoolModel{
		ID:        data.ID,
		Name:      data.Name,
		Address:   data.Address,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
