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

// leadRepository implements the domain.LeadRepository interface.
type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository is the constructor for leadRepository.
func NewLeadRepository(db *gorm.DB) repository.LeadRepository {
	return &leadRepository{db: db}
}

func (repo *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	if err := repo.db.WithContext(ctx).Create(leadM).Error; err != nil {
		return errors.WithStack(err)
	}

	lead.ID = leadM.ID
	lead.CreatedAt = leadM.CreatedAt
	lead.UpdatedAt = leadM.UpdatedAt

	return nil
}

func (repo *leadRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	leadM := new(model.LeadModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(leadM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLeadDomain(leadM), nil
}

// FindByMagicToken retrieves the lead holding the given magic-link token.
func (repo *leadRepository) FindByMagicToken(ctx context.Context, token string) (*entity.Lead, error) {
	leadM := new(model.LeadModel)

	err := repo.db.WithContext(ctx).
		Where("magic_token = ?", token).
		First(leadM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLeadNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toLeadDomain(leadM), nil
}

func (repo *leadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	var leadModels []*model.LeadModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&leadModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	leads := make([]*entity.Lead, 0, len(leadModels))
	for _, leadM := range leadModels {
		leads = append(leads, toLeadDomain(leadM))
	}

	return leads, nil
}

func (repo *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	leadM := fromLeadDomain(lead)

	result := repo.db.WithContext(ctx).
		Model(&model.LeadModel{}).
		Where("id = ?", lead.ID).
		Updates(map[string]any{
			"name":             leadM.Name,
			"email":            leadM.Email,
			"phone":            leadM.Phone,
			"entry_date":       leadM.EntryDate,
			"source":           leadM.Source,
			"status":           leadM.Status,
			"magic_token":      leadM.MagicToken,
			"magic_expires_at": leadM.MagicExpiresAt,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

func (repo *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.LeadModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrLeadNotFound
	}

	return nil
}

// toLeadDomain converts a GORM LeadModel to a domain Lead entity.
func toLeadDomain(data *model.LeadModel) *entity.Lead {
	lead := &entity.Lead{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		EntryDate:      data.EntryDate,
		Source:         data.Source,
		Status:         entity.LeadStatus(data.Status),
		MagicExpiresAt: data.MagicExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.MagicToken != nil {
		lead.MagicToken = *data.MagicToken
	}

	return lead
}

// fromLeadDomain converts a domain Lead entity to a GORM LeadModel.
func fromLeadDomain(data *entity.Lead) *model.LeadModel {
	leadM := &model.LeadModel{
		ID:             data.ID,
		Name:           data.Name,
		Email:          data.Email,
		Phone:          data.Phone,
		EntryDate:      data.EntryDate,
		Source:         data.Source,
		Status:         string(data.Status),
		MagicExpiresAt: data.MagicExpiresAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	if data.MagicToken != "" {
		token := data.MagicToken
		leadM.MagicToken = &token
	}

	return leadM
}
