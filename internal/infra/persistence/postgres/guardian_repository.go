package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// guardianRepository implements the domain.GuardianRepository interface.
type guardianRepository struct {
	db *gorm.DB
}

// NewGuardianRepository is the constructor for guardianRepository.
func NewGuardianRepository(db *gorm.DB) repository.GuardianRepository {
	return &guardianRepository{db: db}
}

func (repo *guardianRepository) Create(ctx context.Context, guardian *entity.Guardian) error {
	guardianM := fromGuardianDomain(guardian)

	if err := repo.db.WithContext(ctx).Create(guardianM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return errors.WithStack(err)
	}

	guardian.ID = guardianM.ID

	return nil
}

func (repo *guardianRepository) FindByID(ctx context.Context, id int64) (*entity.Guardian, error) {
	guardianM := new(model.GuardianModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(guardianM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrGuardianNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toGuardianDomain(guardianM), nil
}

func (repo *guardianRepository) List(ctx context.Context) ([]*entity.Guardian, error) {
	var guardianModels []*model.GuardianModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&guardianModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	guardians := make([]*entity.Guardian, 0, len(guardianModels))
	for _, guardianM := range guardianModels {
		guardians = append(guardians, toGuardianDomain(guardianM))
	}

	return guardians, nil
}

func (repo *guardianRepository) Update(ctx context.Context, guardian *entity.Guardian) error {
	result := repo.db.WithContext(ctx).
		Model(&model.GuardianModel{}).
		Where("id = ?", guardian.ID).
		Updates(map[string]any{
			"kinship": guardian.Kinship,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuardianNotFound
	}

	return nil
}

func (repo *guardianRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.GuardianModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrGuardianNotFound
	}

	return nil
}

// LinkPlayer attaches a player to a guardian. Linking twice is a no-op.
func (repo *guardianRepository) LinkPlayer(ctx context.Context, link entity.PlayerGuardian) error {
	linkM := &model.PlayerGuardianModel{
		PlayerID:   link.PlayerID,
		GuardianID: link.GuardianID,
	}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrGuardianNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}

// UnlinkPlayer detaches a player from a guardian.
func (repo *guardianRepository) UnlinkPlayer(ctx context.Context, link entity.PlayerGuardian) error {
	result := repo.db.WithContext(ctx).
		Where("player_id = ? AND guardian_id = ?", link.PlayerID, link.GuardianID).
		Delete(&model.PlayerGuardianModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlayerGuardianNotFound
	}

	return nil
}

// ListPlayers retrieves every player a guardian answers for.
func (repo *guardianRepository) ListPlayers(ctx context.Context, guardianID int64) ([]*entity.Player, error) {
	var playerModels []*model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN players_guardians ON players_guardians.player_id = players.id").
		Where("players_guardians.guardian_id = ?", guardianID).
		Order("players.id").
		Find(&playerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	players := make([]*entity.Player, 0, len(playerModels))
	for _, playerM := range playerModels {
		players = append(players, toPlayerDomain(playerM))
	}

	return players, nil
}

// toGuardianDomain converts a GORM GuardianModel to a domain Guardian entity.
func toGuardianDomain(data *model.GuardianModel) *entity.Guardian {
	return &entity.Guardian{
		ID:      data.ID,
		Kinship: data.Kinship,
		UserID:  data.UserID,
	}
}

// fromGuardianDomain converts a domain Guardian entity to a GORM GuardianModel.
func fromGuardianDomain(data *entity.Guardian) *model.GuardianModel {
	return &model.GuardianModel{
		ID:      data.ID,
		Kinship: data.Kinship,
		UserID:  data.UserID,
	}
}
