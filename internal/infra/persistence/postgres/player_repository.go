package postgres

import (
	"context"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// playerRepository implements the domain.PlayerRepository interface.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository is the constructor for playerRepository.
func NewPlayerRepository(db *gorm.DB) repository.PlayerRepository {
	return &playerRepository{db: db}
}

func (repo *playerRepository) Create(ctx context.Context, player *entity.Player) error {
	playerM := fromPlayerDomain(player)

	if err := repo.db.WithContext(ctx).Create(playerM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSchoolNotFound
		}

		return errors.WithStack(err)
	}

	player.ID = playerM.ID

	return nil
}

func (repo *playerRepository) FindByID(ctx context.Context, id int64) (*entity.Player, error) {
	playerM := new(model.PlayerModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(playerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPlayerNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPlayerDomain(playerM), nil
}

func (repo *playerRepository) List(ctx context.Context) ([]*entity.Player, error) {
	var playerModels []*model.PlayerModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&playerModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	players := make([]*entity.Player, 0, len(playerModels))
	for _, playerM := range playerModels {
		players = append(players, toPlayerDomain(playerM))
	}

	return players, nil
}

func (repo *playerRepository) Update(ctx context.Context, player *entity.Player) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PlayerModel{}).
		Where("id = ?", player.ID).
		Updates(map[string]any{
			"weight":           player.Weight,
			"height":           player.Height,
			"primary_position": player.PrimaryPosition,
			"second_position":  player.SecondPosition,
			"dominant_foot":    player.DominantFoot,
			"entry_date":       player.EntryDate,
			"sport_status":     player.SportStatus,
			"notes":            player.Notes,
			"school_id":        player.SchoolID,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrSchoolNotFound
		}

		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlayerNotFound
	}

	return nil
}

func (repo *playerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PlayerModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrPlayerNotFound
	}

	return nil
}

// toPlayerDomain converts a GORM PlayerModel to a domain Player entity.
func toPlayerDomain(data *model.PlayerModel) *entity.Player {
	return &entity.Player{
		ID:              data.ID,
		Weight:          data.Weight,
		Height:          data.Height,
		PrimaryPosition: data.PrimaryPosition,
		SecondPosition:  data.SecondPosition,
		DominantFoot:    data.DominantFoot,
		EntryDate:       data.EntryDate,
		SportStatus:     data.SportStatus,
		Notes:           data.Notes,
		UserID:          data.UserID,
		SchoolID:        data.SchoolID,
	}
}

// fromPlayerDomain converts a domain Player entity to a GORM PlayerModel.
func fromPlayerDomain(data *entity.Player) *model.PlayerModel {
	return &model.PlayerModel{
		ID:              data.ID,
		Weight:          data.Weight,
		Height:          data.Height,
		PrimaryPosition: data.PrimaryPosition,
		SecondPosition:  data.SecondPosition,
		DominantFoot:    data.DominantFoot,
		EntryDate:       data.EntryDate,
		SportStatus:     data.SportStatus,
		Notes:           data.Notes,
		UserID:          data.UserID,
		SchoolID:        data.SchoolID,
	}
}
