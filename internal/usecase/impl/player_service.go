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

// playerService implements the PlayerUsecase interface.
type playerService struct {
	playerRepo repository.PlayerRepository
	userRepo   repository.UserRepository
	schoolRepo repository.SchoolRepository
	logger     *slog.Logger
}

// NewPlayerService is the constructor for playerService.
func NewPlayerService(
	playerRepo repository.PlayerRepository,
	userRepo repository.UserRepository,
	schoolRepo repository.SchoolRepository,
	logger *slog.Logger,
) usecase.PlayerUsecase {
	return &playerService{
		playerRepo: playerRepo,
		userRepo:   userRepo,
		schoolRepo: schoolRepo,
		logger:     logger,
	}
}

func (srv *playerService) Create(ctx context.Context, input usecase.PlayerInput) (*entity.Player, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if _, err := srv.schoolRepo.FindByID(ctx, input.SchoolID); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to find school")
	}

	player := &entity.Player{
		Weight:          input.Weight,
		Height:          input.Height,
		PrimaryPosition: input.PrimaryPosition,
		SecondPosition:  input.SecondPosition,
		DominantFoot:    input.DominantFoot,
		EntryDate:       input.EntryDate,
		SportStatus:     input.SportStatus,
		Notes:           input.Notes,
		UserID:          input.UserID,
		SchoolID:        input.SchoolID,
	}

	if err := srv.playerRepo.Create(ctx, player); err != nil {
		if errors.Is(err, repository.ErrSchoolNotFound) {
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to create player")
	}

	return player, nil
}

func (srv *playerService) GetByID(ctx context.Context, id int64) (*entity.Player, error) {
	player, err := srv.playerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, domainerrors.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player")
	}

	return player, nil
}

func (srv *playerService) List(ctx context.Context) ([]*entity.Player, error) {
	players, err := srv.playerRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}

	return players, nil
}

func (srv *playerService) Update(ctx context.Context, id int64, input usecase.PlayerInput) (*entity.Player, error) {
	player, err := srv.playerRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return nil, domainerrors.ErrPlayerNotFound
		}

		return nil, errors.Wrap(err, "failed to find player")
	}

	player.Weight = input.Weight
	player.Height = input.Height
	player.PrimaryPosition = input.PrimaryPosition
	player.SecondPosition = input.SecondPosition
	player.DominantFoot = input.DominantFoot
	player.EntryDate = input.EntryDate
	player.SportStatus = input.SportStatus
	player.Notes = input.Notes
	player.SchoolID = input.SchoolID

	if err := srv.playerRepo.Update(ctx, player); err != nil {
		switch {
		case errors.Is(err, repository.ErrPlayerNotFound):
			return nil, domainerrors.ErrPlayerNotFound
		case errors.Is(err, repository.ErrSchoolNotFound):
			return nil, domainerrors.ErrSchoolNotFound
		}

		return nil, errors.Wrap(err, "failed to update player")
	}

	return player, nil
}

func (srv *playerService) Delete(ctx context.Context, id int64) error {
	if err := srv.playerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return domainerrors.ErrPlayerNotFound
		}

		return errors.Wrap(err, "failed to delete player")
	}

	return nil
}
