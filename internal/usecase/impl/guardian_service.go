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

// guardianService implements the GuardianUsecase interface.
type guardianService struct {
	guardianRepo repository.GuardianRepository
	playerRepo   repository.PlayerRepository
	userRepo     repository.UserRepository
	logger       *slog.Logger
}

// NewGuardianService is the constructor for guardianService.
func NewGuardianService(
	guardianRepo repository.GuardianRepository,
	playerRepo repository.PlayerRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.GuardianUsecase {
	return &guardianService{
		guardianRepo: guardianRepo,
		playerRepo:   playerRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

func (srv *guardianService) Create(ctx context.Context, input usecase.GuardianInput) (*entity.Guardian, error) {
	if _, err := srv.userRepo.FindByID(ctx, input.UserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	guardian := &entity.Guardian{
		Kinship: input.Kinship,
		UserID:  input.UserID,
	}

	if err := srv.guardianRepo.Create(ctx, guardian); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to create guardian")
	}

	return guardian, nil
}

func (srv *guardianService) GetByID(ctx context.Context, id int64) (*entity.Guardian, error) {
	guardian, err := srv.guardianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return nil, domainerrors.ErrGuardianNotFound
		}

		return nil, errors.Wrap(err, "failed to find guardian")
	}

	return guardian, nil
}

func (srv *guardianService) List(ctx context.Context) ([]*entity.Guardian, error) {
	guardians, err := srv.guardianRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardians")
	}

	return guardians, nil
}

func (srv *guardianService) Update(ctx context.Context, id int64, input usecase.GuardianInput) (*entity.Guardian, error) {
	guardian, err := srv.guardianRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return nil, domainerrors.ErrGuardianNotFound
		}

		return nil, errors.Wrap(err, "failed to find guardian")
	}

	guardian.Kinship = input.Kinship

	if err := srv.guardianRepo.Update(ctx, guardian); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return nil, domainerrors.ErrGuardianNotFound
		}

		return nil, errors.Wrap(err, "failed to update guardian")
	}

	return guardian, nil
}

func (srv *guardianService) Delete(ctx context.Context, id int64) error {
	if err := srv.guardianRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return domainerrors.ErrGuardianNotFound
		}

		return errors.Wrap(err, "failed to delete guardian")
	}

	return nil
}

// LinkPlayer attaches a player to a guardian after confirming both exist.
func (srv *guardianService) LinkPlayer(ctx context.Context, guardianID, playerID int64) error {
	if _, err := srv.guardianRepo.FindByID(ctx, guardianID); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return domainerrors.ErrGuardianNotFound
		}

		return errors.Wrap(err, "failed to find guardian")
	}

	if _, err := srv.playerRepo.FindByID(ctx, playerID); err != nil {
		if errors.Is(err, repository.ErrPlayerNotFound) {
			return domainerrors.ErrPlayerNotFound
		}

		return errors.Wrap(err, "failed to find player")
	}

	link := entity.PlayerGuardian{PlayerID: playerID, GuardianID: guardianID}
	if err := srv.guardianRepo.LinkPlayer(ctx, link); err != nil {
		return errors.Wrap(err, "failed to link player")
	}

	return nil
}

// UnlinkPlayer detaches a player from a guardian. Missing links succeed
// silently.
func (srv *guardianService) UnlinkPlayer(ctx context.Context, guardianID, playerID int64) error {
	link := entity.PlayerGuardian{PlayerID: playerID, GuardianID: guardianID}

	if err := srv.guardianRepo.UnlinkPlayer(ctx, link); err != nil {
		if errors.Is(err, repository.ErrPlayerGuardianNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to unlink player")
	}

	return nil
}

func (srv *guardianService) ListPlayers(ctx context.Context, guardianID int64) ([]*entity.Player, error) {
	if _, err := srv.guardianRepo.FindByID(ctx, guardianID); err != nil {
		if errors.Is(err, repository.ErrGuardianNotFound) {
			return nil, domainerrors.ErrGuardianNotFound
		}

		return nil, errors.Wrap(err, "failed to find guardian")
	}

	players, err := srv.guardianRepo.ListPlayers(ctx, guardianID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list guardian players")
	}

	return players, nil
}
