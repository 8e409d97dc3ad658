package impl

import (
	"context"
	"log/slog"

	deliverycontext "pssports/internal/delivery/context"
	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/domain/service"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo    repository.UserRepository
	refreshRepo repository.RefreshTokenRepository
	hasher      service.PasswordHasher
	logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(
	userRepo repository.UserRepository,
	refreshRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	logger *slog.Logger,
) usecase.UserUsecase {
	return &userService{
		userRepo:    userRepo,
		refreshRepo: refreshRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *userService) Create(ctx context.Context, input usecase.CreateUserInput) (*entity.User, error) {
	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	status := entity.UserStatus(input.Status)
	if status == "" {
		status = entity.StatusActive
	}

	user := &entity.User{
		Name:         input.Name,
		BirthDate:    input.BirthDate,
		RG:           input.RG,
		CPF:          input.CPF,
		Email:        input.Email,
		PasswordHash: hash,
		Status:       status,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrEmailTaken
		case errors.Is(err, repository.ErrCPFTaken):
			return nil, domainerrors.ErrCPFTaken
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User created", slog.Any("user_id", user.ID))

	user.PasswordHash = ""

	return user, nil
}

func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	user.PasswordHash = ""

	return user, nil
}

func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (srv *userService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.BirthDate != nil {
		user.BirthDate = *input.BirthDate
	}
	if input.RG != nil {
		user.RG = *input.RG
	}
	if input.CPF != nil {
		user.CPF = *input.CPF
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
		user.PasswordHash = hash
	}
	deactivated := false
	if input.Status != nil {
		newStatus := entity.UserStatus(*input.Status)
		deactivated = newStatus == entity.StatusInactive && user.Status != entity.StatusInactive
		user.Status = newStatus
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return nil, domainerrors.ErrUserNotFound
		case errors.Is(err, repository.ErrEmailTaken):
			return nil, domainerrors.ErrEmailTaken
		case errors.Is(err, repository.ErrCPFTaken):
			return nil, domainerrors.ErrCPFTaken
		}

		return nil, errors.Wrap(err, "failed to update user")
	}

	// Deactivation revokes every open session so a refresh token issued
	// before the change cannot keep the account alive.
	if deactivated {
		if err := srv.refreshRepo.DeleteByUserID(ctx, user.ID); err != nil {
			return nil, errors.Wrap(err, "failed to revoke user sessions")
		}

		srv.log(ctx).Info("User sessions revoked", slog.Any("user_id", user.ID))
	}

	user.PasswordHash = ""

	return user, nil
}

func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to delete user")
	}

	srv.log(ctx).Info("User deleted", slog.Any("user_id", id))

	return nil
}
