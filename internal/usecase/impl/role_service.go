package impl

import (
	"context"
	"log/slog"

	"pssports/internal/domain/entity"
	domainerrors "pssports/internal/domain/errors"
	"pssports/internal/domain/repository"
	"pssports/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// roleService implements the RoleUsecase interface.
type roleService struct {
	roleRepo repository.RoleRepository
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewRoleService is the constructor for roleService.
func NewRoleService(
	roleRepo repository.RoleRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.RoleUsecase {
	return &roleService{
		roleRepo: roleRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *roleService) Create(ctx context.Context, input usecase.RoleInput) (*entity.Role, error) {
	role := &entity.Role{
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.roleRepo.Create(ctx, role); err != nil {
		return nil, errors.Wrap(err, "failed to create role")
	}

	return role, nil
}

func (srv *roleService) GetByID(ctx context.Context, id int64) (*entity.Role, error) {
	role, err := srv.roleRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role")
	}

	return role, nil
}

func (srv *roleService) List(ctx context.Context) ([]*entity.Role, error) {
	roles, err := srv.roleRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	return roles, nil
}

func (srv *roleService) Update(ctx context.Context, id int64, input usecase.RoleInput) (*entity.Role, error) {
	role := &entity.Role{
		ID:          id,
		Name:        input.Name,
		Description: input.Description,
	}

	if err := srv.roleRepo.Update(ctx, role); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return nil, domainerrors.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to update role")
	}

	return role, nil
}

func (srv *roleService) Delete(ctx context.Context, id int64) error {
	if err := srv.roleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound
		}

		return errors.Wrap(err, "failed to delete role")
	}

	return nil
}

// Assign links a user to a role after confirming both exist.
func (srv *roleService) Assign(ctx context.Context, userID uuid.UUID, roleID int64) error {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound
		}

		return errors.Wrap(err, "failed to find user")
	}

	if err := srv.roleRepo.Assign(ctx, entity.UserRole{UserID: userID, RoleID: roleID}); err != nil {
		if errors.Is(err, repository.ErrRoleNotFound) {
			return domainerrors.ErrRoleNotFound
		}

		return errors.Wrap(err, "failed to assign role")
	}

	srv.logger.Info("Role assigned", slog.Any("user_id", userID), slog.Int64("role_id", roleID))

	return nil
}

// Unassign removes a user-role link. Removing a link that does not exist is
// not an error.
func (srv *roleService) Unassign(ctx context.Context, userID uuid.UUID, roleID int64) error {
	if err := srv.roleRepo.Unassign(ctx, entity.UserRole{UserID: userID, RoleID: roleID}); err != nil {
		if errors.Is(err, repository.ErrRoleAssignmentNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to unassign role")
	}

	return nil
}

func (srv *roleService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	roles, err := srv.roleRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user roles")
	}

	return roles, nil
}
