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

// roleRepository implements the domain.RoleRepository interface.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) Create(ctx context.Context, role *entity.Role) error {
	roleM := fromRoleDomain(role)

	if err := repo.db.WithContext(ctx).Create(roleM).Error; err != nil {
		return errors.WithStack(err)
	}

	role.ID = roleM.ID

	return nil
}

func (repo *roleRepository) FindByID(ctx context.Context, id int64) (*entity.Role, error) {
	roleM := new(model.RoleModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(roleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toRoleDomain(roleM), nil
}

func (repo *roleRepository) List(ctx context.Context) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Order("id").
		Find(&roleModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

func (repo *roleRepository) Update(ctx context.Context, role *entity.Role) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RoleModel{}).
		Where("id = ?", role.ID).
		Updates(map[string]any{
			"name":        role.Name,
			"description": role.Description,
		})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

func (repo *roleRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.RoleModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleNotFound
	}

	return nil
}

// Assign links a user to a role. Assigning twice is a no-op.
func (repo *roleRepository) Assign(ctx context.Context, link entity.UserRole) error {
	linkM := &model.UserRoleModel{UserID: link.UserID, RoleID: link.RoleID}

	if err := repo.db.WithContext(ctx).Create(linkM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrRoleNotFound
		}

		return errors.WithStack(err)
	}

	return nil
}

// Unassign removes a user-role link.
func (repo *roleRepository) Unassign(ctx context.Context, link entity.UserRole) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND role_id = ?", link.UserID, link.RoleID).
		Delete(&model.UserRoleModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRoleAssignmentNotFound
	}

	return nil
}

// ListByUser retrieves all roles assigned to a user.
func (repo *roleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Joins("JOIN users_roles ON users_roles.role_id = roles.id").
		Where("users_roles.user_id = ?", userID).
		Order("roles.id").
		Find(&roleModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	roles := make([]*entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, toRoleDomain(roleM))
	}

	return roles, nil
}

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	return &entity.Role{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

// fromRoleDomain converts a domain Role entity to a GORM RoleModel.
func fromRoleDomain(data *entity.Role) *model.RoleModel {
	return &model.RoleModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
