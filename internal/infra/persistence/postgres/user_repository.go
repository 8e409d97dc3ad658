package postgres

import (
	"context"
	"strings"

	"pssports/internal/domain/entity"
	"pssports/internal/domain/repository"
	"pssports/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user account.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return uniqueUserError(err)
		}

		return errors.WithStack(err)
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	userM := new(model.UserModel)

	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(userM), nil
}

// FindByEmail retrieves a user by email. The projection includes the stored
// password hash; this lookup exists for the login flow.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	userM := new(model.UserModel)

	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toUserDomain(userM), nil
}

// List retrieves all user accounts.
func (repo *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []*model.UserModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&userModels).Error; err != nil {
		return nil, errors.WithStack(err)
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Update saves changes to an existing user account.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          userM.Name,
			"birth_date":    userM.BirthDate,
			"rg":            userM.RG,
			"cpf":           userM.CPF,
			"email":         userM.Email,
			"password_hash": userM.PasswordHash,
			"status":        userM.Status,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return uniqueUserError(result.Error)
		}

		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// uniqueUserError tells the two unique columns of the users table apart by
// the constraint name carried in the driver error.
func uniqueUserError(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "cpf") {
		return repository.ErrCPFTaken
	}

	return repository.ErrEmailTaken
}

// Delete removes a user account. Session rows cascade at the schema level.
func (repo *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	return &entity.User{
		ID:           data.ID,
		Name:         data.Name,
		BirthDate:    data.BirthDate,
		RG:           data.RG,
		CPF:          data.CPF,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Status:       entity.UserStatus(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Name:         data.Name,
		BirthDate:    data.BirthDate,
		RG:           data.RG,
		CPF:          data.CPF,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		Status:       string(data.Status),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
