package postgres

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// adminUserRepository implements the repository.AdminUserRepository interface.
type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository is the constructor for adminUserRepository.
func NewAdminUserRepository(db *gorm.DB) repository.AdminUserRepository {
	return &adminUserRepository{
		db: db,
	}
}

// FindByID retrieves a back-office account by its unique ID.
func (repo *adminUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AdminUser, error) {
	var userM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user by ID")
	}

	return toAdminUserDomain(&userM), nil
}

// FindByEmail retrieves a back-office account by login email.
func (repo *adminUserRepository) FindByEmail(ctx context.Context, email string) (*entity.AdminUser, error) {
	var userM model.AdminUserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAdminUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find admin user by email")
	}

	return toAdminUserDomain(&userM), nil
}

// Create persists a new back-office account.
func (repo *adminUserRepository) Create(ctx context.Context, user *entity.AdminUser) error {
	userM := fromAdminUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountAlreadyExists
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create admin user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// toAdminUserDomain converts a GORM AdminUserModel to a domain AdminUser entity.
func toAdminUserDomain(data *model.AdminUserModel) *entity.AdminUser {
	if data == nil {
		return nil
	}

	return &entity.AdminUser{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAdminUserDomain converts a domain AdminUser entity to a GORM AdminUserModel.
func fromAdminUserDomain(data *entity.AdminUser) *model.AdminUserModel {
	if data == nil {
		return nil
	}

	return &model.AdminUserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
