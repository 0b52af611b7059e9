package postgres

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ownerRepository implements the repository.OwnerRepository interface.
type ownerRepository struct {
	db *gorm.DB
}

// NewOwnerRepository is the constructor for ownerRepository.
func NewOwnerRepository(db *gorm.DB) repository.OwnerRepository {
	return &ownerRepository{
		db: db,
	}
}

// FindByID retrieves an owner by its unique ID.
func (repo *ownerRepository) FindByID(ctx context.Context, id int64) (*entity.Owner, error) {
	var ownerM model.OwnerModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ownerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner by ID")
	}

	return toOwnerDomain(&ownerM), nil
}

// FindAll retrieves every registered owner, newest first.
func (repo *ownerRepository) FindAll(ctx context.Context) ([]*entity.Owner, error) {
	var ownerModels []*model.OwnerModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ownerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list owners")
	}

	owners := make([]*entity.Owner, 0, len(ownerModels))
	for _, ownerM := range ownerModels {
		owners = append(owners, toOwnerDomain(ownerM))
	}

	return owners, nil
}

// Create persists a new owner.
func (repo *ownerRepository) Create(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	if err := repo.db.WithContext(ctx).Create(ownerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required owner information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create owner")
	}

	// Update the entity with generated values
	owner.ID = ownerM.ID
	owner.CreatedAt = ownerM.CreatedAt
	owner.UpdatedAt = ownerM.UpdatedAt

	return nil
}

// Update persists changes to an existing owner.
func (repo *ownerRepository) Update(ctx context.Context, owner *entity.Owner) error {
	ownerM := fromOwnerDomain(owner)

	result := repo.db.WithContext(ctx).
		Model(&model.OwnerModel{}).
		Where("id = ?", owner.ID).
		Updates(ownerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// Delete soft-deletes an owner.
func (repo *ownerRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.OwnerModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete owner")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOwnerNotFound
	}

	return nil
}

// toOwnerDomain converts a GORM OwnerModel to a domain Owner entity.
func toOwnerDomain(data *model.OwnerModel) *entity.Owner {
	if data == nil {
		return nil
	}

	return &entity.Owner{
		ID: data.ID,
		Person: entity.Person{
			Name:          data.Name,
			Document:      data.Document,
			RG:            data.RG,
			Phone:         data.Phone,
			Email:         data.Email,
			Nationality:   data.Nationality,
			Profession:    data.Profession,
			MaritalStatus: data.MaritalStatus,
			SpouseName:    data.SpouseName,
			Address:       entity.DecodeAddress(data.Address),
		},
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOwnerDomain converts a domain Owner entity to a GORM OwnerModel.
func fromOwnerDomain(data *entity.Owner) *model.OwnerModel {
	if data == nil {
		return nil
	}

	return &model.OwnerModel{
		ID:            data.ID,
		Name:          data.Name,
		Document:      data.Document,
		RG:            data.RG,
		Phone:         data.Phone,
		Email:         data.Email,
		Nationality:   data.Nationality,
		Profession:    data.Profession,
		MaritalStatus: data.MaritalStatus,
		SpouseName:    data.SpouseName,
		Address:       entity.EncodeAddress(data.Address),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
