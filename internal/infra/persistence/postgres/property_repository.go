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

// propertyRepository implements the repository.PropertyRepository interface.
type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository is the constructor for propertyRepository.
func NewPropertyRepository(db *gorm.DB) repository.PropertyRepository {
	return &propertyRepository{
		db: db,
	}
}

// FindByID retrieves a property by its unique ID.
func (repo *propertyRepository) FindByID(ctx context.Context, id int64) (*entity.Property, error) {
	var propertyM model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&propertyM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property by ID")
	}

	return toPropertyDomain(&propertyM), nil
}

// FindAll retrieves every registered property, newest first.
func (repo *propertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

// FindByOwner retrieves all properties belonging to one owner.
func (repo *propertyRepository) FindByOwner(ctx context.Context, ownerID int64) ([]*entity.Property, error) {
	var propertyModels []*model.PropertyModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&propertyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list properties by owner")
	}

	properties := make([]*entity.Property, 0, len(propertyModels))
	for _, propertyM := range propertyModels {
		properties = append(properties, toPropertyDomain(propertyM))
	}

	return properties, nil
}

// Create persists a new property.
func (repo *propertyRepository) Create(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	if err := repo.db.WithContext(ctx).Create(propertyM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required property information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create property")
	}

	// Update the entity with generated values
	property.ID = propertyM.ID
	property.CreatedAt = propertyM.CreatedAt
	property.UpdatedAt = propertyM.UpdatedAt

	return nil
}

// Update persists changes to an existing property.
func (repo *propertyRepository) Update(ctx context.Context, property *entity.Property) error {
	propertyM := fromPropertyDomain(property)

	result := repo.db.WithContext(ctx).
		Model(&model.PropertyModel{}).
		Where("id = ?", property.ID).
		Updates(propertyM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// Delete soft-deletes a property.
func (repo *propertyRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PropertyModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete property")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPropertyNotFound
	}

	return nil
}

// toPropertyDomain converts a GORM PropertyModel to a domain Property entity.
func toPropertyDomain(data *model.PropertyModel) *entity.Property {
	if data == nil {
		return nil
	}

	return &entity.Property{
		ID:                       data.ID,
		OwnerID:                  data.OwnerID,
		Name:                     data.Name,
		Type:                     data.Type,
		Description:              data.Description,
		Address:                  entity.DecodeAddress(data.Address),
		RentValue:                data.RentValue,
		Bedrooms:                 data.Bedrooms,
		Bathrooms:                data.Bathrooms,
		Area:                     data.Area,
		WaterCompany:             data.WaterCompany,
		WaterAccountNumber:       data.WaterAccountNumber,
		ElectricityCompany:       data.ElectricityCompany,
		ElectricityAccountNumber: data.ElectricityAccountNumber,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}

// fromPropertyDomain converts a domain Property entity to a GORM PropertyModel.
func fromPropertyDomain(data *entity.Property) *model.PropertyModel {
	if data == nil {
		return nil
	}

	return &model.PropertyModel{
		ID:                       data.ID,
		OwnerID:                  data.OwnerID,
		Name:                     data.Name,
		Type:                     data.Type,
		Description:              data.Description,
		Address:                  entity.EncodeAddress(data.Address),
		RentValue:                data.RentValue,
		Bedrooms:                 data.Bedrooms,
		Bathrooms:                data.Bathrooms,
		Area:                     data.Area,
		WaterCompany:             data.WaterCompany,
		WaterAccountNumber:       data.WaterAccountNumber,
		ElectricityCompany:       data.ElectricityCompany,
		ElectricityAccountNumber: data.ElectricityAccountNumber,
		CreatedAt:                data.CreatedAt,
		UpdatedAt:                data.UpdatedAt,
	}
}
