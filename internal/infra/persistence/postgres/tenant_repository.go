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

// tenantRepository implements the repository.TenantRepository interface.
type tenantRepository struct {
	db *gorm.DB
}

// NewTenantRepository is the constructor for tenantRepository.
func NewTenantRepository(db *gorm.DB) repository.TenantRepository {
	return &tenantRepository{
		db: db,
	}
}

// FindByID retrieves a tenant by its unique ID.
func (repo *tenantRepository) FindByID(ctx context.Context, id int64) (*entity.Tenant, error) {
	var tenantM model.TenantModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&tenantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant by ID")
	}

	return toTenantDomain(&tenantM), nil
}

// FindAll retrieves every registered tenant, newest first.
func (repo *tenantRepository) FindAll(ctx context.Context) ([]*entity.Tenant, error) {
	var tenantModels []*model.TenantModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&tenantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	tenants := make([]*entity.Tenant, 0, len(tenantModels))
	for _, tenantM := range tenantModels {
		tenants = append(tenants, toTenantDomain(tenantM))
	}

	return tenants, nil
}

// Create persists a new tenant.
func (repo *tenantRepository) Create(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	if err := repo.db.WithContext(ctx).Create(tenantM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required tenant information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tenant")
	}

	// Update the entity with generated values
	tenant.ID = tenantM.ID
	tenant.CreatedAt = tenantM.CreatedAt
	tenant.UpdatedAt = tenantM.UpdatedAt

	return nil
}

// Update persists changes to an existing tenant.
func (repo *tenantRepository) Update(ctx context.Context, tenant *entity.Tenant) error {
	tenantM := fromTenantDomain(tenant)

	result := repo.db.WithContext(ctx).
		Model(&model.TenantModel{}).
		Where("id = ?", tenant.ID).
		Updates(tenantM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update tenant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// Delete soft-deletes a tenant.
func (repo *tenantRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.TenantModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete tenant")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTenantNotFound
	}

	return nil
}

// toTenantDomain converts a GORM TenantModel to a domain Tenant entity. The
// guarantor stays raw; decoding is a rendering concern.
func toTenantDomain(data *model.TenantModel) *entity.Tenant {
	if data == nil {
		return nil
	}

	return &entity.Tenant{
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
		GuarantorRaw: data.Guarantor,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromTenantDomain converts a domain Tenant entity to a GORM TenantModel.
func fromTenantDomain(data *entity.Tenant) *model.TenantModel {
	if data == nil {
		return nil
	}

	return &model.TenantModel{
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
		Guarantor:     data.GuarantorRaw,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
