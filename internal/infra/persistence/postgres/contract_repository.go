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

// contractRepository implements the repository.ContractRepository interface.
type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(db *gorm.DB) repository.ContractRepository {
	return &contractRepository{
		db: db,
	}
}

// FindByID retrieves a contract by its unique ID.
func (repo *contractRepository) FindByID(ctx context.Context, id int64) (*entity.Contract, error) {
	var contractM model.ContractModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&contractM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract by ID")
	}

	return toContractDomain(&contractM), nil
}

// FindAll retrieves every contract, newest first.
func (repo *contractRepository) FindAll(ctx context.Context) ([]*entity.Contract, error) {
	var contractModels []*model.ContractModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&contractModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contracts")
	}

	contracts := make([]*entity.Contract, 0, len(contractModels))
	for _, contractM := range contractModels {
		contracts = append(contracts, toContractDomain(contractM))
	}

	return contracts, nil
}

// FindByStatus retrieves all contracts in the given status, newest first.
func (repo *contractRepository) FindByStatus(ctx context.Context, status string) ([]*entity.Contract, error) {
	var contractModels []*model.ContractModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&contractModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list contracts by status")
	}

	contracts := make([]*entity.Contract, 0, len(contractModels))
	for _, contractM := range contractModels {
		contracts = append(contracts, toContractDomain(contractM))
	}

	return contracts, nil
}

// Create persists a new contract.
func (repo *contractRepository) Create(ctx context.Context, contract *entity.Contract) error {
	contractM := fromContractDomain(contract)

	if err := repo.db.WithContext(ctx).Create(contractM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner, tenant or property reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required contract information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contract")
	}

	// Update the entity with generated values
	contract.ID = contractM.ID
	contract.CreatedAt = contractM.CreatedAt
	contract.UpdatedAt = contractM.UpdatedAt

	return nil
}

// Update persists changes to an existing contract. Select("*") makes zeroed
// fields (cleared observations, status transitions) stick.
func (repo *contractRepository) Update(ctx context.Context, contract *entity.Contract) error {
	contractM := fromContractDomain(contract)

	result := repo.db.WithContext(ctx).
		Model(&model.ContractModel{}).
		Where("id = ?", contract.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(contractM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update contract")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContractNotFound
	}

	return nil
}

// Delete soft-deletes a contract.
func (repo *contractRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContractModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete contract")
	}
	if result.RowsAffected == 0 {
		return repository.ErrContractNotFound
	}

	return nil
}

// toContractDomain converts a GORM ContractModel to a domain Contract entity.
func toContractDomain(data *model.ContractModel) *entity.Contract {
	if data == nil {
		return nil
	}

	return &entity.Contract{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		TenantID:           data.TenantID,
		PropertyID:         data.PropertyID,
		Type:               data.Type,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		DurationMonths:     data.DurationMonths,
		RentValue:          data.RentValue,
		DepositValue:       data.DepositValue,
		FirstPaymentDate:   data.FirstPaymentDate,
		PaymentDay:         data.PaymentDay,
		Status:             data.Status,
		Observations:       data.Observations,
		IsRenewal:          data.IsRenewal,
		OriginalContractID: data.OriginalContractID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromContractDomain converts a domain Contract entity to a GORM ContractModel.
func fromContractDomain(data *entity.Contract) *model.ContractModel {
	if data == nil {
		return nil
	}

	return &model.ContractModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		TenantID:           data.TenantID,
		PropertyID:         data.PropertyID,
		Type:               data.Type,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		DurationMonths:     data.DurationMonths,
		RentValue:          data.RentValue,
		DepositValue:       data.DepositValue,
		FirstPaymentDate:   data.FirstPaymentDate,
		PaymentDay:         data.PaymentDay,
		Status:             data.Status,
		Observations:       data.Observations,
		IsRenewal:          data.IsRenewal,
		OriginalContractID: data.OriginalContractID,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}
