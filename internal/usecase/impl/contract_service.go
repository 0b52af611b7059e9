package impl

import (
	"context"
	"log/slog"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

type contractService struct {
	contractRepo repository.ContractRepository
	txManager    repository.TransactionManager
	logger       *slog.Logger
}

// NewContractService creates a new contract service instance
func NewContractService(
	contractRepo repository.ContractRepository,
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ContractUsecase {
	return &contractService{
		contractRepo: contractRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

func (s *contractService) Create(ctx context.Context, input *usecase.ContractInput) (*entity.Contract, error) {
	contract := contractFromInput(0, input)
	if contract.Status == "" {
		contract.Status = entity.ContractStatusAtivo
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, errors.Wrap(err, "failed to create contract")
	}

	return contract, nil
}

func (s *contractService) Get(ctx context.Context, id int64) (*entity.Contract, error) {
	contract, err := s.contractRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	return contract, nil
}

func (s *contractService) List(ctx context.Context) ([]*entity.Contract, error) {
	contracts, err := s.contractRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contracts")
	}

	return contracts, nil
}

func (s *contractService) ListByStatus(ctx context.Context, status string) ([]*entity.Contract, error) {
	contracts, err := s.contractRepo.FindByStatus(ctx, status)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list contracts by status")
	}

	return contracts, nil
}

func (s *contractService) Update(ctx context.Context, id int64, input *usecase.ContractInput) (*entity.Contract, error) {
	// Renewal linkage is owned by Renew; plain updates must not touch it.
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	contract := contractFromInput(id, input)
	contract.IsRenewal = existing.IsRenewal
	contract.OriginalContractID = existing.OriginalContractID
	if contract.Status == "" {
		contract.Status = existing.Status
	}

	if err := s.contractRepo.Update(ctx, contract); err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to update contract")
	}

	return s.Get(ctx, id)
}

func (s *contractService) Delete(ctx context.Context, id int64) error {
	if err := s.contractRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return domainerrors.ErrContractNotFound
		}

		return errors.Wrap(err, "failed to delete contract")
	}

	return nil
}

// Renew creates the renewal contract and retires the original atomically.
func (s *contractService) Renew(ctx context.Context, originalID int64, input *usecase.RenewalInput) (*entity.Contract, error) {
	var renewal *entity.Contract

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		contractRepo := f.ContractRepo()

		original, err := contractRepo.FindByID(ctx, originalID)
		if err != nil {
			if errors.Is(err, repository.ErrContractNotFound) {
				return domainerrors.ErrContractNotFound
			}

			return errors.Wrap(err, "failed to find original contract")
		}

		if !original.Renewable() {
			return domainerrors.ErrContractNotRenewable
		}

		renewal = &entity.Contract{
			OwnerID:            original.OwnerID,
			TenantID:           original.TenantID,
			PropertyID:         original.PropertyID,
			Type:               original.Type,
			StartDate:          input.StartDate,
			EndDate:            input.EndDate,
			DurationMonths:     input.DurationMonths,
			RentValue:          input.RentValue,
			DepositValue:       input.DepositValue,
			FirstPaymentDate:   input.FirstPaymentDate,
			PaymentDay:         input.PaymentDay,
			Status:             entity.ContractStatusAtivo,
			Observations:       input.Observations,
			IsRenewal:          true,
			OriginalContractID: &original.ID,
		}

		if err := contractRepo.Create(ctx, renewal); err != nil {
			return errors.Wrap(err, "failed to create renewal contract")
		}

		original.Status = entity.ContractStatusRenovado
		if err := contractRepo.Update(ctx, original); err != nil {
			return errors.Wrap(err, "failed to retire original contract")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("contract renewed",
		slog.Int64("originalId", originalID),
		slog.Int64("renewalId", renewal.ID),
	)

	return renewal, nil
}

func contractFromInput(id int64, input *usecase.ContractInput) *entity.Contract {
	return &entity.Contract{
		ID:               id,
		OwnerID:          input.OwnerID,
		TenantID:         input.TenantID,
		PropertyID:       input.PropertyID,
		Type:             input.Type,
		StartDate:        input.StartDate,
		EndDate:          input.EndDate,
		DurationMonths:   input.DurationMonths,
		RentValue:        input.RentValue,
		DepositValue:     input.DepositValue,
		FirstPaymentDate: input.FirstPaymentDate,
		PaymentDay:       input.PaymentDay,
		Status:           input.Status,
		Observations:     input.Observations,
	}
}
