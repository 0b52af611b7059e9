package impl

import (
	"context"
	"fmt"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/domain/service"
	"imobi/internal/errors"
	"imobi/internal/render"
	"imobi/internal/usecase"
)

type paymentService struct {
	paymentRepo  repository.PaymentRepository
	contractRepo repository.ContractRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(
	paymentRepo repository.PaymentRepository,
	contractRepo repository.ContractRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
) usecase.PaymentUsecase {
	return &paymentService{
		paymentRepo:  paymentRepo,
		contractRepo: contractRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
	}
}

func (s *paymentService) Create(ctx context.Context, input *usecase.PaymentInput) (*entity.Payment, error) {
	// Reject dangling contract references up front.
	if _, err := s.contractRepo.FindByID(ctx, input.ContractID); err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	payment := paymentFromInput(0, input)
	if payment.Status == "" {
		payment.Status = entity.PaymentStatusPendente
	}

	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, errors.Wrap(err, "failed to create payment")
	}

	return payment, nil
}

func (s *paymentService) Get(ctx context.Context, id int64) (*entity.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

func (s *paymentService) List(ctx context.Context) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

func (s *paymentService) ListByContract(ctx context.Context, contractID int64) ([]*entity.Payment, error) {
	payments, err := s.paymentRepo.FindByContract(ctx, contractID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments by contract")
	}

	return payments, nil
}

func (s *paymentService) Update(ctx context.Context, id int64, input *usecase.PaymentInput) (*entity.Payment, error) {
	payment := paymentFromInput(id, input)

	if err := s.paymentRepo.Update(ctx, payment); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to update payment")
	}

	return s.Get(ctx, id)
}

func (s *paymentService) Delete(ctx context.Context, id int64) error {
	if err := s.paymentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}

		return errors.Wrap(err, "failed to delete payment")
	}

	return nil
}

// Slip hydrates the structured values printed on a payment slip.
func (s *paymentService) Slip(ctx context.Context, paymentID int64) (*service.SlipData, error) {
	payment, err := s.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	contract, err := s.contractRepo.FindByID(ctx, payment.ContractID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	tenant, err := s.tenantRepo.FindByID(ctx, contract.TenantID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	property, err := s.propertyRepo.FindByID(ctx, contract.PropertyID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return nil, domainerrors.ErrPropertyNotFound
		}

		return nil, errors.Wrap(err, "failed to find property")
	}

	referenceMonth := render.MonthName(payment.DueDate)
	if year := render.YearOf(payment.DueDate); referenceMonth != "" && year != "" {
		referenceMonth = referenceMonth + " de " + year
	}

	return &service.SlipData{
		PaymentID:      payment.ID,
		ContractID:     contract.ID,
		TenantName:     tenant.Name,
		PropertyName:   property.Name,
		AddressLine:    entity.FormatAddressLine(property.Address),
		Amount:         payment.Amount,
		AmountInWords:  render.Extenso(int(payment.Amount)) + " reais",
		DueDate:        render.FormatDateShort(payment.DueDate),
		ReferenceMonth: referenceMonth,
		QRPayload:      slipQRPayload(payment, contract),
	}, nil
}

// slipQRPayload builds the copy-and-paste code encoded in the slip QR. The
// pipe-separated shape is what the front office scanner expects.
func slipQRPayload(payment *entity.Payment, contract *entity.Contract) string {
	return fmt.Sprintf("IMOBI|recibo:%d|contrato:%d|valor:%.2f|vencimento:%s",
		payment.ID, contract.ID, payment.Amount, payment.DueDate)
}

func paymentFromInput(id int64, input *usecase.PaymentInput) *entity.Payment {
	return &entity.Payment{
		ID:         id,
		ContractID: input.ContractID,
		DueDate:    input.DueDate,
		Amount:     input.Amount,
		Status:     input.Status,
		PaidAt:     input.PaidAt,
		Notes:      input.Notes,
	}
}
