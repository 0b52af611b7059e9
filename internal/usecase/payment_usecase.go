package usecase

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/domain/service"
)

// PaymentInput represents rent payment registration data.
type PaymentInput struct {
	ContractID int64   `json:"contractId" validate:"required"`
	DueDate    string  `json:"dueDate" validate:"required"`
	Amount     float64 `json:"amount" validate:"gte=0"`
	Status     string  `json:"status" validate:"omitempty,oneof=pendente pago atrasado"`
	PaidAt     string  `json:"paidAt"`
	Notes      string  `json:"notes"`
}

// PaymentUsecase defines the interface for rent payment use cases
type PaymentUsecase interface {
	Create(ctx context.Context, input *PaymentInput) (*entity.Payment, error)
	Get(ctx context.Context, id int64) (*entity.Payment, error)
	List(ctx context.Context) ([]*entity.Payment, error)
	ListByContract(ctx context.Context, contractID int64) ([]*entity.Payment, error)
	Update(ctx context.Context, id int64, input *PaymentInput) (*entity.Payment, error)
	Delete(ctx context.Context, id int64) error

	// Slip hydrates everything a payment slip needs (tenant, property,
	// display-formatted dates and the QR payload) for the renderers.
	Slip(ctx context.Context, paymentID int64) (*service.SlipData, error)
}
