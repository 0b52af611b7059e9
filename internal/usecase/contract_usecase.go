package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// ContractInput represents contract registration data. Dates travel as civil
// date strings ("YYYY-MM-DD") exactly as they will be stored.
type ContractInput struct {
	OwnerID    int64 `json:"ownerId" validate:"required"`
	TenantID   int64 `json:"tenantId" validate:"required"`
	PropertyID int64 `json:"propertyId" validate:"required"`

	Type             string   `json:"type" validate:"omitempty,oneof=residential commercial"`
	StartDate        string   `json:"startDate" validate:"required"`
	EndDate          string   `json:"endDate" validate:"required"`
	DurationMonths   int      `json:"durationMonths" validate:"gte=0"`
	RentValue        float64  `json:"rentValue" validate:"gte=0"`
	DepositValue     *float64 `json:"depositValue"`
	FirstPaymentDate string   `json:"firstPaymentDate"`
	PaymentDay       *int     `json:"paymentDay" validate:"omitempty,min=1,max=31"`
	Status           string   `json:"status" validate:"omitempty,oneof=ativo pendente encerrado renovado"`
	Observations     string   `json:"observations"`
}

// RenewalInput carries the terms of the renewal contract. Party and property
// linkage is inherited from the original contract.
type RenewalInput struct {
	StartDate        string   `json:"startDate" validate:"required"`
	EndDate          string   `json:"endDate" validate:"required"`
	DurationMonths   int      `json:"durationMonths" validate:"gte=0"`
	RentValue        float64  `json:"rentValue" validate:"gte=0"`
	DepositValue     *float64 `json:"depositValue"`
	FirstPaymentDate string   `json:"firstPaymentDate"`
	PaymentDay       *int     `json:"paymentDay" validate:"omitempty,min=1,max=31"`
	Observations     string   `json:"observations"`
}

// ContractUsecase defines the interface for contract management use cases
type ContractUsecase interface {
	Create(ctx context.Context, input *ContractInput) (*entity.Contract, error)
	Get(ctx context.Context, id int64) (*entity.Contract, error)
	List(ctx context.Context) ([]*entity.Contract, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Contract, error)
	Update(ctx context.Context, id int64, input *ContractInput) (*entity.Contract, error)
	Delete(ctx context.Context, id int64) error

	// Renew creates a renewal contract linked back to the original and marks
	// the original "renovado" atomically. Only "ativo" and "pendente"
	// contracts can be renewed; a renewed contract can never be renewed again.
	Renew(ctx context.Context, originalID int64, input *RenewalInput) (*entity.Contract, error)
}
