package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// PropertyInput represents property registration data.
type PropertyInput struct {
	OwnerID     int64           `json:"ownerId" validate:"required"`
	Name        string          `json:"name" validate:"required"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	Address     *entity.Address `json:"address"`
	RentValue   float64         `json:"rentValue" validate:"gte=0"`
	Bedrooms    *int            `json:"bedrooms"`
	Bathrooms   *int            `json:"bathrooms"`
	Area        *float64        `json:"area"`

	WaterCompany             string `json:"waterCompany"`
	WaterAccountNumber       string `json:"waterAccountNumber"`
	ElectricityCompany       string `json:"electricityCompany"`
	ElectricityAccountNumber string `json:"electricityAccountNumber"`
}

// PropertyUsecase defines the interface for property management use cases
type PropertyUsecase interface {
	Create(ctx context.Context, input *PropertyInput) (*entity.Property, error)
	Get(ctx context.Context, id int64) (*entity.Property, error)
	List(ctx context.Context) ([]*entity.Property, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*entity.Property, error)
	Update(ctx context.Context, id int64, input *PropertyInput) (*entity.Property, error)
	Delete(ctx context.Context, id int64) error
}
