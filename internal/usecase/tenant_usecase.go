package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// TenantInput represents tenant registration data. The guarantor, when
// present, is stored JSON-encoded on the tenant record.
type TenantInput struct {
	PersonInput
	Guarantor *entity.Guarantor `json:"guarantor"`
}

// TenantUsecase defines the interface for tenant management use cases
type TenantUsecase interface {
	Create(ctx context.Context, input *TenantInput) (*entity.Tenant, error)
	Get(ctx context.Context, id int64) (*entity.Tenant, error)
	List(ctx context.Context) ([]*entity.Tenant, error)
	Update(ctx context.Context, id int64, input *TenantInput) (*entity.Tenant, error)
	Delete(ctx context.Context, id int64) error
}
