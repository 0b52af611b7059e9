package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrTenantNotFound is returned when a tenant lookup finds no record.
var ErrTenantNotFound = errors.New("tenant not found")

// TenantRepository is the persistence boundary for tenants.
type TenantRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Tenant, error)
	FindAll(ctx context.Context) ([]*entity.Tenant, error)
	Create(ctx context.Context, tenant *entity.Tenant) error
	Update(ctx context.Context, tenant *entity.Tenant) error
	Delete(ctx context.Context, id int64) error
}
