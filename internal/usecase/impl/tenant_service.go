package impl

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

type tenantService struct {
	tenantRepo repository.TenantRepository
}

// NewTenantService creates a new tenant service instance
func NewTenantService(tenantRepo repository.TenantRepository) usecase.TenantUsecase {
	return &tenantService{
		tenantRepo: tenantRepo,
	}
}

func (s *tenantService) Create(ctx context.Context, input *usecase.TenantInput) (*entity.Tenant, error) {
	tenant := &entity.Tenant{
		Person:       personFromInput(&input.PersonInput),
		GuarantorRaw: entity.EncodeGuarantor(input.Guarantor),
	}

	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, errors.Wrap(err, "failed to create tenant")
	}

	return tenant, nil
}

func (s *tenantService) Get(ctx context.Context, id int64) (*entity.Tenant, error) {
	tenant, err := s.tenantRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to find tenant")
	}

	return tenant, nil
}

func (s *tenantService) List(ctx context.Context) ([]*entity.Tenant, error) {
	tenants, err := s.tenantRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tenants")
	}

	return tenants, nil
}

func (s *tenantService) Update(ctx context.Context, id int64, input *usecase.TenantInput) (*entity.Tenant, error) {
	tenant := &entity.Tenant{
		ID:           id,
		Person:       personFromInput(&input.PersonInput),
		GuarantorRaw: entity.EncodeGuarantor(input.Guarantor),
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, domainerrors.ErrTenantNotFound
		}

		return nil, errors.Wrap(err, "failed to update tenant")
	}

	return s.Get(ctx, id)
}

func (s *tenantService) Delete(ctx context.Context, id int64) error {
	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return domainerrors.ErrTenantNotFound
		}

		return errors.Wrap(err, "failed to delete tenant")
	}

	return nil
}
