package impl

import (
	"context"
	"log/slog"
	"time"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/errors"
	"imobi/internal/render"
	"imobi/internal/usecase"
)

type templateService struct {
	templateRepo repository.TemplateRepository
	contractRepo repository.ContractRepository
	ownerRepo    repository.OwnerRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	processor    *render.Processor
	logger       *slog.Logger
}

// NewTemplateService creates a new template service instance
func NewTemplateService(
	templateRepo repository.TemplateRepository,
	contractRepo repository.ContractRepository,
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	processor *render.Processor,
	logger *slog.Logger,
) usecase.TemplateUsecase {
	return &templateService{
		templateRepo: templateRepo,
		contractRepo: contractRepo,
		ownerRepo:    ownerRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		processor:    processor,
		logger:       logger,
	}
}

func (s *templateService) Create(ctx context.Context, input *usecase.TemplateInput) (*entity.ContractTemplate, error) {
	template := &entity.ContractTemplate{
		Name:     input.Name,
		Type:     input.Type,
		Content:  input.Content,
		IsActive: true,
	}

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, errors.Wrap(err, "failed to create template")
	}

	return template, nil
}

func (s *templateService) Get(ctx context.Context, id int64) (*entity.ContractTemplate, error) {
	template, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template")
	}

	return template, nil
}

func (s *templateService) ListActive(ctx context.Context) ([]*entity.ContractTemplate, error) {
	templates, err := s.templateRepo.FindAllActive(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	return templates, nil
}

func (s *templateService) Update(ctx context.Context, id int64, input *usecase.TemplateInput) (*entity.ContractTemplate, error) {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Type = input.Type
	existing.Content = input.Content

	if err := s.templateRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to update template")
	}

	return existing, nil
}

func (s *templateService) Deactivate(ctx context.Context, id int64) error {
	if err := s.templateRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return domainerrors.ErrTemplateNotFound
		}

		return errors.Wrap(err, "failed to deactivate template")
	}

	return nil
}

// ProcessedByID substitutes every tag of the identified template. Inactive
// templates resolve too, so historical documents stay reproducible.
func (s *templateService) ProcessedByID(ctx context.Context, templateID, contractID int64) (*usecase.ProcessedDocument, error) {
	template, err := s.Get(ctx, templateID)
	if err != nil {
		return nil, err
	}

	return s.process(ctx, template, contractID)
}

// ProcessedByType picks the oldest active template of the contract type.
func (s *templateService) ProcessedByType(ctx context.Context, contractType string, contractID int64) (*usecase.ProcessedDocument, error) {
	template, err := s.templateRepo.FindFirstActiveByType(ctx, contractType)
	if err != nil {
		if errors.Is(err, repository.ErrTemplateNotFound) {
			return nil, domainerrors.ErrNoActiveTemplate
		}

		return nil, errors.Wrap(err, "failed to find active template by type")
	}

	return s.process(ctx, template, contractID)
}

// process hydrates the full render context for one contract and runs the
// substitution passes. Missing core entities are NotFound; only the original
// contract of a renewal is looked up softly.
func (s *templateService) process(ctx context.Context, template *entity.ContractTemplate, contractID int64) (*usecase.ProcessedDocument, error) {
	contract, err := s.contractRepo.FindByID(ctx, contractID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	owner, err := s.ownerRepo.FindByID(ctx, contract.OwnerID)
	if err != nil {
		if errors.Is(err, repository.ErrOwnerNotFound) {
			return nil, domainerrors.ErrOwnerNotFound
		}

		return nil, errors.Wrap(err, "failed to find owner")
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

	rc := &render.Context{
		Owner:       owner,
		Tenant:      tenant,
		Property:    property,
		Contract:    contract,
		GeneratedAt: time.Now(),
	}

	// The original contract of a renewal is decorative; a failed lookup
	// leaves the renewal tags empty instead of failing the document.
	if contract.IsRenewal && contract.OriginalContractID != nil {
		original, err := s.contractRepo.FindByID(ctx, *contract.OriginalContractID)
		if err != nil {
			s.logger.Warn("original contract lookup failed, leaving renewal tags empty",
				slog.Int64("contractId", contract.ID),
				slog.Int64("originalContractId", *contract.OriginalContractID),
			)
		} else {
			rc.OriginalContract = original
		}
	}

	return &usecase.ProcessedDocument{
		Template: template,
		Body:     s.processor.Process(template.Content, rc),
	}, nil
}
