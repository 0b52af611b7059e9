package repository

import (
	"context"

	"imobi/internal/domain/entity"
	"imobi/internal/errors"
)

// ErrTemplateNotFound is returned when a template lookup finds no record.
var ErrTemplateNotFound = errors.New("contract template not found")

// TemplateRepository is the persistence boundary for contract templates.
//
// FindByID returns soft-deleted templates too, so historical documents stay
// reproducible; FindFirstActiveByType and FindAllActive only ever see
// templates with IsActive = true.
type TemplateRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.ContractTemplate, error)
	// FindFirstActiveByType returns the oldest active template of the given
	// type (created_at ASC, id ASC as tie-breaker).
	FindFirstActiveByType(ctx context.Context, contractType string) (*entity.ContractTemplate, error)
	FindAllActive(ctx context.Context) ([]*entity.ContractTemplate, error)
	// FindAll returns every template including deactivated ones (backups).
	FindAll(ctx context.Context) ([]*entity.ContractTemplate, error)
	Create(ctx context.Context, template *entity.ContractTemplate) error
	Update(ctx context.Context, template *entity.ContractTemplate) error
	// Deactivate flips IsActive off; templates are never physically removed.
	Deactivate(ctx context.Context, id int64) error
}
