package usecase

import (
	"context"

	"imobi/internal/domain/entity"
)

// TemplateInput represents contract template registration data.
type TemplateInput struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=residential commercial"`
	Content string `json:"content" validate:"required"`
}

// ProcessedDocument is a template body after full tag substitution, together
// with the template it came from (the name titles the final document).
type ProcessedDocument struct {
	Template *entity.ContractTemplate
	Body     string
}

// TemplateUsecase defines the interface for template management and document
// generation use cases.
type TemplateUsecase interface {
	Create(ctx context.Context, input *TemplateInput) (*entity.ContractTemplate, error)
	Get(ctx context.Context, id int64) (*entity.ContractTemplate, error)
	ListActive(ctx context.Context) ([]*entity.ContractTemplate, error)
	Update(ctx context.Context, id int64, input *TemplateInput) (*entity.ContractTemplate, error)
	// Deactivate soft-deletes a template; it stays retrievable by id so
	// documents generated from it remain reproducible.
	Deactivate(ctx context.Context, id int64) error

	// ProcessedByID substitutes every tag of the identified template using
	// the contract's full graph. Inactive templates are still addressable.
	ProcessedByID(ctx context.Context, templateID, contractID int64) (*ProcessedDocument, error)

	// ProcessedByType picks the first active template of the contract type
	// (oldest first) and substitutes it for the contract.
	ProcessedByType(ctx context.Context, contractType string, contractID int64) (*ProcessedDocument, error)
}
