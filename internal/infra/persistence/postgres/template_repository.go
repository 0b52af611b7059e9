package postgres

import (
	"context"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// templateRepository implements the repository.TemplateRepository interface.
type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository is the constructor for templateRepository.
func NewTemplateRepository(db *gorm.DB) repository.TemplateRepository {
	return &templateRepository{
		db: db,
	}
}

// FindByID retrieves a template by ID, including deactivated and soft-deleted
// rows. Documents generated from an old template must stay reproducible.
func (repo *templateRepository) FindByID(ctx context.Context, id int64) (*entity.ContractTemplate, error) {
	var templateM model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Where("id = ?", id).
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find template by ID")
	}

	return toTemplateDomain(&templateM), nil
}

// FindFirstActiveByType retrieves the oldest active template of the given
// contract type. The created_at/id ordering makes the selection deterministic
// when several templates of one type are active.
func (repo *templateRepository) FindFirstActiveByType(ctx context.Context, contractType string) (*entity.ContractTemplate, error) {
	var templateM model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("type = ? AND is_active = ?", contractType, true).
		Order("created_at ASC, id ASC").
		First(&templateM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTemplateNotFound
		}

		return nil, errors.Wrap(err, "failed to find active template by type")
	}

	return toTemplateDomain(&templateM), nil
}

// FindAllActive retrieves every active template, oldest first.
func (repo *templateRepository) FindAllActive(ctx context.Context) ([]*entity.ContractTemplate, error) {
	var templateModels []*model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC, id ASC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active templates")
	}

	templates := make([]*entity.ContractTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

// FindAll retrieves every template, deactivated ones included, for backups.
func (repo *templateRepository) FindAll(ctx context.Context) ([]*entity.ContractTemplate, error) {
	var templateModels []*model.ContractTemplateModel

	if err := repo.db.WithContext(ctx).
		Unscoped().
		Order("created_at ASC, id ASC").
		Find(&templateModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list templates")
	}

	templates := make([]*entity.ContractTemplate, 0, len(templateModels))
	for _, templateM := range templateModels {
		templates = append(templates, toTemplateDomain(templateM))
	}

	return templates, nil
}

// Create persists a new template.
func (repo *templateRepository) Create(ctx context.Context, template *entity.ContractTemplate) error {
	templateM := fromTemplateDomain(template)

	if err := repo.db.WithContext(ctx).Create(templateM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required template information")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to create template")
	}

	// Update the entity with generated values
	template.ID = templateM.ID
	template.CreatedAt = templateM.CreatedAt
	template.UpdatedAt = templateM.UpdatedAt

	return nil
}

// Update persists changes to an existing template.
func (repo *templateRepository) Update(ctx context.Context, template *entity.ContractTemplate) error {
	templateM := fromTemplateDomain(template)

	result := repo.db.WithContext(ctx).
		Model(&model.ContractTemplateModel{}).
		Where("id = ?", template.ID).
		Select("*").
		Omit("id", "created_at", "deleted_at").
		Updates(templateM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update template")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	return nil
}

// Deactivate flips is_active off and soft-deletes the row. The row itself
// stays so FindByID keeps resolving historical references.
func (repo *templateRepository) Deactivate(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ContractTemplateModel{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to deactivate template")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTemplateNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ContractTemplateModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to deactivate template")
	}

	return nil
}

// toTemplateDomain converts a GORM ContractTemplateModel to a domain entity.
func toTemplateDomain(data *model.ContractTemplateModel) *entity.ContractTemplate {
	if data == nil {
		return nil
	}

	return &entity.ContractTemplate{
		ID:        data.ID,
		Name:      data.Name,
		Type:      data.Type,
		Content:   data.Content,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromTemplateDomain converts a domain entity to a GORM ContractTemplateModel.
func fromTemplateDomain(data *entity.ContractTemplate) *model.ContractTemplateModel {
	if data == nil {
		return nil
	}

	return &model.ContractTemplateModel{
		ID:        data.ID,
		Name:      data.Name,
		Type:      data.Type,
		Content:   data.Content,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
