package impl

import (
	"context"
	"testing"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/render"
	"imobi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateServiceFixtures struct {
	service usecase.TemplateUsecase
	repos   *fakeRepos
}

func createTestTemplateService(t *testing.T) templateServiceFixtures {
	t.Helper()
	repos := newFakeRepos()
	service := NewTemplateService(
		repos.templates,
		repos.contracts,
		repos.owners,
		repos.tenants,
		repos.properties,
		render.NewProcessor(newDiscardLogger()),
		newDiscardLogger(),
	)

	return templateServiceFixtures{service: service, repos: repos}
}

// seedContractGraph inserts a minimal owner/tenant/property/contract graph
// and returns the contract id.
func seedContractGraph(t *testing.T, repos *fakeRepos) int64 {
	t.Helper()
	ctx := context.Background()

	owner := &entity.Owner{Person: entity.Person{Name: "Ana Silva", Document: "111.222.333-44"}}
	require.NoError(t, repos.owners.Create(ctx, owner))

	tenant := &entity.Tenant{Person: entity.Person{Name: "Carlos Pereira", Document: "555.666.777-88"}}
	require.NoError(t, repos.tenants.Create(ctx, tenant))

	property := &entity.Property{
		OwnerID:   owner.ID,
		Name:      "Apto 302 - Ed. Aurora",
		RentValue: 1200,
	}
	require.NoError(t, repos.properties.Create(ctx, property))

	contract := &entity.Contract{
		OwnerID:    owner.ID,
		TenantID:   tenant.ID,
		PropertyID: property.ID,
		Type:       entity.ContractTypeResidential,
		StartDate:  "2026-03-15",
		EndDate:    "2027-03-15",
		RentValue:  1200,
		Status:     entity.ContractStatusAtivo,
	}
	require.NoError(t, repos.contracts.Create(ctx, contract))

	return contract.ID
}

func TestTemplateService_CreateAndDeactivate(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()

	template, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Residencial padrão",
		Type:    entity.ContractTypeResidential,
		Content: "Locador: {{owner.name}}",
	})
	require.NoError(t, err)
	assert.True(t, template.IsActive)

	active, err := fx.service.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	require.NoError(t, fx.service.Deactivate(ctx, template.ID))

	active, err = fx.service.ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	// Direct retrieval still works for historical reproduction.
	got, err := fx.service.Get(ctx, template.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestTemplateService_GetNotFound(t *testing.T) {
	fx := createTestTemplateService(t)

	_, err := fx.service.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domainerrors.ErrTemplateNotFound)
}

func TestTemplateService_ProcessedByID(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()
	contractID := seedContractGraph(t, fx.repos)

	template, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Residencial padrão",
		Type:    entity.ContractTypeResidential,
		Content: "Locador: {{owner.name}}, CPF: {{owner.document}}. Aluguel: {{contract.rentValue}}.",
	})
	require.NoError(t, err)

	doc, err := fx.service.ProcessedByID(ctx, template.ID, contractID)
	require.NoError(t, err)
	assert.Equal(t, template.ID, doc.Template.ID)
	assert.Equal(t, "Locador: Ana Silva, CPF: 111.222.333-44. Aluguel: R$ 1.200,00.", doc.Body)
	assert.NotContains(t, doc.Body, "{{")
}

func TestTemplateService_ProcessedByIDWorksForInactiveTemplate(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()
	contractID := seedContractGraph(t, fx.repos)

	template, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Antigo",
		Type:    entity.ContractTypeResidential,
		Content: "Locatário: {{tenant.name}}",
	})
	require.NoError(t, err)
	require.NoError(t, fx.service.Deactivate(ctx, template.ID))

	doc, err := fx.service.ProcessedByID(ctx, template.ID, contractID)
	require.NoError(t, err)
	assert.Equal(t, "Locatário: Carlos Pereira", doc.Body)
}

func TestTemplateService_ProcessedByType_PicksOldestActive(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()
	contractID := seedContractGraph(t, fx.repos)

	first, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Primeiro",
		Type:    entity.ContractTypeResidential,
		Content: "v1: {{tenant.name}}",
	})
	require.NoError(t, err)

	_, err = fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Segundo",
		Type:    entity.ContractTypeResidential,
		Content: "v2: {{tenant.name}}",
	})
	require.NoError(t, err)

	doc, err := fx.service.ProcessedByType(ctx, entity.ContractTypeResidential, contractID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, doc.Template.ID)
	assert.Equal(t, "v1: Carlos Pereira", doc.Body)

	// Deactivating the first promotes the second.
	require.NoError(t, fx.service.Deactivate(ctx, first.ID))

	doc, err = fx.service.ProcessedByType(ctx, entity.ContractTypeResidential, contractID)
	require.NoError(t, err)
	assert.Equal(t, "v2: Carlos Pereira", doc.Body)
}

func TestTemplateService_ProcessedByType_NoActiveTemplate(t *testing.T) {
	fx := createTestTemplateService(t)
	contractID := seedContractGraph(t, fx.repos)

	_, err := fx.service.ProcessedByType(context.Background(), entity.ContractTypeCommercial, contractID)
	assert.ErrorIs(t, err, domainerrors.ErrNoActiveTemplate)
}

func TestTemplateService_ProcessedMissingContract(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()

	template, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Residencial padrão",
		Type:    entity.ContractTypeResidential,
		Content: "{{owner.name}}",
	})
	require.NoError(t, err)

	_, err = fx.service.ProcessedByID(ctx, template.ID, 12345)
	assert.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestTemplateService_ProcessedRenewalTags(t *testing.T) {
	fx := createTestTemplateService(t)
	ctx := context.Background()
	originalID := seedContractGraph(t, fx.repos)

	original, err := fx.repos.contracts.FindByID(ctx, originalID)
	require.NoError(t, err)

	renewal := &entity.Contract{
		OwnerID:            original.OwnerID,
		TenantID:           original.TenantID,
		PropertyID:         original.PropertyID,
		Type:               entity.ContractTypeResidential,
		StartDate:          "2027-03-16",
		EndDate:            "2028-03-16",
		RentValue:          1350,
		Status:             entity.ContractStatusAtivo,
		IsRenewal:          true,
		OriginalContractID: &original.ID,
	}
	require.NoError(t, fx.repos.contracts.Create(ctx, renewal))

	template, err := fx.service.Create(ctx, &usecase.TemplateInput{
		Name:    "Renovação",
		Type:    entity.ContractTypeResidential,
		Content: "Contrato original nº {{contract.originalContractId}}",
	})
	require.NoError(t, err)

	doc, err := fx.service.ProcessedByID(ctx, template.ID, renewal.ID)
	require.NoError(t, err)
	assert.Equal(t, "Contrato original nº 1", doc.Body)
}
