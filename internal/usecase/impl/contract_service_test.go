package impl

import (
	"context"
	"testing"

	"imobi/internal/domain/entity"
	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contractServiceFixtures struct {
	service usecase.ContractUsecase
	repos   *fakeRepos
}

func createTestContractService(t *testing.T) contractServiceFixtures {
	t.Helper()
	repos := newFakeRepos()
	service := NewContractService(repos.contracts, repos, newDiscardLogger())

	return contractServiceFixtures{service: service, repos: repos}
}

func baseContractInput() *usecase.ContractInput {
	return &usecase.ContractInput{
		OwnerID:          1,
		TenantID:         1,
		PropertyID:       1,
		Type:             entity.ContractTypeResidential,
		StartDate:        "2026-03-15",
		EndDate:          "2027-03-15",
		DurationMonths:   12,
		RentValue:        1200,
		FirstPaymentDate: "2026-04-10",
	}
}

func TestContractService_CreateDefaultsToAtivo(t *testing.T) {
	fx := createTestContractService(t)

	contract, err := fx.service.Create(context.Background(), baseContractInput())
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusAtivo, contract.Status)
	assert.False(t, contract.IsRenewal)
	assert.Nil(t, contract.OriginalContractID)
}

func TestContractService_Renew(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	original, err := fx.service.Create(ctx, baseContractInput())
	require.NoError(t, err)

	renewal, err := fx.service.Renew(ctx, original.ID, &usecase.RenewalInput{
		StartDate:      "2027-03-16",
		EndDate:        "2028-03-16",
		DurationMonths: 12,
		RentValue:      1350,
		DepositValue:   floatPtr(1350),
	})
	require.NoError(t, err)

	assert.True(t, renewal.IsRenewal)
	require.NotNil(t, renewal.OriginalContractID)
	assert.Equal(t, original.ID, *renewal.OriginalContractID)
	assert.Equal(t, entity.ContractStatusAtivo, renewal.Status)
	assert.Equal(t, original.OwnerID, renewal.OwnerID)
	assert.Equal(t, original.TenantID, renewal.TenantID)
	assert.Equal(t, original.PropertyID, renewal.PropertyID)

	retired, err := fx.service.Get(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ContractStatusRenovado, retired.Status)
}

func TestContractService_RenewedContractCannotBeRenewedAgain(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	original, err := fx.service.Create(ctx, baseContractInput())
	require.NoError(t, err)

	_, err = fx.service.Renew(ctx, original.ID, &usecase.RenewalInput{
		StartDate: "2027-03-16",
		EndDate:   "2028-03-16",
		RentValue: 1350,
	})
	require.NoError(t, err)

	_, err = fx.service.Renew(ctx, original.ID, &usecase.RenewalInput{
		StartDate: "2028-03-17",
		EndDate:   "2029-03-17",
		RentValue: 1500,
	})
	assert.ErrorIs(t, err, domainerrors.ErrContractNotRenewable)
}

func TestContractService_RenewEncerradoRejected(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	input := baseContractInput()
	input.Status = entity.ContractStatusEncerrado
	contract, err := fx.service.Create(ctx, input)
	require.NoError(t, err)

	_, err = fx.service.Renew(ctx, contract.ID, &usecase.RenewalInput{
		StartDate: "2027-03-16",
		EndDate:   "2028-03-16",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContractNotRenewable)
}

func TestContractService_RenewMissingContract(t *testing.T) {
	fx := createTestContractService(t)

	_, err := fx.service.Renew(context.Background(), 404, &usecase.RenewalInput{
		StartDate: "2027-03-16",
		EndDate:   "2028-03-16",
	})
	assert.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestContractService_UpdatePreservesRenewalLinkage(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	original, err := fx.service.Create(ctx, baseContractInput())
	require.NoError(t, err)

	renewal, err := fx.service.Renew(ctx, original.ID, &usecase.RenewalInput{
		StartDate: "2027-03-16",
		EndDate:   "2028-03-16",
		RentValue: 1350,
	})
	require.NoError(t, err)

	input := baseContractInput()
	input.Observations = "reajuste anual"
	updated, err := fx.service.Update(ctx, renewal.ID, input)
	require.NoError(t, err)

	assert.Equal(t, "reajuste anual", updated.Observations)
	assert.True(t, updated.IsRenewal)
	require.NotNil(t, updated.OriginalContractID)
	assert.Equal(t, original.ID, *updated.OriginalContractID)
}
