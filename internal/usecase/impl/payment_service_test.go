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

func createTestPaymentService(t *testing.T) (usecase.PaymentUsecase, *fakeRepos) {
	t.Helper()
	repos := newFakeRepos()
	svc := NewPaymentService(repos.payments, repos.contracts, repos.tenants, repos.properties)

	return svc, repos
}

func TestPaymentService_CreateDefaultsToPendente(t *testing.T) {
	svc, repos := createTestPaymentService(t)
	ctx := context.Background()
	contractID := seedContractGraph(t, repos)

	payment, err := svc.Create(ctx, &usecase.PaymentInput{
		ContractID: contractID,
		DueDate:    "2026-04-10",
		Amount:     1200,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPendente, payment.Status)
}

func TestPaymentService_CreateMissingContract(t *testing.T) {
	svc, _ := createTestPaymentService(t)

	_, err := svc.Create(context.Background(), &usecase.PaymentInput{
		ContractID: 404,
		DueDate:    "2026-04-10",
		Amount:     1200,
	})
	assert.ErrorIs(t, err, domainerrors.ErrContractNotFound)
}

func TestPaymentService_Slip(t *testing.T) {
	svc, repos := createTestPaymentService(t)
	ctx := context.Background()
	contractID := seedContractGraph(t, repos)

	payment, err := svc.Create(ctx, &usecase.PaymentInput{
		ContractID: contractID,
		DueDate:    "2026-04-10",
		Amount:     1200,
	})
	require.NoError(t, err)

	slip, err := svc.Slip(ctx, payment.ID)
	require.NoError(t, err)

	assert.Equal(t, payment.ID, slip.PaymentID)
	assert.Equal(t, contractID, slip.ContractID)
	assert.Equal(t, "Carlos Pereira", slip.TenantName)
	assert.Equal(t, "Apto 302 - Ed. Aurora", slip.PropertyName)
	// Stored dates display through the civil-date compensation.
	assert.Equal(t, "09/04/2026", slip.DueDate)
	assert.Equal(t, "Abril de 2026", slip.ReferenceMonth)
	assert.Equal(t, "mil e duzentos reais", slip.AmountInWords)
	assert.Equal(t, "IMOBI|recibo:1|contrato:1|valor:1200.00|vencimento:2026-04-10", slip.QRPayload)
}

func TestPaymentService_SlipMissingPayment(t *testing.T) {
	svc, _ := createTestPaymentService(t)

	_, err := svc.Slip(context.Background(), 404)
	assert.ErrorIs(t, err, domainerrors.ErrPaymentNotFound)
}
