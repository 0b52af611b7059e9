package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"imobi/internal/domain/entity"
	"imobi/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestBackupService(repos *fakeRepos, store *fakeSnapshotStore) usecase.BackupUsecase {
	svc := NewBackupService(
		repos.owners,
		repos.tenants,
		repos.properties,
		repos.contracts,
		repos.templates,
		repos.payments,
		repos,
		store,
		newDiscardLogger(),
	)
	svc.(*backupService).now = func() time.Time {
		return time.Date(2026, 3, 2, 14, 30, 0, 0, time.UTC)
	}

	return svc
}

func TestBackupService_SnapshotAndRestore(t *testing.T) {
	ctx := context.Background()
	source := newFakeRepos()
	store := newFakeSnapshotStore()

	require.NoError(t, source.owners.Create(ctx, &entity.Owner{Person: entity.Person{Name: "Ana Silva", Document: "111"}}))
	require.NoError(t, source.tenants.Create(ctx, &entity.Tenant{Person: entity.Person{Name: "Carlos", Document: "222"}}))
	require.NoError(t, source.properties.Create(ctx, &entity.Property{OwnerID: 1, Name: "Apto 302"}))
	require.NoError(t, source.contracts.Create(ctx, &entity.Contract{OwnerID: 1, TenantID: 1, PropertyID: 1, Status: entity.ContractStatusAtivo}))
	require.NoError(t, source.templates.Create(ctx, &entity.ContractTemplate{Name: "Padrão", Type: entity.ContractTypeResidential, Content: "{{owner.name}}", IsActive: true}))
	require.NoError(t, source.payments.Create(ctx, &entity.Payment{ContractID: 1, DueDate: "2026-04-10", Amount: 1200, Status: entity.PaymentStatusPendente}))

	key, err := createTestBackupService(source, store).Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "snapshot-20260302-143000.json", key)

	// The blob is a well-formed versioned snapshot.
	var snapshot usecase.Snapshot
	require.NoError(t, json.Unmarshal(store.blobs[key], &snapshot))
	assert.Equal(t, 1, snapshot.Version)
	assert.Len(t, snapshot.Owners, 1)

	// Restore into a fresh database keeps ids and cross-references.
	target := newFakeRepos()
	require.NoError(t, createTestBackupService(target, store).Restore(ctx, key))

	owner, err := target.owners.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ana Silva", owner.Name)

	contract, err := target.contracts.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), contract.PropertyID)

	payments, err := target.payments.FindByContract(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, payments, 1)
}

func TestBackupService_RestoreUnknownKey(t *testing.T) {
	svc := createTestBackupService(newFakeRepos(), newFakeSnapshotStore())

	err := svc.Restore(context.Background(), "snapshot-nope.json")
	assert.Error(t, err)
}

func TestBackupService_ListSnapshots(t *testing.T) {
	ctx := context.Background()
	store := newFakeSnapshotStore()
	svc := createTestBackupService(newFakeRepos(), store)

	_, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	keys, err := svc.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}
