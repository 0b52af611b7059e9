package usecase

import (
	"context"
	"time"

	"imobi/internal/domain/entity"
)

// Snapshot is the JSON document written to the backup bucket: every business
// entity in one self-describing blob.
type Snapshot struct {
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"createdAt"`

	Owners     []*entity.Owner            `json:"owners"`
	Tenants    []*entity.Tenant           `json:"tenants"`
	Properties []*entity.Property         `json:"properties"`
	Contracts  []*entity.Contract         `json:"contracts"`
	Templates  []*entity.ContractTemplate `json:"templates"`
	Payments   []*entity.Payment          `json:"payments"`
}

// BackupUsecase defines the interface for snapshot backup and restore.
type BackupUsecase interface {
	// Snapshot collects every entity into one blob, writes it to the store
	// and returns the snapshot key.
	Snapshot(ctx context.Context) (string, error)

	// Restore loads a snapshot by key and re-inserts its entities in one
	// transaction, keeping the original ids.
	Restore(ctx context.Context, key string) error

	// ListSnapshots returns the stored snapshot keys newest-first.
	ListSnapshots(ctx context.Context) ([]string, error)
}
