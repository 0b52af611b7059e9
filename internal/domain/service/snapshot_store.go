package service

import "context"

// SnapshotStore persists whole-database backup snapshots as opaque blobs.
// The key is an implementation-defined name (usually timestamped); List
// returns keys newest-first.
type SnapshotStore interface {
	Write(ctx context.Context, key string, data []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	List(ctx context.Context) ([]string, error)
}
