// Package backup persists whole-database snapshots to a gocloud blob bucket.
// The bucket URL decides the backend; the file driver is linked in by
// default, other drivers (s3, gcs) only need their import added.
package backup

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // enables file:// bucket URLs

	"imobi/config"
	"imobi/internal/domain/service"
	"imobi/internal/util"
)

// blobStore implements the service.SnapshotStore interface.
type blobStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
}

// NewBlobStore opens the configured bucket and returns the store. Callers own
// the returned closer; the server ties it to the fx lifecycle, the CLI defers it.
func NewBlobStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.SnapshotStore, func() error, error) {
	if cfg.Backup == nil || cfg.Backup.BucketURL == "" {
		return nil, nil, errors.New("backup bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Backup.BucketURL)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open backup bucket")
	}

	store := &blobStore{
		bucket: bucket,
		prefix: cfg.Backup.Prefix,
		logger: logger,
	}

	return store, bucket.Close, nil
}

// Write stores one snapshot blob under the given key.
func (s *blobStore) Write(ctx context.Context, key string, data []byte) error {
	fullKey := s.prefix + key

	if err := s.bucket.WriteAll(ctx, fullKey, data, nil); err != nil {
		return errors.Wrap(err, "failed to write snapshot")
	}

	s.logger.Info("snapshot written",
		slog.String("key", fullKey),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", util.CalculateChecksum(data)),
	)

	return nil
}

// Read loads one snapshot blob by key.
func (s *blobStore) Read(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, s.prefix+key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot")
	}

	return data, nil
}

// List returns the stored snapshot keys newest-first. Keys are timestamped,
// so reverse lexicographic order is reverse chronological order.
func (s *blobStore) List(ctx context.Context) ([]string, error) {
	var keys []string

	iter := s.bucket.List(&blob.ListOptions{Prefix: s.prefix})
	for {
		obj, err := iter.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, errors.Wrap(err, "failed to list snapshots")
		}
		keys = append(keys, strings.TrimPrefix(obj.Key, s.prefix))
	}

	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	return keys, nil
}
