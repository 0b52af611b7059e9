package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	domainerrors "imobi/internal/domain/errors"
	"imobi/internal/domain/repository"
	"imobi/internal/domain/service"
	"imobi/internal/errors"
	"imobi/internal/usecase"
)

// snapshotVersion guards against restoring blobs written by a future schema.
const snapshotVersion = 1

type backupService struct {
	ownerRepo    repository.OwnerRepository
	tenantRepo   repository.TenantRepository
	propertyRepo repository.PropertyRepository
	contractRepo repository.ContractRepository
	templateRepo repository.TemplateRepository
	paymentRepo  repository.PaymentRepository
	txManager    repository.TransactionManager
	store        service.SnapshotStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewBackupService creates a new backup service instance
func NewBackupService(
	ownerRepo repository.OwnerRepository,
	tenantRepo repository.TenantRepository,
	propertyRepo repository.PropertyRepository,
	contractRepo repository.ContractRepository,
	templateRepo repository.TemplateRepository,
	paymentRepo repository.PaymentRepository,
	txManager repository.TransactionManager,
	store service.SnapshotStore,
	logger *slog.Logger,
) usecase.BackupUsecase {
	return &backupService{
		ownerRepo:    ownerRepo,
		tenantRepo:   tenantRepo,
		propertyRepo: propertyRepo,
		contractRepo: contractRepo,
		templateRepo: templateRepo,
		paymentRepo:  paymentRepo,
		txManager:    txManager,
		store:        store,
		logger:       logger,
		now:          time.Now,
	}
}

// Snapshot collects every entity into one JSON blob and writes it to the store.
func (s *backupService) Snapshot(ctx context.Context) (string, error) {
	snapshot := &usecase.Snapshot{
		Version:   snapshotVersion,
		CreatedAt: s.now().UTC(),
	}

	var err error
	if snapshot.Owners, err = s.ownerRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect owners")
	}
	if snapshot.Tenants, err = s.tenantRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect tenants")
	}
	if snapshot.Properties, err = s.propertyRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect properties")
	}
	if snapshot.Contracts, err = s.contractRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect contracts")
	}
	if snapshot.Templates, err = s.templateRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect templates")
	}
	if snapshot.Payments, err = s.paymentRepo.FindAll(ctx); err != nil {
		return "", errors.Wrap(err, "failed to collect payments")
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode snapshot")
	}

	key := "snapshot-" + snapshot.CreatedAt.Format("20060102-150405") + ".json"
	if err := s.store.Write(ctx, key, data); err != nil {
		return "", err
	}

	return key, nil
}

// Restore loads one snapshot and re-inserts its entities in one transaction,
// keeping the original ids so cross-references survive.
func (s *backupService) Restore(ctx context.Context, key string) error {
	data, err := s.store.Read(ctx, key)
	if err != nil {
		return domainerrors.ErrSnapshotNotFound.WrapMessage(key)
	}

	var snapshot usecase.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return errors.Wrap(err, "failed to decode snapshot")
	}
	if snapshot.Version > snapshotVersion {
		return errors.Errorf("snapshot version %d is newer than supported %d", snapshot.Version, snapshotVersion)
	}

	err = s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		for _, owner := range snapshot.Owners {
			if err := f.OwnerRepo().Create(ctx, owner); err != nil {
				return errors.Wrap(err, "failed to restore owner")
			}
		}
		for _, tenant := range snapshot.Tenants {
			if err := f.TenantRepo().Create(ctx, tenant); err != nil {
				return errors.Wrap(err, "failed to restore tenant")
			}
		}
		for _, property := range snapshot.Properties {
			if err := f.PropertyRepo().Create(ctx, property); err != nil {
				return errors.Wrap(err, "failed to restore property")
			}
		}
		for _, contract := range snapshot.Contracts {
			if err := f.ContractRepo().Create(ctx, contract); err != nil {
				return errors.Wrap(err, "failed to restore contract")
			}
		}
		for _, template := range snapshot.Templates {
			if err := f.TemplateRepo().Create(ctx, template); err != nil {
				return errors.Wrap(err, "failed to restore template")
			}
		}
		for _, payment := range snapshot.Payments {
			if err := f.PaymentRepo().Create(ctx, payment); err != nil {
				return errors.Wrap(err, "failed to restore payment")
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Info("snapshot restored",
		slog.String("key", key),
		slog.Int("owners", len(snapshot.Owners)),
		slog.Int("tenants", len(snapshot.Tenants)),
		slog.Int("properties", len(snapshot.Properties)),
		slog.Int("contracts", len(snapshot.Contracts)),
		slog.Int("templates", len(snapshot.Templates)),
		slog.Int("payments", len(snapshot.Payments)),
	)

	return nil
}

// ListSnapshots returns the stored snapshot keys newest-first.
func (s *backupService) ListSnapshots(ctx context.Context) ([]string, error) {
	return s.store.List(ctx)
}
