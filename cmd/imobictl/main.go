// Command imobictl is the operator CLI: snapshot backups, restores and
// back-office account creation run here instead of the HTTP API so they work
// even when the server is down.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"imobi/config"
	"imobi/internal/infra/auth"
	"imobi/internal/infra/backup"
	logs "imobi/internal/infra/log"
	"imobi/internal/infra/persistence/postgres"
	"imobi/internal/usecase"
	"imobi/internal/usecase/impl"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	root := &cobra.Command{
		Use:           "imobictl",
		Short:         "Operator tooling for the rental back office",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Missing .env is fine; real deployments set the environment directly.
			_ = godotenv.Load()
		},
	}

	root.AddCommand(newBackupCmd(), newRestoreCmd(), newListBackupsCmd(), newCreateAdminCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// hookRunner is a minimal fx.Lifecycle so the CLI can reuse the same
// infrastructure constructors as the server.
type hookRunner struct {
	hooks []fx.Hook
}

func (r *hookRunner) Append(h fx.Hook) {
	r.hooks = append(r.hooks, h)
}

func (r *hookRunner) start(ctx context.Context) error {
	for _, h := range r.hooks {
		if h.OnStart == nil {
			continue
		}
		if err := h.OnStart(ctx); err != nil {
			return err
		}
	}

	return nil
}

func (r *hookRunner) stop(ctx context.Context) {
	for i := len(r.hooks) - 1; i >= 0; i-- {
		if r.hooks[i].OnStop == nil {
			continue
		}
		if err := r.hooks[i].OnStop(ctx); err != nil {
			slog.Error("Failed to stop component", slog.Any("error", err))
		}
	}
}

// app bundles everything a CLI command needs, built from the same
// constructors main.go wires through Fx.
type app struct {
	backups  usecase.BackupUsecase
	sessions usecase.SessionUsecase

	runner *hookRunner
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	runner := &hookRunner{}

	db, err := postgres.New(postgres.Params{Lifecycle: runner, Config: cfg, Logger: logger})
	if err != nil {
		return nil, err
	}

	store, closeStore, err := backup.NewBlobStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	runner.Append(fx.Hook{OnStop: func(context.Context) error { return closeStore() }})

	if err := runner.start(ctx); err != nil {
		runner.stop(ctx)
		return nil, err
	}

	ownerRepo := postgres.NewOwnerRepository(db)
	tenantRepo := postgres.NewTenantRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	contractRepo := postgres.NewContractRepository(db)
	templateRepo := postgres.NewTemplateRepository(db)
	paymentRepo := postgres.NewPaymentRepository(db)
	txManager := postgres.NewTransactionManager(db)

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		runner.stop(ctx)
		return nil, err
	}

	return &app{
		backups: impl.NewBackupService(
			ownerRepo, tenantRepo, propertyRepo, contractRepo,
			templateRepo, paymentRepo, txManager, store, logger,
		),
		sessions: impl.NewSessionService(
			postgres.NewAdminUserRepository(db),
			auth.NewBcryptHasher(cfg),
			tokenSvc,
			logger,
		),
		runner: runner,
	}, nil
}

func (a *app) close(ctx context.Context) {
	a.runner.stop(ctx)
}

func newBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write a full snapshot of every entity to the backup store",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			key, err := a.backups.Snapshot(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), key)

			return nil
		},
	}
}

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <key>",
		Short: "Restore a snapshot by key, keeping the original entity ids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			if err := a.backups.Restore(ctx, args[0]); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "restored", args[0])

			return nil
		},
	}
}

func newListBackupsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored snapshot keys, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			keys, err := a.backups.ListSnapshots(ctx)
			if err != nil {
				return err
			}

			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}

			return nil
		},
	}
}

func newCreateAdminCmd() *cobra.Command {
	var input usecase.AccountInput

	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create a back-office account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			user, err := a.sessions.CreateAccount(ctx, &input)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "created account", user.ID, "("+user.Email+")")

			return nil
		},
	}

	cmd.Flags().StringVar(&input.Email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&input.Name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&input.Password, "password", "", "password, minimum 8 characters (required)")
	cmd.Flags().StringVar(&input.Role, "role", "admin", `account role: "admin" or "staff"`)
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
