package main

import (
	"context"
	"log/slog"
	"os"

	"imobi/config"
	"imobi/internal/delivery"
	"imobi/internal/delivery/http"
	"imobi/internal/delivery/http/middleware"
	"imobi/internal/delivery/http/router/handler"
	"imobi/internal/domain/service"
	"imobi/internal/infra/auth"
	"imobi/internal/infra/backup"
	"imobi/internal/infra/document"
	logs "imobi/internal/infra/log"
	"imobi/internal/infra/persistence/postgres"
	"imobi/internal/render"
	"imobi/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewOwnerRepository,
			postgres.NewTenantRepository,
			postgres.NewPropertyRepository,
			postgres.NewContractRepository,
			postgres.NewTemplateRepository,
			postgres.NewPaymentRepository,
			postgres.NewAdminUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			document.NewRenderer,
			render.NewProcessor,
			newSnapshotStore,
		),
	)
}

// newSnapshotStore opens the backup bucket and ties its closer to the Fx
// lifecycle so the store shuts down cleanly with the app.
func newSnapshotStore(lc fx.Lifecycle, ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.SnapshotStore, error) {
	store, closer, err := backup.NewBlobStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return closer()
		},
	})

	return store, nil
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewOwnerService,
			impl.NewTenantService,
			impl.NewPropertyService,
			impl.NewContractService,
			impl.NewTemplateService,
			impl.NewPaymentService,
			impl.NewBackupService,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewOwnerHandler,
			handler.NewTenantHandler,
			handler.NewPropertyHandler,
			handler.NewContractHandler,
			handler.NewTemplateHandler,
			handler.NewDocumentHandler,
			handler.NewPaymentHandler,
			handler.NewBackupHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
