package main

import (
	"context"
	"log/slog"
	"os"

	"userhub/config"
	"userhub/internal/delivery"
	"userhub/internal/delivery/api"
	"userhub/internal/delivery/api/middleware"
	"userhub/internal/delivery/api/router/handler"
	"userhub/internal/infra/auth"
	"userhub/internal/infra/imaging"
	logs "userhub/internal/infra/log"
	"userhub/internal/infra/persistence/migrations"
	"userhub/internal/infra/persistence/postgres"
	"userhub/internal/infra/pubsub"
	"userhub/internal/infra/qrcode"
	"userhub/internal/infra/sentry"
	"userhub/internal/infra/storage"
	"userhub/internal/usecase/impl"

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
			migrations.Register,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			sentry.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			storage.New,
			imaging.NewPhotoProcessor,
			qrcode.New,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCredentialService,
			impl.NewProfileService,
			impl.NewListingService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewCredentialHandler,
			handler.NewProfileHandler,
			handler.NewListingHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
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
