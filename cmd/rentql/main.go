package main

import (
	"context"
	"log/slog"
	"os"

	"rentql/config"
	"rentql/internal/delivery"
	"rentql/internal/delivery/api"
	"rentql/internal/delivery/api/graphql"
	"rentql/internal/delivery/api/middleware"
	"rentql/internal/infra/auth"
	logs "rentql/internal/infra/log"
	"rentql/internal/infra/persistence"
	"rentql/internal/infra/pubsub"
	"rentql/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		pubsub.Module,
		injectService(),
		injectUsecase(),
		injectGraphQL(),
		injectDelivery(),
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
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewApartmentService,
			impl.NewPostService,
			impl.NewTechnologyService,
			impl.NewPersonService,
		),
	)
}

func injectGraphQL() fx.Option {
	return fx.Options(
		fx.Provide(
			graphql.NewResolver,
			graphql.NewSchema,
			graphql.NewHandler,
			middleware.NewAuthGate,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
