package main

import (
	"context"
	"log/slog"
	"os"

	"florist/config"
	"florist/internal/delivery"
	"florist/internal/delivery/api"
	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/router/handler"
	"florist/internal/domain/constants"
	"florist/internal/infra/auth"
	"florist/internal/infra/lock"
	logs "florist/internal/infra/log"
	"florist/internal/infra/payment/razorpay"
	"florist/internal/infra/persistence/memory"
	"florist/internal/infra/persistence/mongodb"
	"florist/internal/infra/persistence/postgres"
	"florist/internal/infra/pubsub"
	"florist/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		injectInfra(cfg),
		injectRepo(cfg),
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

func injectInfra(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		fx.Provide(
			logs.New,
			context.Background,
		),
	)
}

// injectRepo selects the storage driver named by storage.driver.
func injectRepo(cfg *config.Config) fx.Option {
	switch cfg.Storage.Driver {
	case constants.StorageDriverMongo:
		return mongodb.Module
	case constants.StorageDriverPostgres:
		return postgres.Module
	default:
		return memory.Module
	}
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
		),
		razorpay.Module,
		lock.Module,
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCartService,
			impl.NewOrderService,
			impl.NewPaymentService,
			impl.NewDeliveryService,
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
			handler.NewCartHandler,
			handler.NewOrderHandler,
			handler.NewPaymentHandler,
			handler.NewDeliveryHandler,
			handler.NewAdminHandler,
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
