package postgres

import (
	"context"
	"log/slog"

	"florist/config"
	"florist/internal/domain/lifecycle"
	"florist/internal/errors"
	"florist/internal/infra/persistence/seed"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// SeedParams defines the dependencies for loading reference data
type SeedParams struct {
	fx.In
	fx.Lifecycle

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// RegisterSeed upserts the configured seed file into the database on start.
func RegisterSeed(params SeedParams) {
	if params.Config.Storage == nil || params.Config.Storage.SeedFile == "" {
		return
	}
	path := params.Config.Storage.SeedFile

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			data, err := seed.Load(path)
			if err != nil {
				return errors.Wrap(err, "failed to load postgres seed")
			}
			if err := UpsertUsers(ctx, params.DB, data.Users); err != nil {
				return err
			}
			if err := UpsertCatalog(ctx, params.DB, data.Products, data.Zones); err != nil {
				return err
			}

			params.Logger.Info("PostgreSQL seeded",
				slog.Int("users", len(data.Users)),
				slog.Int("products", len(data.Products)),
				slog.Int("zones", len(data.Zones)),
			)

			return nil
		},
	})
}

// Module wires the postgres storage driver
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		New,
		NewTransactionManager,
		NewUserRepository,
		NewProductRepository,
		NewZoneRepository,
		NewCartRepository,
		NewOrderRepository,
	),
	fx.Invoke(RegisterSeed),
)
