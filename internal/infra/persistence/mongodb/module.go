package mongodb

import (
	"context"
	"log/slog"
	"time"

	"florist/config"
	"florist/internal/domain/lifecycle"
	"florist/internal/errors"
	"florist/internal/infra/persistence/seed"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// SeedParams defines the dependencies for loading reference data
type SeedParams struct {
	fx.In
	fx.Lifecycle

	DB     *mongo.Database
	Config *config.Config
	Logger *slog.Logger
}

// RegisterSeed upserts the configured seed file on start.
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
				return errors.Wrap(err, "failed to load mongo seed")
			}
			if err := Upsert(ctx, params.DB, data); err != nil {
				return err
			}

			params.Logger.Info("MongoDB seeded",
				slog.Int("users", len(data.Users)),
				slog.Int("products", len(data.Products)),
				slog.Int("zones", len(data.Zones)),
			)

			return nil
		},
	})
}

// Upsert writes seed users, products and zones. Existing user addresses are kept.
func Upsert(ctx context.Context, db *mongo.Database, data *seed.Data) error {
	upsert := options.Update().SetUpsert(true)
	now := time.Now()

	for i := range data.Users {
		doc := fromUser(&data.Users[i])
		_, err := db.Collection(usersCollection).UpdateOne(ctx,
			bson.M{"_id": doc.ID},
			bson.M{
				"$set":         bson.M{"name": doc.Name, "email": doc.Email, "updated_at": now},
				"$setOnInsert": bson.M{"addresses": bson.A{}, "created_at": now},
			},
			upsert,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to upsert user %s", doc.ID)
		}
	}

	replace := options.Replace().SetUpsert(true)
	for i := range data.Products {
		doc := fromProduct(&data.Products[i])
		if _, err := db.Collection(productsCollection).ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, replace); err != nil {
			return errors.Wrapf(err, "failed to upsert product %s", doc.ID)
		}
	}
	for i := range data.Zones {
		doc := fromZone(&data.Zones[i])
		if _, err := db.Collection(zonesCollection).ReplaceOne(ctx, bson.M{"_id": doc.ID}, doc, replace); err != nil {
			return errors.Wrapf(err, "failed to upsert zone %s", doc.ID)
		}
	}

	return nil
}

// Module wires the mongo storage driver
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
