package mongodb

import (
	"context"

	"florist/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the repositories depend on. It is idempotent.
// The partial filters keep orders without a token or gateway id out of the unique indexes.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	stringType := bson.M{"$type": "string"}

	specs := map[string][]mongo.IndexModel{
		ordersCollection: {
			{
				Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "checkout_token", Value: 1}},
				Options: options.Index().
					SetName("uniq_user_checkout_token").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"checkout_token": stringType}),
			},
			{
				Keys: bson.D{{Key: "payment_info.gateway_order_id", Value: 1}},
				Options: options.Index().
					SetName("uniq_gateway_order_id").
					SetUnique(true).
					SetPartialFilterExpression(bson.M{"payment_info.gateway_order_id": stringType}),
			},
			{
				Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("user_created_at"),
			},
		},
		zonesCollection: {
			{
				Keys:    bson.D{{Key: "pincodes", Value: 1}},
				Options: options.Index().SetName("pincodes"),
			},
		},
	}

	for collection, models := range specs {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes on %s", collection)
		}
	}

	return nil
}
