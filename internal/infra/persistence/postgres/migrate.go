package postgres

import (
	"florist/internal/errors"
	"florist/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables and indexes the repositories rely on.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.UserModel{},
		&model.UserAddressModel{},
		&model.ProductModel{},
		&model.DeliveryZoneModel{},
		&model.CartModel{},
		&model.OrderModel{},
	)
	if err != nil {
		return errors.Wrap(err, "failed to migrate PostgreSQL schema")
	}

	return nil
}
