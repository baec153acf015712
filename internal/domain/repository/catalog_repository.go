package repository

import (
	"context"

	"florist/internal/domain/entity"
	"florist/internal/errors"

	"github.com/google/uuid"
)

// Catalog lookup errors.
var (
	// ErrProductNotFound is returned when no product has the requested ID.
	ErrProductNotFound = errors.New("product not found")
	// ErrZoneNotFound is returned when no active zone serves a pincode.
	ErrZoneNotFound = errors.New("delivery zone not found")
)

// ProductRepository reads catalog snapshots.
type ProductRepository interface {
	// FindByID retrieves a product, active or not.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
}

// ZoneRepository reads delivery zones.
type ZoneRepository interface {
	// FindByPincode returns the active zone whose pincode set contains pincode.
	// Returns ErrZoneNotFound for unknown pincodes and inactive zones.
	FindByPincode(ctx context.Context, pincode string) (*entity.DeliveryZone, error)
}
