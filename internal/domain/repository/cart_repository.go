package repository

import (
	"context"

	"florist/internal/domain/entity"
	"florist/internal/errors"

	"github.com/google/uuid"
)

// Cart persistence errors.
var (
	// ErrCartNotFound is returned when the user has never added to a cart.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartVersionConflict is returned when the stored version differs from the one being saved.
	ErrCartVersionConflict = errors.New("cart version conflict")
)

// CartRepository stores one cart per user with optimistic concurrency.
type CartRepository interface {
	// FindByUser retrieves the user's cart.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Save writes the cart only if the stored version still equals cart.Version.
	// Version 0 inserts a new cart. On success cart.Version is incremented.
	Save(ctx context.Context, cart *entity.Cart) error
}
