// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"florist/internal/domain/entity"
	"florist/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository reads shopper accounts. Accounts are issued elsewhere.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// AppendAddress adds a delivery address to the end of the user's saved addresses.
	AppendAddress(ctx context.Context, userID uuid.UUID, address entity.Address) error
}
