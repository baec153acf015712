// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the shopper account as seen by the order engine.
// Accounts are issued elsewhere; checkout only reads them and appends addresses.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Addresses []Address // Saved delivery addresses, oldest first.
	CreatedAt time.Time
	UpdatedAt time.Time
}
