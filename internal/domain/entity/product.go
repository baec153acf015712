package entity

import (
	"github.com/google/uuid"
)

// Size is the bouquet size a product can be ordered in.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// IsValid reports whether s is empty (flat-priced product) or one of the known sizes.
func (s Size) IsValid() bool {
	switch s {
	case "", SizeSmall, SizeMedium, SizeLarge:
		return true
	default:
		return false
	}
}

// Product is a read-only catalog snapshot.
// A product is priced either flat (Price) or per size (Pricing).
type Product struct {
	ID       uuid.UUID      `json:"id"`
	Name     string         `json:"name"`
	Price    Money          `json:"price,omitempty"`
	Pricing  map[Size]Money `json:"pricing,omitempty"`
	IsActive bool           `json:"is_active"`
}

// PriceFor returns the catalog price for size.
// An empty size resolves to the flat price.
func (p *Product) PriceFor(size Size) (Money, bool) {
	if size == "" {
		return p.Price, p.Price > 0
	}

	price, ok := p.Pricing[size]

	return price, ok && price > 0
}
