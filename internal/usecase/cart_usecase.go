// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the shopper-facing cart operations.
// Every operation acts on the caller's own cart only.
type CartUsecase interface {
	AddSimple(ctx context.Context, userID uuid.UUID, input *AddSimpleItemInput) (*CartView, error)
	AddCombo(ctx context.Context, userID uuid.UUID, input *AddComboInput) (*CartView, error)
	UpdateQuantity(ctx context.Context, userID uuid.UUID, input *UpdateQuantityInput) (*CartView, error)
	Remove(ctx context.Context, userID, productID uuid.UUID) (*CartView, error)
	RemoveLine(ctx context.Context, userID, lineID uuid.UUID) (*CartView, error)
	Get(ctx context.Context, userID uuid.UUID) (*CartView, error)
}

// --- Input DTOs ---

// AddSimpleItemInput adds qty units of a product in an optional size.
type AddSimpleItemInput struct {
	ProductID uuid.UUID   `json:"product_id"`
	Size      entity.Size `json:"size,omitempty"`
	Quantity  int         `json:"quantity"`
}

// ComboItemInput is one requested combo component.
type ComboItemInput struct {
	ProductID uuid.UUID   `json:"product_id"`
	Size      entity.Size `json:"size,omitempty"`
	Color     string      `json:"color,omitempty"`
	Quantity  int         `json:"quantity"`
}

// AddComboInput adds a discounted bundle.
type AddComboInput struct {
	Items           []ComboItemInput `json:"items"`
	DeliveryPincode string           `json:"delivery_pincode,omitempty"`
}

// UpdateQuantityInput sets the quantity of a simple line. Color is accepted for client compatibility.
type UpdateQuantityInput struct {
	ProductID uuid.UUID   `json:"product_id"`
	Size      entity.Size `json:"size,omitempty"`
	Color     string      `json:"color,omitempty"`
	Quantity  int         `json:"quantity"`
}

// --- Output DTOs ---

// CartView is the cart as returned to the shopper.
type CartView struct {
	UserID  uuid.UUID         `json:"user_id"`
	Items   []entity.CartLine `json:"items"`
	Total   entity.Money      `json:"total"`
	Version int64             `json:"version"`
}

// NewCartView builds the view of a cart, treating nil as empty.
func NewCartView(userID uuid.UUID, cart *entity.Cart) (*CartView, error) {
	if cart == nil {
		cart = entity.NewCart(userID)
	}
	total, err := cart.Total()
	if err != nil {
		return nil, err
	}

	return &CartView{
		UserID:  cart.UserID,
		Items:   cart.Items,
		Total:   total,
		Version: cart.Version,
	}, nil
}
