package usecase

import (
	"context"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines checkout and order management.
type OrderUsecase interface {
	// Customer operations
	Checkout(ctx context.Context, userID uuid.UUID, input *CheckoutInput) (*entity.Order, error)
	SelectPaymentMethod(ctx context.Context, userID, orderID uuid.UUID, method entity.PaymentMethod) (*entity.Order, error)
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// Back-office operations
	AdvanceFulfillment(ctx context.Context, orderID uuid.UUID, to entity.FulfillmentStatus) (*entity.Order, error)
	CancelOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}

// DeliveryOptionsInput selects a delivery slot at checkout.
type DeliveryOptionsInput struct {
	Type    entity.DeliveryType `json:"type"`
	SameDay bool                `json:"same_day"`
}

// CheckoutInput turns the current cart into an order.
// CheckoutToken makes retries of the same checkout return the same order.
type CheckoutInput struct {
	Address       entity.Address        `json:"address"`
	Delivery      *DeliveryOptionsInput `json:"delivery,omitempty"`
	CheckoutToken string                `json:"checkout_token,omitempty"`
}
