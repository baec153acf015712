package repository

import (
	"context"
	"slices"

	"florist/internal/domain/entity"
	"florist/internal/errors"

	"github.com/google/uuid"
)

// Order persistence errors.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateCheckoutToken is returned when (user, checkout token) already has an order.
	ErrDuplicateCheckoutToken = errors.New("checkout token already used")
)

// FulfillmentChange moves order_status to To when the current value is in From.
type FulfillmentChange struct {
	From []entity.FulfillmentStatus
	To   entity.FulfillmentStatus
}

// Transition is a guarded compare-and-set on an order's mutable fields.
// Empty guard slices match any value. Zero-valued effect fields leave the stored value unchanged.
type Transition struct {
	OrderID uuid.UUID

	StatusIn      []entity.PaymentStatus
	OrderStatusIn []entity.FulfillmentStatus

	Status        entity.PaymentStatus
	PaymentMethod entity.PaymentMethod
	PaymentID     string
	Signature     string
	Fulfillment   *FulfillmentChange
}

// Admits reports whether the guard holds for order.
func (t *Transition) Admits(order *entity.Order) bool {
	if len(t.StatusIn) > 0 && !slices.Contains(t.StatusIn, order.Status) {
		return false
	}
	if len(t.OrderStatusIn) > 0 && !slices.Contains(t.OrderStatusIn, order.OrderStatus) {
		return false
	}

	return true
}

// ApplyTo writes the effects onto order. Callers check Admits first.
func (t *Transition) ApplyTo(order *entity.Order) {
	if t.Status != "" {
		order.Status = t.Status
	}
	if t.PaymentMethod != entity.PaymentMethodNone {
		order.PaymentMethod = t.PaymentMethod
	}
	if t.PaymentID != "" {
		order.PaymentInfo.PaymentID = t.PaymentID
	}
	if t.Signature != "" {
		order.PaymentInfo.Signature = t.Signature
	}
	if t.Fulfillment != nil && slices.Contains(t.Fulfillment.From, order.OrderStatus) {
		order.OrderStatus = t.Fulfillment.To
	}
}

// OrderRepository stores orders. After Create only ApplyTransition and AttachGatewayOrder mutate them.
type OrderRepository interface {
	// Create persists a new order.
	// Returns ErrDuplicateCheckoutToken when the user already has an order for the same token.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCheckoutToken retrieves the user's order created with token.
	FindByCheckoutToken(ctx context.Context, userID uuid.UUID, token string) (*entity.Order, error)

	// FindByGatewayOrderID retrieves the order bound to a payment gateway order.
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// ApplyTransition performs the guarded update atomically.
	// applied is false when the order exists but the guard did not hold.
	ApplyTransition(ctx context.Context, transition Transition) (applied bool, err error)

	// AttachGatewayOrder sets payment_info.gateway_order_id only when it is still empty.
	AttachGatewayOrder(ctx context.Context, orderID uuid.UUID, gatewayOrderID string) (applied bool, err error)
}
