package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is chosen by the customer after checkout. Empty means not chosen yet.
type PaymentMethod string

const (
	PaymentMethodNone   PaymentMethod = ""
	PaymentMethodCOD    PaymentMethod = "COD"
	PaymentMethodOnline PaymentMethod = "ONLINE"
)

// IsValid reports whether m is a method a customer may select.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodOnline
}

// PaymentStatus is the money dimension of an order.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentFailed    PaymentStatus = "PAYMENT_FAILED"
	PaymentPaid      PaymentStatus = "PAID"
	PaymentCancelled PaymentStatus = "CANCELLED"
)

// FulfillmentStatus is the delivery dimension of an order.
type FulfillmentStatus string

const (
	FulfillmentCreated   FulfillmentStatus = "CREATED"
	FulfillmentPlaced    FulfillmentStatus = "PLACED"
	FulfillmentShipped   FulfillmentStatus = "SHIPPED"
	FulfillmentDelivered FulfillmentStatus = "DELIVERED"
	FulfillmentCancelled FulfillmentStatus = "CANCELLED"
	FulfillmentReturned  FulfillmentStatus = "RETURNED"
)

// PaymentInfo links an order to its gateway records.
type PaymentInfo struct {
	GatewayOrderID string `json:"gateway_order_id,omitempty"`
	PaymentID      string `json:"payment_id,omitempty"`
	Signature      string `json:"signature,omitempty"`
}

// DeliveryCharge is the delivery fee frozen at checkout.
type DeliveryCharge struct {
	Pincode string       `json:"pincode"`
	ZoneID  string       `json:"zone_id"`
	Type    DeliveryType `json:"type"`
	SameDay bool         `json:"same_day"`
	Fee     Money        `json:"fee"`
}

// Order is the immutable snapshot of a checked-out cart.
// Only Status, OrderStatus, PaymentMethod and PaymentInfo change after creation.
type Order struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	CheckoutToken   string            `json:"checkout_token,omitempty"`
	Items           []CartLine        `json:"items"`
	DeliveryAddress Address           `json:"delivery_address"`
	Delivery        *DeliveryCharge   `json:"delivery,omitempty"`
	TotalAmount     Money             `json:"total_amount"`
	PaymentMethod   PaymentMethod     `json:"payment_method"`
	Status          PaymentStatus     `json:"status"`
	OrderStatus     FulfillmentStatus `json:"order_status"`
	PaymentInfo     PaymentInfo       `json:"payment_info"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

// AmountDue is what the customer is charged: the cart total plus any delivery fee.
func (o *Order) AmountDue() Money {
	if o.Delivery == nil {
		return o.TotalAmount
	}

	return o.TotalAmount + o.Delivery.Fee
}

// IsOwnedBy reports whether userID placed the order.
func (o *Order) IsOwnedBy(userID uuid.UUID) bool {
	return o.UserID == userID
}

// Clone deep-copies the order.
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = make([]CartLine, 0, len(o.Items))
	for i := range o.Items {
		cp.Items = append(cp.Items, o.Items[i].Clone())
	}
	if o.Delivery != nil {
		delivery := *o.Delivery
		cp.Delivery = &delivery
	}

	return &cp
}
