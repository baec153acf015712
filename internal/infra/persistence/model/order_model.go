package model

import (
	"time"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CartModel mirrors the 'carts' table, one row per user.
type CartModel struct {
	UserID    uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	Items     datatypes.JSONType[[]entity.CartLine] `gorm:"type:jsonb;not null"`
	Version   int64                                 `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartModel) TableName() string {
	return "carts"
}

// ToDomain maps the row to a cart.
func (m *CartModel) ToDomain() *entity.Cart {
	items := m.Items.Data()
	if items == nil {
		items = []entity.CartLine{}
	}

	return &entity.Cart{
		UserID:    m.UserID,
		Items:     items,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// OrderModel mirrors the 'orders' table.
// CheckoutToken and GatewayOrderID are nullable so the unique indexes ignore unset values.
type OrderModel struct {
	ID               uuid.UUID                                  `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID                                  `gorm:"type:uuid;not null;index:idx_orders_on_user_created,priority:1;uniqueIndex:idx_orders_on_user_checkout_token,priority:1"`
	CheckoutToken    *string                                    `gorm:"type:varchar(128);uniqueIndex:idx_orders_on_user_checkout_token,priority:2"`
	Items            datatypes.JSONType[[]entity.CartLine]      `gorm:"type:jsonb;not null"`
	DeliveryAddress  datatypes.JSONType[entity.Address]         `gorm:"type:jsonb;not null"`
	Delivery         datatypes.JSONType[*entity.DeliveryCharge] `gorm:"type:jsonb"`
	TotalAmountPaise int64                                      `gorm:"not null"`
	PaymentMethod    string                                     `gorm:"type:varchar(16);not null;default:''"`
	Status           string                                     `gorm:"type:varchar(32);not null;index"`
	OrderStatus      string                                     `gorm:"type:varchar(32);not null"`
	GatewayOrderID   *string                                    `gorm:"type:varchar(64);uniqueIndex"`
	PaymentID        string                                     `gorm:"type:varchar(64)"`
	Signature        string                                     `gorm:"type:varchar(128)"`
	CreatedAt        time.Time                                  `gorm:"index:idx_orders_on_user_created,priority:2,sort:desc"`
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain maps the row to an order.
func (m *OrderModel) ToDomain() *entity.Order {
	order := &entity.Order{
		ID:              m.ID,
		UserID:          m.UserID,
		Items:           m.Items.Data(),
		DeliveryAddress: m.DeliveryAddress.Data(),
		Delivery:        m.Delivery.Data(),
		TotalAmount:     entity.Money(m.TotalAmountPaise),
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		Status:          entity.PaymentStatus(m.Status),
		OrderStatus:     entity.FulfillmentStatus(m.OrderStatus),
		PaymentInfo: entity.PaymentInfo{
			PaymentID: m.PaymentID,
			Signature: m.Signature,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.CheckoutToken != nil {
		order.CheckoutToken = *m.CheckoutToken
	}
	if m.GatewayOrderID != nil {
		order.PaymentInfo.GatewayOrderID = *m.GatewayOrderID
	}
	if order.Items == nil {
		order.Items = []entity.CartLine{}
	}

	return order
}

// FromOrderDomain maps an order to a row.
func FromOrderDomain(order *entity.Order) *OrderModel {
	return &OrderModel{
		ID:               order.ID,
		UserID:           order.UserID,
		CheckoutToken:    optional(order.CheckoutToken),
		Items:            datatypes.NewJSONType(order.Items),
		DeliveryAddress:  datatypes.NewJSONType(order.DeliveryAddress),
		Delivery:         datatypes.NewJSONType(order.Delivery),
		TotalAmountPaise: order.TotalAmount.Paise(),
		PaymentMethod:    string(order.PaymentMethod),
		Status:           string(order.Status),
		OrderStatus:      string(order.OrderStatus),
		GatewayOrderID:   optional(order.PaymentInfo.GatewayOrderID),
		PaymentID:        order.PaymentInfo.PaymentID,
		Signature:        order.PaymentInfo.Signature,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
