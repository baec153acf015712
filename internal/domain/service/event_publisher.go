package service

import (
	"context"
	"time"
)

// OrderEventType names an order lifecycle event.
type OrderEventType string

const (
	OrderEventCreated       OrderEventType = "order.created"
	OrderEventPaid          OrderEventType = "order.paid"
	OrderEventPaymentFailed OrderEventType = "order.payment_failed"
	OrderEventCancelled     OrderEventType = "order.cancelled"
	OrderEventFulfillment   OrderEventType = "order.fulfillment_changed"
)

// OrderEvent is published after an order is created or changes state
type OrderEvent struct {
	EventID     string         `json:"event_id"`
	Type        OrderEventType `json:"type"`
	RequestID   string         `json:"request_id,omitempty"` // For distributed tracing
	OrderID     string         `json:"order_id"`
	UserID      string         `json:"user_id"`
	Status      string         `json:"status"`
	OrderStatus string         `json:"order_status"`
	AmountPaise int64          `json:"amount_paise"`
	OccurredAt  time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
