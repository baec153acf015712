package usecase

import (
	"context"

	"florist/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase reconciles orders with the payment gateway.
type PaymentUsecase interface {
	CreateIntent(ctx context.Context, userID, orderID uuid.UUID) (*PaymentIntent, error)
	Verify(ctx context.Context, userID uuid.UUID, input *VerifyPaymentInput) (*entity.Order, error)
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*WebhookResult, error)
}

// PaymentIntent is what the client checkout widget needs to collect a payment.
type PaymentIntent struct {
	OrderID        uuid.UUID    `json:"order_id"`
	GatewayOrderID string       `json:"gateway_order_id"`
	Amount         entity.Money `json:"amount"`
	Currency       string       `json:"currency"`
	KeyID          string       `json:"key_id"`
}

// VerifyPaymentInput is the signed result the client receives from the gateway.
type VerifyPaymentInput struct {
	OrderID        uuid.UUID `json:"order_id"`
	GatewayOrderID string    `json:"gateway_order_id"`
	PaymentID      string    `json:"payment_id"`
	Signature      string    `json:"signature"`
}

// WebhookResult reports how an inbound notification was handled.
type WebhookResult struct {
	Event   string `json:"event"`
	OrderID string `json:"order_id,omitempty"`
	Outcome string `json:"outcome"` // applied, noop or ignored
}
