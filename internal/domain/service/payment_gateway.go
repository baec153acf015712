package service

import (
	"context"
	"time"
)

// CreateGatewayOrderRequest asks the gateway for a payable order.
type CreateGatewayOrderRequest struct {
	AmountMinor int64  // paise
	Currency    string // ISO 4217, e.g. INR
	Receipt     string // our order id
}

// GatewayOrder is the gateway's view of a payable order.
type GatewayOrder struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
}

// PaymentGateway creates payment intents at the external gateway.
type PaymentGateway interface {
	// CreateOrder registers a payable order and returns the gateway order id.
	CreateOrder(ctx context.Context, req CreateGatewayOrderRequest) (*GatewayOrder, error)

	// KeyID is the public key the client checkout widget needs.
	KeyID() string
}

// SignatureVerifier checks HMAC signatures produced by the gateway.
type SignatureVerifier interface {
	// VerifyPaymentSignature checks the client-side checkout signature.
	VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) bool

	// VerifyWebhookSignature checks the signature of a raw webhook body.
	VerifyWebhookSignature(body []byte, signature string) bool
}

// IntentLocker serialises payment-intent creation per order.
type IntentLocker interface {
	// Acquire takes the lock for key. acquired is false when another holder owns it.
	// release must be called by the holder and is safe to call after expiry.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, acquired bool, err error)
}
