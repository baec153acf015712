package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"florist/config"
	"florist/internal/domain/service"

	"github.com/pkg/errors"
)

// signer verifies checkout and webhook HMAC-SHA256 signatures.
type signer struct {
	keySecret     []byte
	webhookSecret []byte
}

// NewSigner creates a verifier from the key and webhook secrets.
func NewSigner(cfg *config.PaymentConfig) (service.SignatureVerifier, error) {
	if cfg == nil || cfg.KeySecret == "" {
		return nil, errors.New("razorpay key secret is required")
	}
	if cfg.WebhookSecret == "" {
		return nil, errors.New("razorpay webhook secret is required")
	}

	return &signer{
		keySecret:     []byte(cfg.KeySecret),
		webhookSecret: []byte(cfg.WebhookSecret),
	}, nil
}

// VerifyPaymentSignature checks hex(HMAC(keySecret, gatewayOrderID|paymentID)).
func (s *signer) VerifyPaymentSignature(gatewayOrderID, paymentID, signature string) bool {
	return verify(s.keySecret, []byte(gatewayOrderID+"|"+paymentID), signature)
}

// VerifyWebhookSignature checks hex(HMAC(webhookSecret, body)).
func (s *signer) VerifyWebhookSignature(body []byte, signature string) bool {
	return verify(s.webhookSecret, body, signature)
}

// Sign returns the lowercase hex HMAC-SHA256 of payload.
func Sign(secret, payload []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hex.EncodeToString(mac.Sum(nil))
}

func verify(secret, payload []byte, signature string) bool {
	if signature == "" {
		return false
	}
	got, err := hex.DecodeString(signature)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, secret)
	mac.Write(payload)

	return hmac.Equal(mac.Sum(nil), got)
}
