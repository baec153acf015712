package razorpay

import (
	"testing"

	"florist/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSigner(t *testing.T) *signer {
	t.Helper()
	verifier, err := NewSigner(&config.PaymentConfig{KeySecret: "key_secret", WebhookSecret: "hook_secret"})
	require.NoError(t, err)

	return verifier.(*signer)
}

func TestSigner_VerifyPaymentSignature(t *testing.T) {
	s := newTestSigner(t)
	sig := Sign([]byte("key_secret"), []byte("order_A|pay_1"))

	assert.True(t, s.VerifyPaymentSignature("order_A", "pay_1", sig))
	assert.False(t, s.VerifyPaymentSignature("order_A", "pay_1", ""))
	assert.False(t, s.VerifyPaymentSignature("order_A", "pay_1", "not-hex"))
	assert.False(t, s.VerifyPaymentSignature("order_A", "pay_1", Sign([]byte("hook_secret"), []byte("order_A|pay_1"))))
}

func TestSigner_RejectsSingleBitMutations(t *testing.T) {
	s := newTestSigner(t)
	gatewayOrderID, paymentID := "order_Abc123", "pay_Xyz789"
	sig := Sign([]byte("key_secret"), []byte(gatewayOrderID+"|"+paymentID))

	flip := func(in string, i int, bit uint) string {
		b := []byte(in)
		b[i] ^= 1 << bit

		return string(b)
	}

	for i := range len(gatewayOrderID) {
		for bit := range uint(8) {
			assert.False(t, s.VerifyPaymentSignature(flip(gatewayOrderID, i, bit), paymentID, sig), "order byte %d bit %d", i, bit)
		}
	}
	for i := range len(paymentID) {
		for bit := range uint(8) {
			assert.False(t, s.VerifyPaymentSignature(gatewayOrderID, flip(paymentID, i, bit), sig), "payment byte %d bit %d", i, bit)
		}
	}
}

func TestSigner_VerifyWebhookSignature(t *testing.T) {
	s := newTestSigner(t)
	body := []byte(`{"event":"payment.captured"}`)
	sig := Sign([]byte("hook_secret"), body)

	assert.True(t, s.VerifyWebhookSignature(body, sig))
	assert.False(t, s.VerifyWebhookSignature([]byte(`{"event":"payment.failed"}`), sig))
	assert.False(t, s.VerifyWebhookSignature(body, Sign([]byte("key_secret"), body)))
}

func TestNewSigner_RequiresSecrets(t *testing.T) {
	_, err := NewSigner(&config.PaymentConfig{KeySecret: "k"})
	assert.Error(t, err)
	_, err = NewSigner(nil)
	assert.Error(t, err)
}
