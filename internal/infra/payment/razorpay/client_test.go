package razorpay

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"florist/config"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, baseURL string, timeout time.Duration) service.PaymentGateway {
	t.Helper()
	gateway, err := NewClient(&config.PaymentConfig{
		KeyID:     "rzp_test_key",
		KeySecret: "secret",
		BaseURL:   baseURL,
		Timeout:   timeout,
	}, newDiscardLogger())
	require.NoError(t, err)

	return gateway
}

func TestClient_CreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "secret", pass)

		var payload createOrderPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, int64(184900), payload.Amount)
		assert.Equal(t, "INR", payload.Currency)
		assert.Equal(t, "order-1", payload.Receipt)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"order_Abc123","amount":184900,"currency":"INR","status":"created"}`))
	}))
	defer server.Close()

	gateway := newTestClient(t, server.URL+"/", time.Second)
	order, err := gateway.CreateOrder(context.Background(), service.CreateGatewayOrderRequest{
		AmountMinor: 184900,
		Currency:    "INR",
		Receipt:     "order-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_Abc123", order.ID)
	assert.Equal(t, "created", order.Status)
	assert.Equal(t, "rzp_test_key", gateway.KeyID())
}

func TestClient_CreateOrder_GatewayErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		timeout time.Duration
	}{
		{
			name: "rejected",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":{"code":"BAD_REQUEST_ERROR","description":"amount too low"}}`))
			},
			timeout: time.Second,
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusServiceUnavailable)
			},
			timeout: time.Second,
		},
		{
			name: "missing id",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"status":"created"}`))
			},
			timeout: time.Second,
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				time.Sleep(200 * time.Millisecond)
				_, _ = w.Write([]byte(`{"id":"order_late"}`))
			},
			timeout: 20 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			gateway := newTestClient(t, server.URL, tt.timeout)
			order, err := gateway.CreateOrder(context.Background(), service.CreateGatewayOrderRequest{AmountMinor: 100, Currency: "INR", Receipt: "r"})
			assert.Nil(t, order)
			assert.True(t, errors.Is(err, domainerrors.ErrPaymentGateway), "got %v", err)
		})
	}
}

func TestNewClient_RequiresCredentials(t *testing.T) {
	_, err := NewClient(&config.PaymentConfig{KeyID: "k"}, newDiscardLogger())
	assert.Error(t, err)
}
