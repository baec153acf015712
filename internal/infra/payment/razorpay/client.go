// Package razorpay implements the payment gateway and signature checks against the Razorpay REST API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"florist/config"
	domainerrors "florist/internal/domain/errors"
	"florist/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	ordersPath         = "/v1/orders"
	maxErrorBodyLength = 4 << 10
)

type createOrderPayload struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// client talks to the Razorpay orders API with basic auth.
type client struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Razorpay gateway client from payment configuration.
func NewClient(cfg *config.PaymentConfig, logger *slog.Logger) (service.PaymentGateway, error) {
	if cfg == nil || cfg.KeyID == "" || cfg.KeySecret == "" {
		return nil, errors.New("razorpay key id and key secret are required")
	}

	return &client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// KeyID returns the public key id used by the checkout widget.
func (c *client) KeyID() string {
	return c.keyID
}

// CreateOrder registers a payable order. Every failure maps to ErrPaymentGateway.
func (c *client) CreateOrder(ctx context.Context, req service.CreateGatewayOrderRequest) (*service.GatewayOrder, error) {
	body, err := json.Marshal(createOrderPayload{
		Amount:   req.AmountMinor,
		Currency: req.Currency,
		Receipt:  req.Receipt,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+ordersPath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.SetBasicAuth(c.keyID, c.keySecret)

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Error("Razorpay create order request failed",
			slog.String("receipt", req.Receipt),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrPaymentGateway.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.gatewayError(resp, req.Receipt)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, domainerrors.ErrPaymentGateway.WrapMessage("decode create order response")
	}
	if order.ID == "" {
		return nil, domainerrors.ErrPaymentGateway.WrapMessage("gateway order id missing in response")
	}

	c.logger.Info("Razorpay order created",
		slog.String("receipt", req.Receipt),
		slog.String("gateway_order_id", order.ID),
		slog.Duration("latency", time.Since(start)),
	)

	return &service.GatewayOrder{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Status:   order.Status,
	}, nil
}

func (c *client) gatewayError(resp *http.Response, receipt string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))

	var parsed errorResponse
	code, description := "", ""
	if json.Unmarshal(raw, &parsed) == nil {
		code, description = parsed.Error.Code, parsed.Error.Description
	}

	c.logger.Error("Razorpay rejected create order",
		slog.String("receipt", receipt),
		slog.Int("status", resp.StatusCode),
		slog.String("code", code),
		slog.String("description", description),
	)

	return domainerrors.ErrPaymentGateway.WrapMessage(
		"razorpay status " + http.StatusText(resp.StatusCode) + ": " + code,
	)
}
