package handler

import (
	"io"
	"log/slog"
	"net/http"

	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/response"
	deliverycontext "florist/internal/delivery/context"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves payment intents, client verification and gateway webhooks
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		logger:    params.Logger,
	}
}

// CreateIntentRequest asks for a gateway order for an order
type CreateIntentRequest struct {
	OrderID uuid.UUID `json:"order_id" validate:"required"`
}

// VerifyPaymentRequest carries the signed checkout result from the client
type VerifyPaymentRequest struct {
	OrderID        uuid.UUID `json:"order_id" validate:"required"`
	GatewayOrderID string    `json:"gateway_order_id" validate:"required,max=64"`
	PaymentID      string    `json:"payment_id" validate:"required,max=64"`
	Signature      string    `json:"signature" validate:"required,hexadecimal"`
}

// CreateIntent handles creating (or returning) the gateway order
func (h *PaymentHandler) CreateIntent(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CreateIntentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	intent, err := h.paymentUC.CreateIntent(c.Request().Context(), userID, req.OrderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, intent)
}

// Verify handles the client-side payment confirmation
func (h *PaymentHandler) Verify(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.paymentUC.Verify(c.Request().Context(), userID, &usecase.VerifyPaymentInput{
		OrderID:        req.OrderID,
		GatewayOrderID: req.GatewayOrderID,
		PaymentID:      req.PaymentID,
		Signature:      req.Signature,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// Webhook handles gateway notifications. The body must reach the usecase byte for byte.
func (h *PaymentHandler) Webhook(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return response.BindingError(c, "Unable to read webhook body")
	}

	result, err := h.paymentUC.HandleWebhook(c.Request().Context(), body, c.Request().Header.Get(deliverycontext.HeaderWebhookSignature))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
