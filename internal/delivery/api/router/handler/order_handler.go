package handler

import (
	"log/slog"
	"net/http"

	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/response"
	deliverycontext "florist/internal/delivery/context"
	"florist/internal/domain/entity"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const maxIdempotencyKeyLength = 128

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the customer's orders
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AddressRequest is the delivery address captured at checkout
type AddressRequest struct {
	Label    string `json:"label" validate:"omitempty,max=32"`
	Name     string `json:"name" validate:"required,max=128"`
	Phone    string `json:"phone" validate:"required,e164|numeric"`
	Line1    string `json:"line1" validate:"required,max=256"`
	Line2    string `json:"line2" validate:"omitempty,max=256"`
	City     string `json:"city" validate:"required,max=64"`
	State    string `json:"state" validate:"required,max=64"`
	Pincode  string `json:"pincode" validate:"required,pincode"`
	Landmark string `json:"landmark" validate:"omitempty,max=128"`
}

// DeliveryRequest selects the delivery slot
type DeliveryRequest struct {
	Type    entity.DeliveryType `json:"type" validate:"required,oneof=fixed midnight express"`
	SameDay bool                `json:"same_day"`
}

// CheckoutRequest converts the current cart into an order
type CheckoutRequest struct {
	Address  AddressRequest   `json:"address" validate:"required"`
	Delivery *DeliveryRequest `json:"delivery" validate:"omitempty"`
}

// PaymentMethodRequest chooses how the order is paid
type PaymentMethodRequest struct {
	PaymentMethod entity.PaymentMethod `json:"payment_method" validate:"required,oneof=COD ONLINE"`
}

// Checkout handles turning the cart into an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid checkout input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	token := c.Request().Header.Get(deliverycontext.HeaderIdempotencyKey)
	if len(token) > maxIdempotencyKeyLength {
		return response.BadRequest(c, "VALIDATION_FAILED", "Idempotency-Key is too long")
	}

	input := &usecase.CheckoutInput{
		Address: entity.Address{
			Label:    req.Address.Label,
			Name:     req.Address.Name,
			Phone:    req.Address.Phone,
			Line1:    req.Address.Line1,
			Line2:    req.Address.Line2,
			City:     req.Address.City,
			State:    req.Address.State,
			Pincode:  req.Address.Pincode,
			Landmark: req.Address.Landmark,
		},
		CheckoutToken: token,
	}
	if req.Delivery != nil {
		input.Delivery = &usecase.DeliveryOptionsInput{Type: req.Delivery.Type, SameDay: req.Delivery.SameDay}
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), userID, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, order)
}

// SelectPaymentMethod handles choosing COD or ONLINE payment
func (h *OrderHandler) SelectPaymentMethod(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req PaymentMethodRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment method input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.SelectPaymentMethod(c.Request().Context(), userID, orderID, req.PaymentMethod)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// GetOrder handles reading one of the caller's orders
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// ListOrders handles listing the caller's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}
