package handler

import (
	"log/slog"
	"net/http"

	"florist/internal/delivery/api/response"
	"florist/internal/domain/entity"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// AdminHandler serves back-office order operations
type AdminHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// FulfillmentRequest moves an order along the delivery track
type FulfillmentRequest struct {
	OrderStatus entity.FulfillmentStatus `json:"order_status" validate:"required,oneof=PLACED SHIPPED DELIVERED CANCELLED RETURNED"`
}

// AdvanceFulfillment handles a fulfillment status change
func (h *AdminHandler) AdvanceFulfillment(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req FulfillmentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid fulfillment input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	order, err := h.orderUC.AdvanceFulfillment(c.Request().Context(), orderID, req.OrderStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}

// CancelOrder handles cancelling an unpaid order
func (h *AdminHandler) CancelOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.CancelOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, order)
}
