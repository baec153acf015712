package handler

import (
	"net/http"

	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/response"
	"florist/internal/domain/entity"
	"florist/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
}

// DeliveryHandler quotes delivery fees
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{deliveryUC: params.DeliveryUC}
}

// QuoteRequest selects destination and slot
type QuoteRequest struct {
	Pincode string              `json:"pincode" validate:"required,pincode"`
	Type    entity.DeliveryType `json:"type" validate:"required,oneof=fixed midnight express"`
	SameDay bool                `json:"same_day"`
}

// Quote handles pricing delivery for the current cart
func (h *DeliveryHandler) Quote(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req QuoteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid delivery quote input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	quote, err := h.deliveryUC.Quote(c.Request().Context(), userID, &usecase.DeliveryQuoteInput{
		Pincode: req.Pincode,
		Type:    req.Type,
		SameDay: req.SameDay,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote)
}
