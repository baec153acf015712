package handler

import (
	"log/slog"
	"net/http"

	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/response"
	"florist/internal/domain/entity"
	"florist/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the shopper's cart
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest adds a simple product line
type AddItemRequest struct {
	ProductID uuid.UUID   `json:"product_id" validate:"required"`
	Size      entity.Size `json:"size" validate:"omitempty,oneof=small medium large"`
	Quantity  int         `json:"quantity" validate:"required,min=1,max=99"`
}

// ComboItemRequest is one component of a combo
type ComboItemRequest struct {
	ProductID uuid.UUID   `json:"product_id" validate:"required"`
	Size      entity.Size `json:"size" validate:"omitempty,oneof=small medium large"`
	Color     string      `json:"color" validate:"omitempty,max=32"`
	Quantity  int         `json:"quantity" validate:"required,min=1,max=99"`
}

// AddComboRequest adds a discounted bundle
type AddComboRequest struct {
	Items           []ComboItemRequest `json:"items" validate:"required,min=1,dive"`
	DeliveryPincode string             `json:"delivery_pincode" validate:"omitempty,pincode"`
}

// UpdateQuantityRequest sets the quantity of a simple line
type UpdateQuantityRequest struct {
	ProductID uuid.UUID   `json:"product_id" validate:"required"`
	Size      entity.Size `json:"size" validate:"omitempty,oneof=small medium large"`
	Color     string      `json:"color" validate:"omitempty,max=32"`
	Quantity  int         `json:"quantity" validate:"required,min=1,max=99"`
}

// RemoveItemRequest drops every simple line of a product
type RemoveItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
}

// Add handles adding a simple item
func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.AddSimple(c.Request().Context(), userID, &usecase.AddSimpleItemInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// AddCombo handles adding a combo
func (h *CartHandler) AddCombo(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req AddComboRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid combo input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	items := make([]usecase.ComboItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.ComboItemInput{
			ProductID: item.ProductID,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
		})
	}

	cart, err := h.cartUC.AddCombo(c.Request().Context(), userID, &usecase.AddComboInput{
		Items:           items,
		DeliveryPincode: req.DeliveryPincode,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// UpdateQuantity handles setting a simple line's quantity
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid quantity input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), userID, &usecase.UpdateQuantityInput{
		ProductID: req.ProductID,
		Size:      req.Size,
		Color:     req.Color,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Remove handles removing a product from the cart
func (h *CartHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req RemoveItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid remove input")
	}
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	cart, err := h.cartUC.Remove(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// RemoveLine handles removing one line, simple or combo, by its id
func (h *CartHandler) RemoveLine(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	lineID, err := uuid.Parse(c.Param("lineId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	cart, err := h.cartUC.RemoveLine(c.Request().Context(), userID, lineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}

// Get handles reading the cart
func (h *CartHandler) Get(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	cart, err := h.cartUC.Get(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart)
}
