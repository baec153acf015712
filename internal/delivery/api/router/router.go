// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"florist/internal/delivery/api/middleware"
	"florist/internal/delivery/api/router/handler"
	"florist/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	PaymentHandler  *handler.PaymentHandler
	DeliveryHandler *handler.DeliveryHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	paymentHandler  *handler.PaymentHandler
	deliveryHandler *handler.DeliveryHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		paymentHandler:  params.PaymentHandler,
		deliveryHandler: params.DeliveryHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Gateway webhooks authenticate by body signature, not by session.
	apiV1.POST("/payment/webhook", r.paymentHandler.Webhook)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	cartGroup := authed.Group("/cart")
	{
		cartGroup.POST("/add", r.cartHandler.Add)
		cartGroup.POST("/addCombo", r.cartHandler.AddCombo)
		cartGroup.POST("/updateQuantity", r.cartHandler.UpdateQuantity)
		cartGroup.POST("/remove", r.cartHandler.Remove)
		cartGroup.POST("/get", r.cartHandler.Get)
		cartGroup.DELETE("/lines/:lineId", r.cartHandler.RemoveLine)
	}

	orderGroup := authed.Group("/order")
	{
		orderGroup.POST("/checkout", r.orderHandler.Checkout)
		orderGroup.PATCH("/:id/payment-method", r.orderHandler.SelectPaymentMethod)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
	}
	authed.GET("/orders", r.orderHandler.ListOrders)

	paymentGroup := authed.Group("/payment")
	{
		paymentGroup.POST("/create", r.paymentHandler.CreateIntent)
		paymentGroup.POST("/verify", r.paymentHandler.Verify)
	}

	authed.POST("/delivery/quote", r.deliveryHandler.Quote)

	adminGroup := authed.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.PATCH("/orders/:id/fulfillment", r.adminHandler.AdvanceFulfillment)
		adminGroup.POST("/orders/:id/cancel", r.adminHandler.CancelOrder)
	}
}
