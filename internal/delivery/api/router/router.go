// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/api/middleware"
	"storefront/internal/delivery/api/router/handler"
	"storefront/internal/delivery/live"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	ProductHandler  *handler.ProductHandler
	OrderHandler    *handler.OrderHandler
	ExportHandler   *handler.ExportHandler
	DeviceHandler   *handler.DeviceHandler
	ReminderHandler *handler.ReminderHandler
	LiveHandler     *live.Handler
	AuthMiddleware  *middleware.AuthMiddleware
	Metrics         *metrics.Metrics
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	profileHandler  *handler.ProfileHandler
	productHandler  *handler.ProductHandler
	orderHandler    *handler.OrderHandler
	exportHandler   *handler.ExportHandler
	deviceHandler   *handler.DeviceHandler
	reminderHandler *handler.ReminderHandler
	liveHandler     *live.Handler
	authMiddleware  *middleware.AuthMiddleware
	metrics         *metrics.Metrics
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		profileHandler:  params.ProfileHandler,
		productHandler:  params.ProductHandler,
		orderHandler:    params.OrderHandler,
		exportHandler:   params.ExportHandler,
		deviceHandler:   params.DeviceHandler,
		reminderHandler: params.ReminderHandler,
		liveHandler:     params.LiveHandler,
		authMiddleware:  params.AuthMiddleware,
		metrics:         params.Metrics,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.config.Metrics != nil && r.config.Metrics.Enabled {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metrics.Handler()))
	}

	authenticate := r.authMiddleware.Authenticate
	customerOnly := r.authMiddleware.RequireRole(entity.RoleUser)
	adminOnly := r.authMiddleware.RequireRole(entity.RoleAdmin)

	apiV1 := e.Group("/api/v1")

	// Phone sign-in
	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/otp", r.authHandler.SendOTP)
		authGroup.POST("/otp/confirm", r.authHandler.ConfirmOTP)
		authGroup.POST("/id-token", r.authHandler.ConfirmIDToken)
		authGroup.POST("/refresh", r.authHandler.Refresh)
		authGroup.POST("/sign-out", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.Session, authenticate)
	}

	// Every route below requires an access token
	secured := apiV1.Group("", authenticate)

	profileGroup := secured.Group("/profile")
	{
		profileGroup.POST("", r.profileHandler.CompleteProfile)
		profileGroup.GET("", r.profileHandler.GetProfile)
		profileGroup.GET("/address-suggestion", r.profileHandler.SuggestAddress)
		profileGroup.GET("/deliveries/today", r.profileHandler.TodaysDeliveries)
	}

	// Catalog reads are open to every signed-in user; writes are for admins
	productsGroup := secured.Group("/products")
	{
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:id", r.productHandler.GetProduct)
		productsGroup.POST("", r.productHandler.CreateProduct, adminOnly)
		productsGroup.PUT("/:id", r.productHandler.UpdateProduct, adminOnly)
		productsGroup.DELETE("/:id", r.productHandler.DeleteProduct, adminOnly)
	}

	// Customer order routes
	myOrdersGroup := secured.Group("/my/orders", customerOnly)
	{
		myOrdersGroup.POST("", r.orderHandler.PlaceOrder)
		myOrdersGroup.GET("", r.orderHandler.ListMyOrders)
	}

	// Admin order routes
	ordersGroup := secured.Group("/orders", adminOnly)
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
		ordersGroup.PUT("/:id/payment", r.orderHandler.UpdatePayment)
	}
	secured.GET("/customers", r.orderHandler.ListCustomers, adminOnly)
	secured.GET("/dashboard", r.orderHandler.Dashboard, adminOnly)

	// PDF exports
	exportsGroup := secured.Group("/exports")
	{
		exportsGroup.POST("/invoice", r.exportHandler.Invoice, customerOnly)
		exportsGroup.POST("/report", r.exportHandler.Report, adminOnly)
		exportsGroup.GET("/files/*", r.exportHandler.Download)
	}

	// Device management routes
	devicesGroup := secured.Group("/devices")
	{
		devicesGroup.POST("", r.deviceHandler.RegisterDevice)
		devicesGroup.GET("", r.deviceHandler.GetUserDevices)
		devicesGroup.PUT("/:id/token", r.deviceHandler.UpdateFCMToken)
		devicesGroup.DELETE("/:id", r.deviceHandler.DeactivateDevice)
	}

	secured.POST("/admin/reminders", r.reminderHandler.SendReminders, adminOnly)

	// Live screens over WebSocket
	liveGroup := e.Group("/live")
	{
		liveGroup.GET("/auth", r.liveHandler.ServeAuth, r.authMiddleware.Identify)
		liveGroup.GET("/:screen", r.liveHandler.ServeScreen, authenticate)
	}
}
