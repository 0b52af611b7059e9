// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"imobi/internal/delivery/http/middleware"
	"imobi/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	OwnerHandler    *handler.OwnerHandler
	TenantHandler   *handler.TenantHandler
	PropertyHandler *handler.PropertyHandler
	ContractHandler *handler.ContractHandler
	TemplateHandler *handler.TemplateHandler
	DocumentHandler *handler.DocumentHandler
	PaymentHandler  *handler.PaymentHandler
	BackupHandler   *handler.BackupHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", p.SessionHandler.Login)
	}

	// Back-office routes that require authentication
	api := e.Group("/api/v1")
	api.Use(p.AuthMiddleware.Authenticate)

	ownerGroup := api.Group("/owners")
	{
		ownerGroup.POST("", p.OwnerHandler.Create)
		ownerGroup.GET("", p.OwnerHandler.List)
		ownerGroup.GET("/:id", p.OwnerHandler.Get)
		ownerGroup.PUT("/:id", p.OwnerHandler.Update)
		ownerGroup.DELETE("/:id", p.OwnerHandler.Delete)
		ownerGroup.GET("/:id/properties", p.PropertyHandler.ListByOwner)
	}

	tenantGroup := api.Group("/tenants")
	{
		tenantGroup.POST("", p.TenantHandler.Create)
		tenantGroup.GET("", p.TenantHandler.List)
		tenantGroup.GET("/:id", p.TenantHandler.Get)
		tenantGroup.PUT("/:id", p.TenantHandler.Update)
		tenantGroup.DELETE("/:id", p.TenantHandler.Delete)
	}

	propertyGroup := api.Group("/properties")
	{
		propertyGroup.POST("", p.PropertyHandler.Create)
		propertyGroup.GET("", p.PropertyHandler.List)
		propertyGroup.GET("/:id", p.PropertyHandler.Get)
		propertyGroup.PUT("/:id", p.PropertyHandler.Update)
		propertyGroup.DELETE("/:id", p.PropertyHandler.Delete)
	}

	contractGroup := api.Group("/contracts")
	{
		contractGroup.POST("", p.ContractHandler.Create)
		contractGroup.GET("", p.ContractHandler.List)
		contractGroup.GET("/:id", p.ContractHandler.Get)
		contractGroup.PUT("/:id", p.ContractHandler.Update)
		contractGroup.DELETE("/:id", p.ContractHandler.Delete)
		contractGroup.POST("/:id/renew", p.ContractHandler.Renew)
		contractGroup.GET("/:id/payments", p.PaymentHandler.ListByContract)
		contractGroup.GET("/:id/document", p.DocumentHandler.Generate)
		contractGroup.GET("/:id/document/:templateId", p.DocumentHandler.GenerateWithTemplate)
	}

	paymentGroup := api.Group("/payments")
	{
		paymentGroup.POST("", p.PaymentHandler.Create)
		paymentGroup.GET("", p.PaymentHandler.List)
		paymentGroup.GET("/:id", p.PaymentHandler.Get)
		paymentGroup.PUT("/:id", p.PaymentHandler.Update)
		paymentGroup.DELETE("/:id", p.PaymentHandler.Delete)
		paymentGroup.GET("/:id/slip", p.PaymentHandler.Slip)
	}

	templateGroup := api.Group("/templates")
	{
		templateGroup.GET("", p.TemplateHandler.List)
		templateGroup.GET("/:id", p.TemplateHandler.Get)

		// Template mutations are restricted to administrators.
		templateGroup.POST("", p.TemplateHandler.Create, p.AuthMiddleware.RequireRole("admin"))
		templateGroup.PUT("/:id", p.TemplateHandler.Update, p.AuthMiddleware.RequireRole("admin"))
		templateGroup.DELETE("/:id", p.TemplateHandler.Deactivate, p.AuthMiddleware.RequireRole("admin"))
	}

	// Backup routes require authentication and the "admin" role
	backupGroup := api.Group("/backup")
	backupGroup.Use(p.AuthMiddleware.RequireRole("admin"))
	{
		backupGroup.POST("", p.BackupHandler.Snapshot)
		backupGroup.GET("", p.BackupHandler.List)
		backupGroup.POST("/:key/restore", p.BackupHandler.Restore)
	}
}
