// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mercado/internal/delivery/http/middleware"
	"mercado/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	ViewHandler         *handler.ViewHandler
	CheckoutHandler     *handler.CheckoutHandler
	StoreConfigHandler  *handler.StoreConfigHandler
	AdminProductHandler *handler.AdminProductHandler
	AuthMiddleware      *middleware.AuthMiddleware
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
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Admin session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.params.AuthHandler.Login)
		authGroup.POST("/logout", r.params.AuthHandler.Logout)
	}

	// Customer-facing storefront routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/products", r.params.CatalogHandler.ListProducts)
		apiGroup.GET("/categories", r.params.CatalogHandler.ListCategories)
		apiGroup.GET("/store-config", r.params.StoreConfigHandler.GetStoreConfig)

		apiGroup.GET("/cart", r.params.CartHandler.GetCart)
		apiGroup.POST("/cart/items", r.params.CartHandler.AddItem)
		apiGroup.PATCH("/cart/items/:productId", r.params.CartHandler.UpdateItem)
		apiGroup.DELETE("/cart/items/:productId", r.params.CartHandler.RemoveItem)
		apiGroup.DELETE("/cart", r.params.CartHandler.ClearCart)
		apiGroup.POST("/cart/toggle", r.params.CartHandler.ToggleCart)

		apiGroup.GET("/view", r.params.ViewHandler.GetView)
		apiGroup.PUT("/view", r.params.ViewHandler.SetView)

		apiGroup.POST("/checkout", r.params.CheckoutHandler.Checkout)
	}

	// Admin routes guarded by the access token
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.params.AuthMiddleware.Authenticate)
	{
		adminGroup.GET("/products", r.params.AdminProductHandler.ListProducts)
		adminGroup.POST("/products", r.params.AdminProductHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.params.AdminProductHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.params.AdminProductHandler.DeleteProduct)
		adminGroup.POST("/products/reload", r.params.AdminProductHandler.ReloadCatalog)
		adminGroup.PUT("/store-config", r.params.StoreConfigHandler.UpdateStoreConfig)
	}
}
