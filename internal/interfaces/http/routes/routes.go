// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/domain/stock"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/bus"
)

// SetupAuthRoutes sets up authentication related routes
func SetupAuthRoutes(rg *gin.RouterGroup, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
	}
}

// SetupProductRoutes sets up product related routes
func SetupProductRoutes(rg *gin.RouterGroup, cat catalog.Catalog, stockService *stock.Service, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(cat, stockService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
	}
}

// SetupCartRoutes sets up cart related routes
func SetupCartRoutes(rg *gin.RouterGroup, cartService *cart.Service, cat catalog.Catalog, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(cartService, cat, cfg)

	// Cart routes work with guest sessions or authenticated users
	cartGroup := rg.Group("/cart")
	cartGroup.Use(middleware.OptionalAuthMiddleware(cfg))
	{
		cartGroup.GET("", cartHandler.GetCart)
		cartGroup.POST("/items", cartHandler.AddToCart)
		cartGroup.PUT("/items/:id", cartHandler.UpdateCartItem)
		cartGroup.DELETE("/items/:id", cartHandler.RemoveFromCart)
		cartGroup.DELETE("", cartHandler.ClearCart)
	}

	// Per-user cart namespace requires authentication
	users := rg.Group("/users")
	users.Use(middleware.AuthMiddleware(cfg))
	{
		users.DELETE("/me/cart/items/:id", cartHandler.RemoveFromUserCart)
	}
}

// SetupAdminRoutes sets up the privileged stock mutation routes
func SetupAdminRoutes(rg *gin.RouterGroup, stockService *stock.Service, cfg *config.Config) {
	stockHandler := handlers.NewStockHandler(stockService, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	admin.Use(middleware.AdminMiddleware())
	{
		admin.GET("/stock", stockHandler.GetStocks)
		admin.PUT("/stock/:id", stockHandler.SetStock)
		admin.POST("/stock/reset", stockHandler.ResetStocks)
	}
}

// SetupEventRoutes sets up the change signal stream
func SetupEventRoutes(rg *gin.RouterGroup, b bus.Bus) {
	eventsHandler := handlers.NewEventsHandler(b)

	rg.GET("/events", eventsHandler.Stream)
}
