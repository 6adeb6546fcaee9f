package routes

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/config"
	"github.com/elesfuerzo/pos-api/internal/domain/enum"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/handler"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/middleware"
	"github.com/elesfuerzo/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Till      *handler.TillHandler
	Catalog   *handler.CatalogHandler
	Product   *handler.ProductHandler
	Supplier  *handler.SupplierHandler
	Purchase  *handler.PurchaseHandler
	Sales     *handler.SalesHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewOperatorRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerTillRoutes(protected, h)
		registerAdminRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.Refresh)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
	}
}

// registerTillRoutes wires the endpoints both roles may use: the checkout
// flow and the read-only catalog behind it.
func registerTillRoutes(g *gin.RouterGroup, h *Handlers) {
	till := g.Group("/till/sessions")
	{
		till.POST("", h.Till.Open)
		till.GET("/:id", h.Till.Get)
		till.DELETE("/:id", h.Till.Close)
		till.POST("/:id/items", h.Till.AddItem)
		till.POST("/:id/select", h.Till.SelectLine)
		till.POST("/:id/edit-mode", h.Till.EnterEditMode)
		till.POST("/:id/digits", h.Till.InputDigit)
		till.POST("/:id/clear", h.Till.ClearCart)
		till.PUT("/:id/payment", h.Till.SetPayment)
		till.POST("/:id/checkout", h.Till.Checkout)
	}

	catalog := g.Group("/catalog")
	{
		catalog.GET("", h.Catalog.List)
		catalog.GET("/low-stock", h.Catalog.LowStock)
	}
}

func registerAdminRoutes(g *gin.RouterGroup, h *Handlers) {
	admin := g.Group("")
	admin.Use(middleware.RequireRole(enum.UserRoleAdmin))

	products := admin.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.GET("/:id", h.Product.Get)
		products.POST("/:id/adjust", h.Product.AdjustStock)
	}

	suppliers := admin.Group("/suppliers")
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.POST("", h.Supplier.Create)
		suppliers.GET("/:id/products", h.Supplier.Products)
	}

	purchase := admin.Group("/purchase-order")
	{
		purchase.GET("", h.Purchase.Get)
		purchase.DELETE("", h.Purchase.Clear)
		purchase.POST("/items", h.Purchase.AddItem)
		purchase.PUT("/items/:productId", h.Purchase.UpdateItem)
		purchase.DELETE("/items/:productId", h.Purchase.RemoveItem)
		purchase.GET("/message", h.Purchase.Message)
		purchase.POST("/send", h.Purchase.Send)
	}

	sales := admin.Group("/sales")
	{
		sales.GET("", h.Sales.List)
		sales.GET("/:id", h.Sales.Get)
	}

	admin.GET("/dashboard", h.Dashboard.Get)
	admin.GET("/notifications", h.Dashboard.Notifications)

	users := admin.Group("/users")
	{
		users.GET("", h.User.List)
		users.PUT("/:id/role", h.User.UpdateRole)
	}
}
