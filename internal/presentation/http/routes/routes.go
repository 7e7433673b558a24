package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/puwasa/pos-terminal/internal/config"
	"github.com/puwasa/pos-terminal/internal/presentation/http/handler"
	"github.com/puwasa/pos-terminal/internal/presentation/http/middleware"
	"github.com/puwasa/pos-terminal/internal/session"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Cart      *handler.CartHandler
	Billing   *handler.BillingHandler
	Print     *handler.PrintHandler
	Inventory *handler.InventoryHandler
	Register  *handler.RegisterHandler
	Events    *handler.EventsHandler
	Journal   *handler.JournalHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg     *config.Config
	Session *session.Session
	Logger  *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
		// Public routes (no session required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (cashier session required)
		protected := v1.Group("")
		protected.Use(middleware.RequireSession(deps.Session))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)

	// Cart
	cart := protected.Group("/cart")
	{
		cart.GET("", h.Cart.GetCart)
		cart.DELETE("", h.Cart.Clear)
		cart.POST("/items", h.Cart.AddItem)
		cart.DELETE("/items/:id", h.Cart.RemoveItem)
		cart.PUT("/items/:id/quantity", h.Cart.UpdateQuantity)
		cart.PUT("/items/:id/discount", h.Cart.UpdateDiscount)
		cart.PUT("/customer", h.Cart.SetCustomer)
		cart.DELETE("/customer", h.Cart.ClearCustomer)
	}

	// Billing
	billing := protected.Group("/billing")
	{
		billing.POST("/pay", h.Billing.Pay)
		billing.POST("/hold", h.Billing.Hold)
		billing.POST("/save", h.Billing.Save)
		billing.GET("/temporary", h.Billing.ListTemporary)
		billing.POST("/temporary/:id/resume", h.Billing.Resume)
		billing.POST("/cancel/:id", h.Billing.Cancel)
	}

	// Printing
	protected.POST("/print/reprint", h.Print.Reprint)

	// Inventory
	inventory := protected.Group("/inventory")
	{
		inventory.GET("/scan", h.Inventory.Scan)
		inventory.GET("/stock", h.Inventory.Stock)
		inventory.GET("/search", h.Inventory.Search)
		inventory.GET("", h.Inventory.All)
	}

	// Cash register
	register := protected.Group("/register")
	{
		register.POST("/ensure", h.Register.Ensure)
		register.GET("/status", h.Register.Status)
		register.POST("/open", h.Register.Open)
		register.POST("/close", h.Register.Close)
		register.POST("/cash-in", h.Register.CashIn)
		register.POST("/cash-out", h.Register.CashOut)
	}

	// Journal
	journal := protected.Group("/journal")
	{
		journal.GET("/prints", h.Journal.PrintAttempts)
		journal.GET("/sales", h.Journal.CompletedSales)
	}

	// Event stream for the UI
	protected.GET("/events", h.Events.Stream)
}
