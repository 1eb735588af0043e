package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kaushal774/jewelbill-api/internal/config"
	domainRepo "github.com/kaushal774/jewelbill-api/internal/domain/repository"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/handler"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/middleware"
	"github.com/kaushal774/jewelbill-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Billing   *handler.BillingHandler
	Inventory *handler.InventoryHandler
	Shop      *handler.ShopHandler
	Report    *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
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

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	shop := protected.Group("/shop")
	{
		shop.GET("", h.Shop.Get)
		shop.PUT("", h.Shop.Update)
	}

	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.GET("/:metal", h.Inventory.ListByMetal)
		inventory.POST("/restock", h.Inventory.Restock)
	}

	bills := protected.Group("/bills")
	bills.Use(middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}))
	{
		bills.POST("", h.Billing.Create)
		bills.GET("", h.Billing.List)
		bills.GET("/:id", h.Billing.Get)
		bills.GET("/:id/pdf", h.Billing.Render)
	}

	reports := protected.Group("/reports")
	{
		reports.GET("/bills/export", h.Report.Export)
		reports.GET("/daily", h.Report.DailySummary)
	}
}
