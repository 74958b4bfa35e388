package routes

import (
	"time"

	"github.com/bizscale/bizscale-api/internal/config"
	"github.com/bizscale/bizscale-api/internal/presentation/http/handler"
	"github.com/bizscale/bizscale-api/internal/presentation/http/middleware"
	"github.com/bizscale/bizscale-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Onboarding *handler.OnboardingHandler
	State      *handler.StateHandler
	Ledger     *handler.LedgerHandler
	Dashboard  *handler.DashboardHandler
	Insights   *handler.InsightsHandler
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
		v1.POST("/auth/login", h.Auth.Login)
		v1.GET("/onboarding/models", h.Onboarding.ListModels)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.POST("/onboarding", h.Onboarding.Complete)

		protected.GET("/state", h.State.Get)
		protected.POST("/state/reset", h.State.Reset)
		protected.POST("/state/logout", h.State.Logout)
		protected.POST("/state/view", h.State.SelectView)

		protected.GET("/transactions", h.Ledger.List)
		protected.POST("/transactions", h.Ledger.Create)

		protected.GET("/dashboard", h.Dashboard.GetStats)
		protected.GET("/dashboard/insights", h.Insights.Get)
	}

	return router
}
