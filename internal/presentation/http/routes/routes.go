package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/truythudien/truythu-api/internal/config"
	"github.com/truythudien/truythu-api/internal/domain/policy"
	"github.com/truythudien/truythu-api/internal/presentation/http/handler"
	"github.com/truythudien/truythu-api/internal/presentation/http/middleware"
	"github.com/truythudien/truythu-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth        *handler.AuthHandler
	Price       *handler.PriceHandler
	Calculation *handler.CalculationHandler
	User        *handler.UserHandler
	Assistant   *handler.AssistantHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	DB         *gorm.DB
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	api := router.Group("/api")
	{
		api.GET("/health", healthHandler(deps))

		// Public routes (no authentication required)
		auth := api.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// The tariff table is public to read; clients need it before login.
		api.GET("/prices", h.Price.GetPrices)

		// The assistant degrades to canned answers on its own, so it takes
		// queries without a session.
		api.POST("/ai/search", h.Assistant.Search)

		// Protected routes (authentication required)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		protected.POST("/calculations", h.Calculation.Create)
		protected.GET("/calculations", h.Calculation.List)

		protected.PUT("/prices",
			middleware.RequireOperation(policy.OpWritePrices), h.Price.UpdatePrices)

		adminUsers := protected.Group("/admin/users")
		adminUsers.Use(middleware.RequireOperation(policy.OpManageUsers))
		{
			adminUsers.GET("", h.User.List)
			adminUsers.POST("", h.User.Create)
		}
	}

	return router
}

func healthHandler(deps *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		database := "connected"
		sqlDB, err := deps.DB.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			database = "disconnected"
		}

		c.JSON(200, gin.H{
			"status":   "ok",
			"service":  deps.Cfg.App.Name,
			"database": database,
		})
	}
}
