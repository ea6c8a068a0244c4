package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/truythudien/truythu-api/internal/application/service"
	"github.com/truythudien/truythu-api/internal/config"
	"github.com/truythudien/truythu-api/internal/infrastructure/database"
	"github.com/truythudien/truythu-api/internal/infrastructure/repository"
	"github.com/truythudien/truythu-api/internal/presentation/http/handler"
	"github.com/truythudien/truythu-api/internal/presentation/http/routes"
	"github.com/truythudien/truythu-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the initial admin account if configured
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed admin user: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	priceRepo := repository.NewPriceConfigRepository(db)
	calcRepo := repository.NewCalculationRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	priceService := service.NewPriceService(priceRepo)
	calcService := service.NewCalculationService(calcRepo)
	userService := service.NewUserService(userRepo)
	assistantService := service.NewAssistantService(cfg.Assistant)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Price:       handler.NewPriceHandler(priceService),
		Calculation: handler.NewCalculationHandler(calcService),
		User:        handler.NewUserHandler(userService),
		Assistant:   handler.NewAssistantHandler(assistantService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		DB:         db,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
