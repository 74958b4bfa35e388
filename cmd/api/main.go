package main

import (
	"context"
	"log"

	"github.com/bizscale/bizscale-api/internal/application/service"
	"github.com/bizscale/bizscale-api/internal/config"
	"github.com/bizscale/bizscale-api/internal/domain/repository"
	"github.com/bizscale/bizscale-api/internal/infrastructure/database"
	"github.com/bizscale/bizscale-api/internal/infrastructure/events"
	"github.com/bizscale/bizscale-api/internal/infrastructure/insights"
	"github.com/bizscale/bizscale-api/internal/infrastructure/store"
	"github.com/bizscale/bizscale-api/internal/presentation/http/handler"
	"github.com/bizscale/bizscale-api/internal/presentation/http/routes"
	"github.com/bizscale/bizscale-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize the state store
	stateRepo, err := newStateRepository(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize state store: %v", err)
	}

	// Rehydrate the application state
	stateService := service.NewStateService(stateRepo, cfg.Auth.AutoLogin)
	if err := stateService.Init(context.Background()); err != nil {
		log.Fatalf("Failed to load application state: %v", err)
	}

	// Initialize the ledger event publisher
	var publisher repository.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		log.Printf("Publishing ledger events to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	} else {
		publisher = events.NoopPublisher{}
	}
	defer publisher.Close()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize services
	authService, err := service.NewAuthService(jwtManager, stateService, &cfg.Auth)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}
	ledgerService := service.NewLedgerService(stateService, publisher)
	dashboardService := service.NewDashboardService(stateService)
	insightsService := service.NewInsightsService(stateService, insights.NewClient(&cfg.Insights))
	if cfg.Insights.APIKey == "" {
		log.Println("Warning: INSIGHTS_API_KEY not set, the insights panel will stay empty")
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Onboarding: handler.NewOnboardingHandler(stateService),
		State:      handler.NewStateHandler(stateService),
		Ledger:     handler.NewLedgerHandler(ledgerService),
		Dashboard:  handler.NewDashboardHandler(dashboardService),
		Insights:   handler.NewInsightsHandler(insightsService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
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

func newStateRepository(cfg *config.Config) (repository.StateRepository, error) {
	switch cfg.Store.Driver {
	case "postgres":
		db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
		if err != nil {
			return nil, err
		}
		return store.NewPostgresStore(db)
	default:
		return store.NewFileStore(cfg.Store.FilePath)
	}
}
