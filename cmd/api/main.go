package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/kaushal774/jewelbill-api/internal/application/service"
	"github.com/kaushal774/jewelbill-api/internal/config"
	"github.com/kaushal774/jewelbill-api/internal/infrastructure/database"
	"github.com/kaushal774/jewelbill-api/internal/infrastructure/repository"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/handler"
	"github.com/kaushal774/jewelbill-api/internal/presentation/http/routes"
	"github.com/kaushal774/jewelbill-api/pkg/document"
	"github.com/kaushal774/jewelbill-api/pkg/register"
	"github.com/kaushal774/jewelbill-api/pkg/utils"
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

	// Seed the shop profile and operator account
	if err := database.SeedDefaultData(db, &cfg.Admin); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	shopRepo := repository.NewShopRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	billRepo := repository.NewBillRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the bill renderer
	var renderer document.Renderer
	if cfg.Documents.Enabled {
		renderer, err = document.NewPDFRenderer(cfg.Documents.OutputDir)
		if err != nil {
			log.Printf("Warning: Failed to initialize PDF renderer: %v", err)
			renderer = document.NewNullRenderer()
		}
	} else {
		renderer = document.NewNullRenderer()
	}

	// Initialize the spreadsheet register
	var billRegister *register.Register
	if cfg.Register.Enabled {
		billRegister = register.New(cfg.Register.Path, cfg.Register.Backups)
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	shopService := service.NewShopService(shopRepo)
	inventoryService := service.NewInventoryService(inventoryRepo)
	billingService := service.NewBillingService(billRepo, shopRepo, renderer, billRegister, cfg.Billing.GSTPolicy)
	reportService := service.NewReportService(billRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Billing:   handler.NewBillingHandler(billingService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Shop:      handler.NewShopHandler(shopService),
		Report:    handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
