package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/elesfuerzo/pos-api/internal/application/service"
	"github.com/elesfuerzo/pos-api/internal/application/till"
	"github.com/elesfuerzo/pos-api/internal/config"
	"github.com/elesfuerzo/pos-api/internal/domain/entity"
	"github.com/elesfuerzo/pos-api/internal/infrastructure/docstore"
	"github.com/elesfuerzo/pos-api/internal/infrastructure/repository"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/handler"
	"github.com/elesfuerzo/pos-api/internal/presentation/http/routes"
	"github.com/elesfuerzo/pos-api/pkg/email"
	"github.com/elesfuerzo/pos-api/pkg/printer"
	"github.com/elesfuerzo/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	// Connect to the document store and Firebase Auth
	store, err := docstore.Connect(ctx, cfg.Firestore)
	if err != nil {
		log.Fatalf("Failed to connect to document store: %v", err)
	}
	defer store.Close()

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	productRepo := repository.NewProductRepository(store.Firestore)
	saleRepo := repository.NewSaleRepository(store.Firestore)
	supplierRepo := repository.NewSupplierRepository(store.Firestore)
	userRepo := repository.NewUserRepository(store.Firestore)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
	})

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()

	// Catalog cache with live stock, plus cart reconciliation on every change
	catalogService := service.NewCatalogService(productRepo)
	tillManager := till.NewManager(catalogService)
	catalogService.Subscribe(tillManager.ReconcileAll)
	if err := catalogService.Start(ctx); err != nil {
		log.Fatalf("Failed to start catalog: %v", err)
	}

	receiptHeader := entity.ReceiptHeader{
		StoreName: cfg.Store.Name,
		Address:   cfg.Store.Address,
		Phone:     cfg.Store.Phone,
	}

	// Initialize services
	authService := service.NewAuthService(store.AuthClient, userRepo, jwtManager, emailService, cfg.Store.AdminEmail)
	checkoutService := service.NewCheckoutService(saleRepo, productRepo, receiptHeader, thermalPrinter)
	productService := service.NewProductService(productRepo, supplierRepo, catalogService)
	supplierService := service.NewSupplierService(supplierRepo, productRepo)
	purchaseService := service.NewPurchaseService(supplierRepo, productRepo, emailService)
	salesService := service.NewSalesService(saleRepo)
	dashboardService := service.NewDashboardService(catalogService, saleRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Till:      handler.NewTillHandler(tillManager, checkoutService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Product:   handler.NewProductHandler(productService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Purchase:  handler.NewPurchaseHandler(purchaseService),
		Sales:     handler.NewSalesHandler(salesService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
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
