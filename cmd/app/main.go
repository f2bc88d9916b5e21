package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"riskdesk/configs"
	"riskdesk/internal/database"
	deliveryhttp "riskdesk/internal/delivery/http"
	"riskdesk/internal/infra"
	"riskdesk/internal/repository"
	"riskdesk/internal/service"
	"riskdesk/internal/version"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and transaction manager
	txManager := repository.NewTxManager(db)
	counterpartyRepo := repository.NewCounterpartyRepository(db)
	cryptoRepo := repository.NewCryptocurrencyRepository(db)
	transferRepo := repository.NewTransferRepository(db)

	// Initialize services
	counterpartyService := service.NewCounterpartyService(counterpartyRepo, txManager)
	cryptoService := service.NewCryptocurrencyService(cryptoRepo, txManager)
	transferService := service.NewTransferService(transferRepo, txManager)

	// Initialize API version resolver
	resolver := version.NewResolver(cfg.Version.HeaderName, cfg.Version.Default, cfg.Version.Supported)

	// Initialize HTTP router
	e := echo.New()
	e.HideBanner = true

	deliveryhttp.SetupRoutes(e, &deliveryhttp.RouterConfig{
		API:                 cfg.API,
		VersionResolver:     resolver,
		CounterpartyHandler: deliveryhttp.NewCounterpartyHandler(counterpartyService),
		CryptoHandler:       deliveryhttp.NewCryptocurrencyHandler(cryptoService),
		TransferHandler:     deliveryhttp.NewTransferHandler(transferService),
		DB:                  db,
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("riskdesk API starting on %s (env: %s)", addr, cfg.Server.Env)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("[OK] Server exited gracefully")
}
