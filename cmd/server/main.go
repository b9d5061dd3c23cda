package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/procureflow/backend-go/internal/api"
	"github.com/procureflow/backend-go/internal/config"
	"github.com/procureflow/backend-go/internal/domain"
	"github.com/procureflow/backend-go/internal/seed"
	"github.com/procureflow/backend-go/internal/service"
	"github.com/procureflow/backend-go/internal/session"
	"github.com/procureflow/backend-go/internal/store"
	"github.com/procureflow/backend-go/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger.SetLevel(cfg.Server.Mode)
	if cfg.Server.Mode == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Seed the in-memory store, from a fixture when one is configured
	dataset := loadDataset(cfg)
	st := store.New(dataset)
	sessions := session.NewManager()

	services := &api.Services{
		PRService:        service.NewPRService(st),
		POService:        service.NewPOService(st),
		VendorService:    service.NewVendorService(st),
		DashboardService: service.NewDashboardService(st),
	}

	router := api.NewRouter(st, sessions, services, cfg.Server.AllowedOrigins)
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Log.Info().Str("port", cfg.Server.Port).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	logger.Log.Info().Msg("Server exiting")
}

func loadDataset(cfg *config.Config) *domain.Dataset {
	if cfg.App.SeedFile != "" {
		dataset, err := seed.LoadFile(cfg.App.SeedFile)
		if err != nil {
			logger.Log.Warn().Err(err).Str("path", cfg.App.SeedFile).Msg("seed fixture unusable, generating instead")
		} else {
			logger.Log.Info().Str("path", cfg.App.SeedFile).Msg("loaded seed fixture")
			return dataset
		}
	}

	return seed.Generate(seed.Config{
		PurchaseRequests: cfg.App.SeedSize.PurchaseRequests,
		PurchaseOrders:   cfg.App.SeedSize.PurchaseOrders,
		Vendors:          cfg.App.SeedSize.Vendors,
	})
}
