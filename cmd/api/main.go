package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sanuatmasai/Product-Recommendation/internal/api"
	"github.com/sanuatmasai/Product-Recommendation/internal/catalog"
	"github.com/sanuatmasai/Product-Recommendation/internal/config"
	"github.com/sanuatmasai/Product-Recommendation/internal/logger"
	"github.com/sanuatmasai/Product-Recommendation/internal/recommend"
	"github.com/sanuatmasai/Product-Recommendation/internal/repository"
	"github.com/sanuatmasai/Product-Recommendation/internal/service"
)

func main() {
	// Initialize logger first (env-driven, with rotation in non-local envs)
	appLogger := logger.NewDefault()
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load config")
	}

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	interactionRepo := repository.NewInteractionRepository(db)

	// Load the product catalog once; it is immutable for the process lifetime
	store, err := catalog.Load(cfg.Catalog.Path)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to load product catalog")
	}
	appLogger.WithField("products", store.Len()).Info("Product catalog loaded")

	// Build the content similarity engine over the full catalog before
	// serving; it is read-only shared state afterwards
	contentEngine := recommend.NewContentEngine(store)
	appLogger.WithFields(logger.Fields{
		"products":   store.Len(),
		"dimensions": contentEngine.Dimensions(),
	}).Info("TF-IDF feature matrix built")

	collabEngine := recommend.NewCollabEngine(interactionRepo, store, contentEngine)

	// Initialize services
	authService := service.NewAuthService(userRepo, &service.AuthConfig{
		Secret:      cfg.Auth.Secret,
		TokenExpiry: cfg.Auth.TokenExpiry,
		BcryptCost:  cfg.Auth.BcryptCost,
	})
	trackingService := service.NewTrackingService(interactionRepo, appLogger)

	// Setup router
	router := api.SetupRouter(api.Deps{
		Store:    store,
		Content:  contentEngine,
		Collab:   collabEngine,
		Auth:     authService,
		Tracking: trackingService,
	}, cfg, appLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithFields(logger.Fields{
			"port": cfg.Server.Port,
			"mode": cfg.Server.Mode,
		}).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
