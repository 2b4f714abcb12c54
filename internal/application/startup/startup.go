// Package startup prepares the application server
package startup

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StoreScope/storescope-go/internal/application/container"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/cleanup"
	"github.com/StoreScope/storescope-go/internal/infrastructure/caching/manager"
	"github.com/StoreScope/storescope-go/internal/infrastructure/generation"
	"github.com/StoreScope/storescope-go/internal/infrastructure/observability/logging"
	"github.com/StoreScope/storescope-go/internal/infrastructure/persistence/database"
	"github.com/StoreScope/storescope-go/internal/infrastructure/persistence/dataset"
	"github.com/StoreScope/storescope-go/internal/presentation/http/server"
	"github.com/StoreScope/storescope-go/pkg/config"
	"github.com/gin-gonic/gin"
)

// Initialize performs the complete startup sequence
func Initialize() error {
	setupLogging()

	start := time.Now().UTC()

	ctx, cancelBackgroundTasks := context.WithCancel(context.Background())
	defer cancelBackgroundTasks()

	log.Println("Initializing StoreScope analytics server...")

	// Step 1: Structured logging
	logger, err := logging.NewChanneledLogger(nil)
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	logger.Startup().Info("Channeled logging initialized")

	// Step 2: Cache system
	cacheManager := manager.NewManager()
	logger.Startup().Info("Cache manager initialized")

	// Step 3: Dataset persistence. A failed connection degrades to
	// in-memory operation, a failed migration is fatal.
	var datasetRepo *dataset.Repository
	if config.DatasetPersistence {
		db, err := database.Open(config.DatabasePath, logger)
		if err != nil {
			logger.Startup().Warn("Dataset persistence unavailable, continuing in-memory", "error", err.Error())
		} else {
			datasetRepo = dataset.NewRepository(db, logger)
			if err := datasetRepo.Migrate(); err != nil {
				return fmt.Errorf("dataset migration failed: %w", err)
			}
			logger.Startup().Info("Dataset persistence initialized", "path", config.DatabasePath)
		}
	} else {
		logger.Startup().Info("Dataset persistence disabled by configuration")
	}

	// Step 4: Dependency injection container
	appContainer := container.NewContainer(cacheManager, datasetRepo, logger)
	logger.Startup().Info("Dependency injection container created with singleton services")

	// Step 5: Warm the default dataset so the first request is fast
	warmStart := time.Now()
	defaultParams := generation.Params{
		Count: config.DatasetRecordCount,
		Seed:  config.DatasetSeed,
	}
	entry := appContainer.DatasetService.Current(defaultParams)
	logger.Startup().Info("Default dataset warmed",
		"events", len(entry.Events),
		"seed", defaultParams.Seed,
		"duration", time.Since(warmStart))

	// Step 6: Background cleanup worker
	cleanupConfig := cleanup.NewConfig()
	cleanupWorker := cleanup.NewWorker(cacheManager, cleanupConfig)
	go cleanupWorker.Start(ctx)
	logger.Startup().Info("Background cleanup worker started", "interval", cleanupConfig.CleanupInterval)

	// Step 7: HTTP server
	port := config.Port
	httpServer, err := server.New(port, appContainer)
	if err != nil {
		return fmt.Errorf("failed to initialize HTTP server: %w", err)
	}
	logger.Startup().Info("HTTP server initialized", "port", port)

	// Step 8: Graceful shutdown wiring
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.System().Info("Starting HTTP server", "address", ":"+port)
		if err := httpServer.Start(); err != nil {
			logger.System().Error("HTTP server failed", "error", err.Error())
		}
	}()

	logger.Startup().Info("Application startup complete",
		"totalDuration", time.Since(start),
		"port", port)

	// Wait for shutdown signal
	<-gracefulShutdown
	logger.Shutdown().Info("Shutdown signal received, starting graceful shutdown...")

	shutdownStart := time.Now()

	// Cancel background tasks
	cancelBackgroundTasks()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger.Shutdown().Info("Stopping HTTP server...")
	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Shutdown().Error("Error during server shutdown", "error", err.Error())
	} else {
		logger.Shutdown().Info("HTTP server stopped successfully")
	}

	if datasetRepo != nil {
		logger.Shutdown().Info("Closing dataset repository...")
		if err := datasetRepo.Close(); err != nil {
			logger.Shutdown().Error("Error closing dataset repository", "error", err.Error())
		}
	}

	logger.Shutdown().Info("Application shutdown complete",
		"totalUptime", time.Since(start),
		"shutdownDuration", time.Since(shutdownStart))

	return logger.Close()
}

// setupLogging configures application logging
func setupLogging() {
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	log.SetFlags(log.LstdFlags | log.Lshortfile)
}
