package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftlink/craftlink-backend/internal/config"
	"github.com/craftlink/craftlink-backend/internal/infrastructure/container"
	"github.com/craftlink/craftlink-backend/pkg/logger"
	"github.com/craftlink/craftlink-backend/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Register custom request validators
	if err := validation.RegisterCustomValidators(); err != nil {
		logger.Log.Fatal("failed to register validators", zap.Error(err))
	}

	// Initialize dependency injection container
	app, err := container.NewContainer(cfg)
	if err != nil {
		logger.Log.Fatal("failed to initialize application", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Log.Error("error closing application", zap.Error(err))
		}
	}()

	// Start maintenance jobs
	if err := app.Scheduler.Start(cfg.Scheduler.CleanupIntervalMin); err != nil {
		logger.Log.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer app.Scheduler.Stop()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		if err := app.Server.Start(); err != nil {
			logger.Log.Error("server error", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	logger.Log.Info("server started",
		zap.String("host", cfg.Server.Host),
		zap.Int("port", cfg.Server.Port),
	)

	// Wait for interrupt signal
	<-quit

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logger.Log.Error("server shutdown error", zap.Error(err))
		os.Exit(1)
	}

	logger.Log.Info("server exited properly")
}
