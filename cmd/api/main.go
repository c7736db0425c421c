package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/camai-video/gateway/internal/api"
	"github.com/camai-video/gateway/internal/config"
	"github.com/camai-video/gateway/internal/database"
	"github.com/camai-video/gateway/internal/media"
	"github.com/camai-video/gateway/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Environment)
	slog.SetDefault(logger)

	logger.Info("starting CamAI gateway",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.Port),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Database pool
	pool, err := database.NewPool(ctx, database.DefaultPoolConfig(cfg.DatabaseURL))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	// Media stores
	stores, err := media.NewStores(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to configure media stores: %w", err)
	}

	logger.Info("media stores configured", slog.String("backend", cfg.MediaBackend))

	// Setup router
	deps := &api.Dependencies{
		SessionRepo: repository.NewSessionRepository(pool),
		EventRepo:   repository.NewEventRepository(pool),
		PlateRepo:   repository.NewPlateRepository(pool),
		CameraRepo:  repository.NewCameraRepository(pool),
		Stores:      stores,
		DB:          pool,
	}

	router := api.NewRouter(logger, cfg, deps)
	router.Setup()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Info("server listening", slog.String("addr", addr))
		if err := router.Listen(addr); err != nil {
			errChan <- err
		}
	}()

	// Wait for shutdown signal or error
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	logger.Info("shutting down server...")
	if err := router.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.Any("error", err))
	}

	<-shutdownCtx.Done()
	logger.Info("server stopped")

	return nil
}
