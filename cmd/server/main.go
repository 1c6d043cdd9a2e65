package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xiaoheizi112/Weather-Forecast/internal/api"
	"github.com/xiaoheizi112/Weather-Forecast/internal/citycode"
	"github.com/xiaoheizi112/Weather-Forecast/internal/config"
	"github.com/xiaoheizi112/Weather-Forecast/internal/scheduler"
	"github.com/xiaoheizi112/Weather-Forecast/internal/service"
	"github.com/xiaoheizi112/Weather-Forecast/pkg/client"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Weather Forecast Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// City name resolution
	resolver := citycode.NewResolver(cfg.CityDataset.Path, logger)

	// Upstream weather API client
	tianqi := client.NewTianqiClient(
		cfg.WeatherAPI.BaseURL,
		cfg.WeatherAPI.AppID,
		cfg.WeatherAPI.AppSecret,
		client.Config{
			Timeout:        cfg.Client.Timeout,
			MaxRetries:     cfg.Client.MaxRetries,
			RetryDelay:     cfg.Client.RetryDelay,
			Multiplier:     cfg.Client.Multiplier,
			BreakerTimeout: cfg.Client.BreakerTimeout,
		},
		logger,
	)

	// Forecast orchestrator
	forecastService := service.New(resolver, tianqi, logger)

	// Periodic refresh
	refreshScheduler := scheduler.NewScheduler(
		forecastService,
		cfg.Refresh.DefaultCity,
		cfg.Refresh.CronSpec,
		logger,
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(forecastService, cfg.Chart.Width, cfg.Chart.Height, logger)
	api.SetupRoutes(app, handler, logger)

	// Start scheduler
	if err := refreshScheduler.Start(); err != nil {
		logger.Fatal("Failed to start scheduler", zap.Error(err))
	}

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop scheduler
	refreshScheduler.Stop()

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
