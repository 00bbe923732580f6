package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"serados/cmd"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	configs := getConfigs()

	root, err := cmd.NewCompositionRoot(configs, logger)
	if err != nil {
		logger.Error("Failed to build application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := root.Close(); closeErr != nil {
			logger.Error("Failed to close application", "error", closeErr)
		}
	}()

	jobManager := root.CreateJobManager()
	if jobManager != nil {
		if err = jobManager.StartAll(); err != nil {
			logger.Error("Failed to start jobs", "error", err)
			os.Exit(1)
		}
		defer jobManager.StopAll()
	}

	startWebServer(root, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	// A .env file is optional; the environment wins either way.
	_ = godotenv.Load(".env")

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", "3000"),
		StoreBackend:    envOrDefault("STORE_BACKEND", cmd.StoreBackendFile),
		OrdersFile:      envOrDefault("ORDERS_FILE", "orders.json"),
		MenuFile:        envOrDefault("MENU_FILE", "menu.json"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          envOrDefault("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", "disable"),
		StatsReportCron: os.Getenv("STATS_REPORT_CRON"),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Web server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown failed", "error", err)
	}
}
