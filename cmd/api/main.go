package main

//go:generate go run github.com/swaggo/swag/cmd/swag@latest init -g main.go -o ../../docs --parseDependency

import (
	"log"
	"log/slog"

	"route-weather-api/internal/config"

	"github.com/joho/godotenv"

	_ "route-weather-api/docs" // Import generated docs
)

// @title Route Weather API
// @version 1.0
// @description Computes a driving route and attaches live or forecast weather to representative waypoints along it.
// @BasePath /
func main() {
	// Local development convenience; deployments set env vars directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	// Load configuration; a missing AMAP_API_KEY is fatal here
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := cfg.NewLogger()
	slog.SetDefault(logger)

	// Create app
	app, err := NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	// Start server
	logger.Info("starting server", "addr", cfg.GetServerAddr())
	if err := app.Run(cfg.GetServerAddr()); err != nil {
		logger.Error("server failed", "error", err)
		log.Fatal(err)
	}
}
