package main

import (
	"log/slog"
	"net/http"

	"route-weather-api/internal/config"
	"route-weather-api/internal/providers/amap"
	"route-weather-api/internal/trip"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router      *gin.Engine
	logger      *slog.Logger
	tripService trip.Service
	cfg         *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	client := amap.NewClient(amap.Config{
		Key:     cfg.Amap.Key,
		BaseV3:  cfg.Amap.BaseV3,
		BaseV5:  cfg.Amap.BaseV5,
		Timeout: cfg.ProviderTimeout(),
	}, logger)

	app := &App{
		router:      router,
		logger:      logger,
		tripService: trip.NewService(client, cfg.App.MaxWaypoints, logger),
		cfg:         cfg,
	}

	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

// corsMiddleware allows any origin; the API serves browser frontends hosted
// elsewhere.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
