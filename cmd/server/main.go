package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hexforge/catan-go/docs"
	"github.com/hexforge/catan-go/internal/api"
	"github.com/hexforge/catan-go/internal/config"
	"github.com/hexforge/catan-go/internal/factory"
	"github.com/hexforge/catan-go/internal/metrics"
	"github.com/hexforge/catan-go/internal/middleware"
	"github.com/hexforge/catan-go/internal/storage/database"
	redisstorage "github.com/hexforge/catan-go/internal/storage/redis"
)

const version = "1.0.0"

//	@title			Catan Backend API
//	@version		1.0.0
//	@description	Online Catan board game backend: user accounts, game
//	@description	lobbies and the full rules engine with bot opponents.
//	@BasePath		/api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	// Build factory config from the loaded settings
	factoryCfg := factory.Config{
		Logger:      logger,
		StorageType: cfg.StorageType,
	}
	switch cfg.StorageType {
	case config.StorageTypeDatabase:
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("migrations failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		dbCfg := database.DefaultConfig()
		dbCfg.URL = cfg.DatabaseURL
		dbCfg.LogQueries = cfg.Debug
		factoryCfg.DatabaseConfig = &dbCfg
	case config.StorageTypeRedis:
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = cfg.RedisURL
		factoryCfg.RedisConfig = &redisCfg
	}

	// Create application factory
	app, err := factory.New(factoryCfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Metrics registry and rate limiter live for the process lifetime
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst, logger)
	defer limiter.Stop()

	docs.SwaggerInfo.Title = cfg.AppName + " API"
	docs.SwaggerInfo.Version = version

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:            logger,
		Storage:           app.Storage,
		UserController:    app.UserController,
		GameController:    app.GameController,
		CatanController:   app.CatanController,
		Metrics:           collector,
		Gatherer:          registry,
		RateLimiter:       limiter,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		AppName:           cfg.AppName,
		Version:           version,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Host = cfg.Host
	serverConfig.Port = cfg.Port
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started",
		slog.String("addr", server.Addr()),
		slog.String("storage", cfg.StorageType),
	)

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if err := app.Storage.Close(); err != nil {
		logger.Error("storage close error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}
