// ABOUTME: Main entry point for the Course Search API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"course-search-api/api"
	"course-search-api/api/handlers"
	"course-search-api/core/catalog"
	"course-search-api/core/interfaces"
	"course-search-api/core/search"
	"course-search-api/core/sections"
	"course-search-api/core/session"
	"course-search-api/infrastructure/cache/memory"
	"course-search-api/infrastructure/cache/redis"
	"course-search-api/infrastructure/cache/sqlite"
	stdhttp "course-search-api/infrastructure/http/standard"
	"course-search-api/infrastructure/logger/structured"
	"course-search-api/infrastructure/metrics/prometheus"
	"course-search-api/pkg/config"
	"course-search-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogger(structured.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("FEATURE_", map[featureflags.FeatureFlag]bool{
		featureflags.SectionsEnabled:  true,
		featureflags.MetricsEnabled:   true,
		featureflags.RateLimitEnabled: true,
	})

	logger.Info("Starting Course Search API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"catalog":       cfg.Catalog.BaseURL,
		"session_store": cfg.Session.Store,
		"flags":         flags.GetAllFlags(),
	})

	// Create session store
	store, closeStore := newSessionStore(cfg, logger)
	defer closeStore()

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Catalog.Timeout, stdhttp.WithLogger(logger))

	metrics := prometheus.New()

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: httpClient,
		Logger:     logger,
		Metrics:    metrics,
	}
	deps.Catalog = catalog.NewClient(cfg.Catalog.BaseURL, deps)

	engineCfg := search.Config{
		SearchPageSize: cfg.Search.SearchPageSize,
		LatestPageSize: cfg.Search.LatestPageSize,
		Debounce:       cfg.Search.Debounce,
		Status:         cfg.Catalog.Status,
	}
	sectionsEnabled := flags.IsEnabled(context.Background(), featureflags.SectionsEnabled)
	presets := sections.DefaultPresets(cfg.Search.Interests)

	build := func(viewport interfaces.Viewport) (*search.Engine, *sections.Loader) {
		opts := []search.Option{search.WithViewport(viewport)}

		var loader *sections.Loader
		if sectionsEnabled {
			loader = sections.NewLoader(deps, presets, cfg.Search.SectionSize, cfg.Catalog.Status)
			opts = append(opts, search.WithSections(loader))
		}
		return search.NewEngine(deps, engineCfg, opts...), loader
	}

	manager := session.NewManager(deps, build, cfg.Session.TTL)
	defer manager.Close()

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go manager.Run(sweepCtx, time.Minute)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger: logger,
	}
	if flags.IsEnabled(context.Background(), featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow
	}
	if flags.IsEnabled(context.Background(), featureflags.MetricsEnabled) {
		apiConfig.Metrics = metrics.Handler()
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	handlers.NewSessionHandler(manager).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(manager).RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newSessionStore picks the configured session backend, falling back to memory
func newSessionStore(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, func()) {
	switch cfg.Session.Store {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Session.Redis)
		if err != nil {
			logger.Error("Failed to create Redis session store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using Redis session store", map[string]interface{}{
			"address": cfg.Session.Redis.Address,
		})
		return redisCache, func() { redisCache.Close() }
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Session.SQLitePath, logger)
		if err != nil {
			logger.Error("Failed to create SQLite session store, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			break
		}
		logger.Info("Using SQLite session store", map[string]interface{}{
			"path": cfg.Session.SQLitePath,
		})
		return sqliteCache, func() { sqliteCache.Close() }
	}

	logger.Info("Using memory session store", nil)
	return memory.NewMemoryCache(), func() {}
}
