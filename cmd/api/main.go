// ABOUTME: Main entry point for the CredCheck API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credcheck-api/api"
	"credcheck-api/api/handlers"
	"credcheck-api/core/discover"
	"credcheck-api/core/extract"
	"credcheck-api/core/interfaces"
	"credcheck-api/core/scoring"
	"credcheck-api/infrastructure/cache/memory"
	"credcheck-api/infrastructure/cache/redis"
	"credcheck-api/infrastructure/cache/sqlite"
	stdhttp "credcheck-api/infrastructure/http/standard"
	logrusLogger "credcheck-api/infrastructure/logger/logrus"
	"credcheck-api/infrastructure/sentiment/vader"
	"credcheck-api/pkg/config"
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
	logger := logrusLogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting CredCheck API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"rate_limit": cfg.Server.RateLimit,
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(time.Duration(cfg.Fetch.TimeoutSeconds) * time.Second)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Sentiment:  vader.NewScorer(),
	}

	// Load the lexicon, with optional file overrides
	lexicon := scoring.DefaultLexicon()
	if cfg.LexiconFile != "" {
		lexicon, err = scoring.LoadLexiconFile(cfg.LexiconFile)
		if err != nil {
			log.Fatalf("Failed to load lexicon file: %v", err)
		}
		logger.Info("Loaded lexicon overrides", map[string]interface{}{
			"file": cfg.LexiconFile,
		})
	}

	// Create services
	analysisService, err := scoring.NewService(lexicon, deps)
	if err != nil {
		log.Fatalf("Failed to create analysis service: %v", err)
	}
	extractService := extract.NewService(deps)
	discoverService := discover.NewService(deps)

	// Create API with middleware
	humaAPI, router := api.NewAPI(api.APIConfig{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
	})

	// Create and register handlers
	analyzeHandler := handlers.NewAnalyzeHandler(analysisService, extractService, deps)
	analyzeHandler.RegisterRoutes(humaAPI)

	scanHandler := handlers.NewScanHandler(analysisService, extractService, discoverService, logger)
	scanHandler.RegisterRoutes(humaAPI)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(humaAPI)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to
// memory when the backend cannot be reached
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	defaultTTL := time.Duration(cfg.Cache.DefaultExpiration) * time.Second

	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache

	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLitePath)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memory.NewMemoryCache(defaultTTL)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLitePath,
		})
		return sqliteCache

	default:
		logger.Info("Using memory cache", nil)
		return memory.NewMemoryCache(defaultTTL)
	}
}

func init() {
	// Print banner
	fmt.Println(`
   ______              ________              __
  / ____/_______  ____/ / ____/___  ___  _____/ /__
 / /   / ___/ _ \/ __  / /   / __ \/ _ \/ ___/ //_/
/ /___/ /  /  __/ /_/ / /___/ / / /  __/ /__/ ,<
\____/_/   \___/\__,_/\____/_/ /_/\___/\___/_/|_|
	`)
}
