// ABOUTME: Main entry point for the news intelligence API server
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

	"github.com/joho/godotenv"

	"news-intel-api/api"
	"news-intel-api/api/handlers"
	"news-intel-api/core/analysis"
	"news-intel-api/core/collector"
	"news-intel-api/core/interfaces"
	"news-intel-api/core/pipeline"
	"news-intel-api/core/report"
	"news-intel-api/infrastructure/cache/memory"
	"news-intel-api/infrastructure/cache/redis"
	stdhttp "news-intel-api/infrastructure/http/standard"
	"news-intel-api/infrastructure/llm/gemini"
	logruslogger "news-intel-api/infrastructure/logger/logrus"
	"news-intel-api/infrastructure/storage/sqlite"
	"news-intel-api/pkg/config"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(os.Getenv("LOG_LEVEL"))
	logger.Info("Starting news intelligence API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"database":   cfg.Database.Path,
		"model":      cfg.LLM.Model,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache(time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second)
		logger.Info("Using memory cache", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Feed sources, from file when configured
	var sources []collector.Source
	if cfg.Collector.SourcesFile != "" {
		sources, err = collector.LoadSourcesFile(cfg.Collector.SourcesFile)
		if err != nil {
			log.Fatalf("Failed to load sources file: %v", err)
		}
		logger.Info("Loaded feed sources from file", map[string]interface{}{
			"path":    cfg.Collector.SourcesFile,
			"sources": len(sources),
		})
	}

	// Gemini client; without an API key the engine produces fallback analyses
	var generator interfaces.TextGenerator
	if cfg.LLM.APIKey != "" {
		geminiClient, err := gemini.NewClient(context.Background(), cfg.LLM.APIKey, cfg.LLM.Model)
		if err != nil {
			logger.Error("Failed to create Gemini client, analysis will run in fallback mode", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			generator = geminiClient
			defer geminiClient.Close()
		}
	} else {
		logger.Warn("No Gemini API key configured, analysis will run in fallback mode", nil)
	}

	store, err := sqlite.NewStore(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open snapshot store: %v", err)
	}
	defer store.Close()

	// Assemble the pipeline
	collectService := collector.NewService(deps, sources)
	engine := analysis.NewEngine(deps, generator)
	compiler := report.NewCompiler()
	orchestrator := pipeline.NewOrchestrator(collectService, engine, compiler, store, logger)

	newsHandler := handlers.NewNewsHandler(orchestrator, store, logger)

	server := api.NewServer(api.Config{
		Port:       cfg.Server.Port,
		Logger:     logger,
		RateLimit:  100,
		RateWindow: time.Minute,
	}, newsHandler)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
