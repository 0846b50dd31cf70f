package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frictionless/internal/assistant"
	"frictionless/internal/config"
	"frictionless/internal/db"
	"frictionless/internal/jobs"
	"frictionless/internal/metrics"
	"frictionless/internal/recent"
	"frictionless/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	if cfg.IsDev() {
		if err := database.SeedDevData(ctx); err != nil {
			log.Printf("Warning: Failed to seed dev data: %v", err)
		}
	}

	// Load the page registry used by the query router
	registry, err := config.LoadRegistry()
	if err != nil {
		log.Fatalf("Failed to load page registry: %v", err)
	}
	log.Printf("Page registry loaded (%d pages)", len(registry))

	// Recent pages store: Redis when configured, in-process otherwise
	var recentStore *recent.Store
	if cfg.RedisURL != "" {
		recentStore = recent.NewRedis(cfg.RedisURL)
		log.Println("Recent pages store: redis")
	} else {
		recentStore = recent.NewMemory()
		log.Println("Recent pages store: in-memory (set REDIS_URL for persistence)")
	}

	// Assistant client is optional
	var assistantClient *assistant.Client
	if cfg.IsAssistantEnabled() {
		assistantClient, err = assistant.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize assistant: %v", err)
		}
		log.Printf("Assistant enabled (model: %s)", cfg.GeminiModel)
	} else {
		log.Println("Assistant disabled (set GEMINI_API_KEY to enable)")
	}

	// Metrics collector and recorder
	metrics.Init(database)

	// Background readiness refresher
	refresher := jobs.NewReadinessRefresher(database, time.Duration(cfg.ReadinessRefreshMinutes)*time.Minute)
	go refresher.Start(ctx)

	// HTTP server
	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, database, registry, recentStore, assistantClient); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
