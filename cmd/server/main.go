// Package main implements the entry point for the PaperBank API server
// which stores sample papers and runs asynchronous text extraction over
// uploaded documents.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/takshila/paperbank-api/internal/config"
	"github.com/takshila/paperbank-api/internal/platform/logger"
)

// main is the entry point for the paperbank-api server.
// It initializes configuration, sets up logging, establishes the MongoDB
// and Redis connections, injects dependencies, and starts the HTTP server.
func main() {
	ctx := context.Background()

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(ctx, cfg, slog.Default())
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application-wide logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	// Load a local .env file when present; the environment wins otherwise.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	// Set up structured logging using the configured log level
	_, err = logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	// Log configuration details using structured logging
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"mongo_database", cfg.Mongo.Database,
		"extraction_workers", cfg.Extraction.Workers)

	return cfg, nil
}
