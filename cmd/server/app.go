package main

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/takshila/paperbank-api/internal/config"
	"github.com/takshila/paperbank-api/internal/platform/gemini"
	"github.com/takshila/paperbank-api/internal/platform/mongodb"
	"github.com/takshila/paperbank-api/internal/platform/redis"
	"github.com/takshila/paperbank-api/internal/service"
	"github.com/takshila/paperbank-api/internal/task"
	"github.com/takshila/paperbank-api/internal/upload"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger      *slog.Logger
	mongoClient *mongo.Client
	redisClient *goredis.Client

	// Stores
	paperStore *mongodb.MongoPaperStore
	taskStore  *mongodb.MongoTaskStore
	paperCache *redis.RedisPaperCache
	uploads    *upload.Store

	// Service interfaces
	paperService      service.PaperService
	extractionService service.ExtractionService

	// Task handling
	taskQueue  *task.TaskQueue
	workerPool *task.WorkerPool
}

// newApplication creates a new application instance with all dependencies
// initialized and the worker pool started. It connects to MongoDB and Redis
// itself so a failed dependency stops startup before the server binds.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	// Establish backing connections
	var err error
	app.mongoClient, err = setupMongo(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	app.redisClient, err = setupRedis(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Initialize stores
	db := app.mongoClient.Database(cfg.Mongo.Database)
	app.paperStore = mongodb.NewMongoPaperStore(db, logger)
	app.taskStore = mongodb.NewMongoTaskStore(db, logger)
	app.paperCache = redis.NewRedisPaperCache(app.redisClient, logger)

	// Initialize the upload store; it creates the directory when missing
	app.uploads, err = upload.NewStore(cfg.Extraction.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload store: %w", err)
	}

	// Create the Gemini extractor
	extractor, err := gemini.NewGeminiExtractor(
		ctx,
		logger.With("component", "gemini_extractor"),
		cfg.Gemini,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize extractor: %w", err)
	}
	logger.Info("Extractor initialized successfully", "model", cfg.Gemini.ModelName)

	// Initialize task queue and worker pool
	app.taskQueue = task.NewTaskQueue(cfg.Extraction.QueueSize, logger)
	app.workerPool = task.NewWorkerPool(app.taskQueue, task.WorkerPoolConfig{
		WorkerCount: cfg.Extraction.Workers,
	}, logger)
	app.workerPool.Start()

	// Initialize paper service
	app.paperService, err = service.NewPaperService(
		app.paperStore,
		app.paperCache,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create paper service: %w", err)
	}

	// Initialize extraction service
	app.extractionService, err = service.NewExtractionService(
		app.taskStore,
		app.uploads,
		extractor,
		app.taskQueue,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server
	err := app.startHTTPServer(ctx, router)
	if err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources. The queue is
// closed first so the workers drain what was already accepted, then the pool
// is stopped before the backing connections go away.
func (app *application) cleanup() {
	if app.taskQueue != nil {
		app.taskQueue.Close()
	}
	if app.workerPool != nil {
		app.workerPool.Stop()
	}

	if app.redisClient != nil {
		if err := app.redisClient.Close(); err != nil {
			app.logger.Error("Error closing Redis connection", "error", err)
		}
	}

	if app.mongoClient != nil {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		if err := app.mongoClient.Disconnect(disconnectCtx); err != nil {
			app.logger.Error("Error closing MongoDB connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
