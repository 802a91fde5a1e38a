package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/takshila/paperbank-api/internal/config"
)

// connectTimeout bounds the initial reachability checks against MongoDB
// and Redis so a bad address fails startup quickly.
const connectTimeout = 5 * time.Second

// setupMongo establishes a connection to MongoDB and verifies it with a ping.
// Returns the connected client if successful, or an error if the connection fails.
func setupMongo(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Test the connection
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	logger.Info("Database connection established", "database", cfg.Mongo.Database)
	return client, nil
}

// setupRedis creates the Redis client used for paper caching and verifies
// it with a ping.
func setupRedis(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	logger.Info("Cache connection established", "addr", cfg.Redis.Addr)
	return client, nil
}
