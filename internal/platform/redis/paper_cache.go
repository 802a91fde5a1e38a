// Package redis provides the Redis implementation of the paper cache.
//
// Entries are keyed by the bare paper identifier and hold the paper's JSON
// serialization. No TTL is set; an entry persists until overwritten or
// invalidated by a write-through update or delete.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/platform/logger"
	"github.com/takshila/paperbank-api/internal/store"
)

// RedisPaperCache implements the store.PaperCache interface
// using a Redis key-value store as the backend.
type RedisPaperCache struct {
	client *goredis.Client
	logger *slog.Logger
}

// NewRedisPaperCache creates a new Redis implementation of the PaperCache interface.
// It accepts a client that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewRedisPaperCache(client *goredis.Client, logger *slog.Logger) *RedisPaperCache {
	if client == nil {
		panic("client cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &RedisPaperCache{
		client: client,
		logger: logger.With(slog.String("component", "paper_cache")),
	}
}

// Ensure RedisPaperCache implements store.PaperCache interface
var _ store.PaperCache = (*RedisPaperCache)(nil)

// Get implements store.PaperCache.Get
// Returns store.ErrCacheMiss when no entry exists for the identifier.
// Any other failure, including a corrupt entry, is reported as a store
// error so the caller can fall through to the document store.
func (c *RedisPaperCache) Get(ctx context.Context, id string) (*domain.Paper, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	raw, err := c.client.Get(ctx, id).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			log.Debug("cache miss", slog.String("paper_id", id))
			return nil, store.ErrCacheMiss
		}
		log.Error("cache read failed",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return nil, store.NewStoreError("paper", "cache_get", "read failed", err)
	}

	var paper domain.Paper
	if err := json.Unmarshal(raw, &paper); err != nil {
		log.Warn("corrupt cache entry",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return nil, store.NewStoreError("paper", "cache_get", "corrupt entry", err)
	}

	log.Debug("cache hit", slog.String("paper_id", id))
	return &paper, nil
}

// Set implements store.PaperCache.Set
// It stores the paper's JSON serialization under its identifier with no
// expiry, overwriting any previous entry.
func (c *RedisPaperCache) Set(ctx context.Context, id string, paper *domain.Paper) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	raw, err := json.Marshal(paper)
	if err != nil {
		return store.NewStoreError("paper", "cache_set", "serialize failed", err)
	}

	if err := c.client.Set(ctx, id, raw, 0).Err(); err != nil {
		log.Error("cache write failed",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return store.NewStoreError("paper", "cache_set", "write failed", err)
	}

	log.Debug("cache populated", slog.String("paper_id", id))
	return nil
}

// Invalidate implements store.PaperCache.Invalidate
// Removing an absent entry is not an error.
func (c *RedisPaperCache) Invalidate(ctx context.Context, id string) error {
	log := logger.FromContextOrDefault(ctx, c.logger)

	if err := c.client.Del(ctx, id).Err(); err != nil {
		log.Error("cache invalidation failed",
			slog.String("error", err.Error()),
			slog.String("paper_id", id))
		return store.NewStoreError("paper", "cache_invalidate", "delete failed", err)
	}

	log.Debug("cache entry invalidated", slog.String("paper_id", id))
	return nil
}
