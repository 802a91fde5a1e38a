package store

import (
	"context"

	"github.com/takshila/paperbank-api/internal/domain"
)

// PaperCache defines the interface for the read-through paper cache.
//
// The cache is written through synchronously on update and delete so a
// subsequent read by the same identifier never observes store/cache
// divergence introduced by this system. Entries carry no expiry; they
// persist until overwritten or invalidated.
// Version: 1.0
type PaperCache interface {
	// Get returns the cached paper for the identifier.
	// Returns ErrCacheMiss if no entry exists.
	Get(ctx context.Context, id string) (*domain.Paper, error)

	// Set stores the paper's serialized content under its identifier,
	// overwriting any previous entry.
	Set(ctx context.Context, id string, paper *domain.Paper) error

	// Invalidate removes the entry for the identifier. Invalidating an
	// absent entry is not an error.
	Invalidate(ctx context.Context, id string) error
}
