package store

import (
	"context"

	"github.com/takshila/paperbank-api/internal/domain"
)

// PaperStore defines the interface for paper data persistence.
// Version: 1.0
type PaperStore interface {
	// Create saves a new paper to the store. The caller assigns the
	// identifier before insertion; Create never generates one.
	// Returns ErrInsertNotAcknowledged if the store does not acknowledge
	// the new record.
	Create(ctx context.Context, paper *domain.Paper) error

	// GetByID retrieves a paper by its application-assigned identifier.
	// Returns ErrPaperNotFound if the paper does not exist.
	GetByID(ctx context.Context, id string) (*domain.Paper, error)

	// Update applies a partial field set to an existing paper with
	// merge-patch semantics: only the named fields are replaced,
	// unspecified fields are untouched. The caller is responsible for
	// validating the merged record before calling Update.
	// Returns ErrPaperNotFound if the paper does not exist.
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a paper by its identifier.
	// Returns ErrPaperNotFound if no record was removed.
	Delete(ctx context.Context, id string) error
}
