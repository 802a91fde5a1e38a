package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/store"
)

// PaperRepository defines the repository interface for the service layer.
// This is aligned with store.PaperStore to ensure proper separation of concerns.
type PaperRepository interface {
	// Create saves a new paper to the store
	Create(ctx context.Context, paper *domain.Paper) error

	// GetByID retrieves a paper by its unique ID
	GetByID(ctx context.Context, id string) (*domain.Paper, error)

	// Update applies a partial field set to an existing paper
	Update(ctx context.Context, id string, fields map[string]any) error

	// Delete removes a paper by its ID
	Delete(ctx context.Context, id string) error
}

// PaperCache defines the cache interface for the service layer.
// This is aligned with store.PaperCache.
type PaperCache interface {
	// Get returns the cached paper, or store.ErrCacheMiss
	Get(ctx context.Context, id string) (*domain.Paper, error)

	// Set stores the paper under its identifier
	Set(ctx context.Context, id string, paper *domain.Paper) error

	// Invalidate removes the entry for the identifier
	Invalidate(ctx context.Context, id string) error
}

// PaperSource identifies where a retrieved paper was served from.
type PaperSource string

// Possible paper sources
const (
	PaperSourceCache    PaperSource = "cache"
	PaperSourceDatabase PaperSource = "database"
)

// PaperService provides sample paper operations backed by the document
// store with a read-through, write-through cache.
type PaperService interface {
	// CreatePaper assigns a fresh identifier to the paper and persists it.
	// The returned string is the assigned identifier.
	CreatePaper(ctx context.Context, paper *domain.Paper) (string, error)

	// GetPaper retrieves a paper by ID, serving from the cache when an
	// entry exists and falling back to the store otherwise. Papers read
	// from the store are cached before they are returned.
	GetPaper(ctx context.Context, paperID string) (*domain.Paper, PaperSource, error)

	// UpdatePaper merges a partial field map into the stored paper,
	// validates the merged record, persists the recognized changes, and
	// refreshes the cache. It returns the merged paper.
	UpdatePaper(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error)

	// DeletePaper removes a paper from the store and drops its cache entry.
	DeletePaper(ctx context.Context, paperID string) error
}

// Common sentinel errors for PaperService
var (
	// ErrPaperNotFound indicates that the paper does not exist
	ErrPaperNotFound = errors.New("paper not found")
)

// PaperServiceError wraps errors from the paper service with context.
type PaperServiceError struct {
	// Operation is the operation that failed (e.g., "create_paper", "update_paper")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PaperServiceError.
func (e *PaperServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("paper service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("paper service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PaperServiceError) Unwrap() error {
	return e.Err
}

// NewPaperServiceError creates a new PaperServiceError.
// It returns known sentinel errors directly without wrapping.
func NewPaperServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Map store-level not-found to the service-level sentinel
	if errors.Is(err, ErrPaperNotFound) || errors.Is(err, store.ErrPaperNotFound) {
		return ErrPaperNotFound
	}

	// If not a sentinel to be returned directly, wrap it
	return &PaperServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// paperServiceImpl implements the PaperService interface
type paperServiceImpl struct {
	paperRepo PaperRepository
	cache     PaperCache
	logger    *slog.Logger
}

// NewPaperService creates a new PaperService.
// It returns an error if any of the required dependencies are nil.
func NewPaperService(
	paperRepo PaperRepository,
	cache PaperCache,
	logger *slog.Logger,
) (PaperService, error) {
	// Validate dependencies
	if paperRepo == nil {
		return nil, &PaperServiceError{
			Operation: "create_service",
			Message:   "paperRepo cannot be nil",
			Err:       nil,
		}
	}
	if cache == nil {
		return nil, &PaperServiceError{
			Operation: "create_service",
			Message:   "cache cannot be nil",
			Err:       nil,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &paperServiceImpl{
		paperRepo: paperRepo,
		cache:     cache,
		logger:    logger.With("component", "paper_service"),
	}, nil
}

// CreatePaper assigns a fresh identifier, normalizes the record, and saves
// it. The assignment is unconditional, so a client cannot choose or reuse
// identifiers.
func (s *paperServiceImpl) CreatePaper(ctx context.Context, paper *domain.Paper) (string, error) {
	paper.ID = uuid.NewString()
	paper.Normalize()

	if err := s.paperRepo.Create(ctx, paper); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			s.logger.Warn("rejected invalid paper",
				"error", err)
			return "", err
		}
		s.logger.Error("failed to create paper",
			"error", err,
			"paper_id", paper.ID)
		return "", NewPaperServiceError("create_paper", "failed to save paper", err)
	}

	s.logger.Info("paper created",
		"paper_id", paper.ID,
		"title", paper.Title)
	return paper.ID, nil
}

// GetPaper serves the paper from the cache when an entry exists. On a miss
// the store copy is returned and written to the cache; cache failures only
// degrade to store reads, they never fail the request.
func (s *paperServiceImpl) GetPaper(ctx context.Context, paperID string) (*domain.Paper, PaperSource, error) {
	cached, err := s.cache.Get(ctx, paperID)
	if err == nil {
		s.logger.Debug("paper served from cache",
			"paper_id", paperID)
		return cached, PaperSourceCache, nil
	}
	if !errors.Is(err, store.ErrCacheMiss) {
		s.logger.Warn("cache read failed, falling back to store",
			"error", err,
			"paper_id", paperID)
	}

	paper, err := s.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		if errors.Is(err, store.ErrPaperNotFound) {
			s.logger.Debug("paper not found",
				"paper_id", paperID)
			return nil, "", ErrPaperNotFound
		}
		s.logger.Error("failed to retrieve paper",
			"error", err,
			"paper_id", paperID)
		return nil, "", NewPaperServiceError("get_paper", "failed to retrieve paper", err)
	}

	// Populate the cache so the next read is served from it. Absence of an
	// entry is never cached.
	if err := s.cache.Set(ctx, paperID, paper); err != nil {
		s.logger.Warn("cache write failed after store read",
			"error", err,
			"paper_id", paperID)
	}

	s.logger.Debug("paper served from store",
		"paper_id", paperID)
	return paper, PaperSourceDatabase, nil
}

// UpdatePaper merges the patch into the current record, validates the
// merged result, persists only the recognized fields, and refreshes the
// cache so the next read observes the update.
func (s *paperServiceImpl) UpdatePaper(
	ctx context.Context,
	paperID string,
	patch map[string]json.RawMessage,
) (*domain.Paper, error) {
	paper, err := s.paperRepo.GetByID(ctx, paperID)
	if err != nil {
		if errors.Is(err, store.ErrPaperNotFound) {
			s.logger.Debug("paper not found for update",
				"paper_id", paperID)
			return nil, ErrPaperNotFound
		}
		s.logger.Error("failed to retrieve paper for update",
			"error", err,
			"paper_id", paperID)
		return nil, NewPaperServiceError("update_paper", "failed to retrieve paper", err)
	}

	fields, err := paper.ApplyPatch(patch)
	if err != nil {
		s.logger.Warn("rejected paper patch",
			"error", err,
			"paper_id", paperID)
		return nil, err
	}

	// The merged record is validated as a whole; a patch that leaves the
	// paper invalid is rejected without touching the store.
	if err := paper.Validate(); err != nil {
		s.logger.Warn("merged paper failed validation",
			"error", err,
			"paper_id", paperID)
		return nil, err
	}

	if len(fields) > 0 {
		if err := s.paperRepo.Update(ctx, paperID, fields); err != nil {
			if errors.Is(err, store.ErrPaperNotFound) {
				return nil, ErrPaperNotFound
			}
			s.logger.Error("failed to save merged paper",
				"error", err,
				"paper_id", paperID)
			return nil, NewPaperServiceError("update_paper", "failed to save merged paper", err)
		}
	}

	// Write through so a subsequent read cannot observe the pre-update copy.
	if err := s.cache.Set(ctx, paperID, paper); err != nil {
		s.logger.Warn("cache write failed after update",
			"error", err,
			"paper_id", paperID)
	}

	s.logger.Info("paper updated",
		"paper_id", paperID,
		"patched_fields", len(fields))
	return paper, nil
}

// DeletePaper removes the store record and drops the cache entry.
func (s *paperServiceImpl) DeletePaper(ctx context.Context, paperID string) error {
	if err := s.paperRepo.Delete(ctx, paperID); err != nil {
		if errors.Is(err, store.ErrPaperNotFound) {
			s.logger.Debug("paper not found for delete",
				"paper_id", paperID)
			return ErrPaperNotFound
		}
		s.logger.Error("failed to delete paper",
			"error", err,
			"paper_id", paperID)
		return NewPaperServiceError("delete_paper", "failed to delete paper", err)
	}

	if err := s.cache.Invalidate(ctx, paperID); err != nil {
		s.logger.Warn("cache invalidation failed after delete",
			"error", err,
			"paper_id", paperID)
	}

	s.logger.Info("paper deleted",
		"paper_id", paperID)
	return nil
}
