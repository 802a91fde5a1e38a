package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrPaperNotFound, ErrTaskNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrInsertNotAcknowledged is returned when the store does not
	// acknowledge a newly inserted record. The record must be treated as
	// not persisted.
	ErrInsertNotAcknowledged = errors.New("insert not acknowledged")

	// ErrCacheMiss is returned by cache implementations when no entry
	// exists for the requested key. A miss is an expected outcome, not a
	// failure; callers fall through to the document store.
	ErrCacheMiss = errors.New("cache miss")

	// ErrTaskAlreadyFinished is returned when a terminal transition is
	// attempted on a task that already reached a terminal state. The first
	// recorded result is preserved.
	ErrTaskAlreadyFinished = errors.New("task already finished")

	// Entity-specific "not found" errors

	// ErrPaperNotFound indicates that the requested paper does not exist in the store.
	ErrPaperNotFound = fmt.Errorf("%w: paper", ErrNotFound)

	// ErrTaskNotFound indicates that the requested task does not exist in the store.
	ErrTaskNotFound = fmt.Errorf("%w: task", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific errors with additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "paper", "task")
	Operation string // The operation that failed (e.g., "create", "update")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf(
			"%s operation on %s failed: %s: %v",
			e.Operation,
			e.Entity,
			e.Message,
			e.Err,
		)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError with the given entity, operation, message, and wrapped error.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
