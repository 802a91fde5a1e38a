package store

import (
	"context"

	"github.com/takshila/paperbank-api/internal/domain"
)

// TaskStore defines the interface for extraction task persistence.
// Version: 1.0
type TaskStore interface {
	// Create saves a new task to the store. The task arrives in the
	// processing state with its identifier already assigned.
	// Returns ErrInsertNotAcknowledged if the store does not acknowledge
	// the new record.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its application-assigned identifier.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// SetResult records the task's single terminal transition: status must
	// be completed or failed and is written together with the outcome
	// payload in one merge-patch. Returns domain.ErrInvalidTaskStatus if
	// status is not terminal, ErrTaskAlreadyFinished if the task already
	// left the processing state, and ErrTaskNotFound if it does not exist.
	SetResult(ctx context.Context, id string, status domain.TaskStatus, result *domain.ExtractionResult) error
}
