package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/extraction"
	"github.com/takshila/paperbank-api/internal/store"
	"github.com/takshila/paperbank-api/internal/task"
)

// TaskRepository defines the repository interface for the service layer.
// This is aligned with store.TaskStore.
type TaskRepository interface {
	// Create saves a new task to the store
	Create(ctx context.Context, t *domain.Task) error

	// GetByID retrieves a task by its unique ID
	GetByID(ctx context.Context, id string) (*domain.Task, error)

	// SetResult records a task's terminal transition with its outcome
	SetResult(ctx context.Context, taskID string, status domain.TaskStatus, result *domain.ExtractionResult) error
}

// UploadStore defines the interface for persisting uploaded files
type UploadStore interface {
	// Save writes the content to storage and returns the stored path
	Save(filename string, content io.Reader) (string, error)
}

// TaskRunner defines the interface for submitting background tasks
type TaskRunner interface {
	// Enqueue adds a task to the processing queue
	Enqueue(t task.Task) error
}

// ExtractionService provides asynchronous text extraction operations. An
// accepted upload produces a task record in the processing state; the
// extraction itself runs on the worker pool and records its outcome on the
// task record, so clients observe results only by polling.
type ExtractionService interface {
	// StartExtraction stores the uploaded file, creates a processing task
	// record, and submits the extraction job to the queue. The returned
	// task carries the identifier clients poll with.
	StartExtraction(ctx context.Context, filename string, content io.Reader) (*domain.Task, error)

	// GetTask retrieves a task record by its identifier.
	GetTask(ctx context.Context, taskID string) (*domain.Task, error)
}

// Common sentinel errors for ExtractionService
var (
	// ErrTaskNotFound indicates that the task does not exist
	ErrTaskNotFound = errors.New("task not found")
)

// ExtractionServiceError wraps errors from the extraction service with context.
type ExtractionServiceError struct {
	// Operation is the operation that failed (e.g., "start_extraction", "get_task")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ExtractionServiceError.
func (e *ExtractionServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("extraction service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ExtractionServiceError) Unwrap() error {
	return e.Err
}

// NewExtractionServiceError creates a new ExtractionServiceError.
// It returns known sentinel errors directly without wrapping.
func NewExtractionServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	// Map store-level not-found to the service-level sentinel
	if errors.Is(err, ErrTaskNotFound) || errors.Is(err, store.ErrTaskNotFound) {
		return ErrTaskNotFound
	}

	// If not a sentinel to be returned directly, wrap it
	return &ExtractionServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// extractionServiceImpl implements the ExtractionService interface
type extractionServiceImpl struct {
	taskRepo   TaskRepository
	uploads    UploadStore
	extractor  extraction.Extractor
	taskRunner TaskRunner
	logger     *slog.Logger
}

// NewExtractionService creates a new ExtractionService.
// It returns an error if any of the required dependencies are nil.
func NewExtractionService(
	taskRepo TaskRepository,
	uploads UploadStore,
	extractor extraction.Extractor,
	taskRunner TaskRunner,
	logger *slog.Logger,
) (ExtractionService, error) {
	// Validate dependencies
	if taskRepo == nil {
		return nil, &ExtractionServiceError{
			Operation: "create_service",
			Message:   "taskRepo cannot be nil",
			Err:       nil,
		}
	}
	if uploads == nil {
		return nil, &ExtractionServiceError{
			Operation: "create_service",
			Message:   "uploads cannot be nil",
			Err:       nil,
		}
	}
	if extractor == nil {
		return nil, &ExtractionServiceError{
			Operation: "create_service",
			Message:   "extractor cannot be nil",
			Err:       nil,
		}
	}
	if taskRunner == nil {
		return nil, &ExtractionServiceError{
			Operation: "create_service",
			Message:   "taskRunner cannot be nil",
			Err:       nil,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &extractionServiceImpl{
		taskRepo:   taskRepo,
		uploads:    uploads,
		extractor:  extractor,
		taskRunner: taskRunner,
		logger:     logger.With("component", "extraction_service"),
	}, nil
}

// StartExtraction persists the upload, records a processing task, and
// submits the job. The task record is created before the job is enqueued,
// so a client holding the returned identifier can always poll it. The file
// type is detected from the filename here; unsupported types are still
// accepted and fail inside the job, never synchronously.
func (s *extractionServiceImpl) StartExtraction(
	ctx context.Context,
	filename string,
	content io.Reader,
) (*domain.Task, error) {
	path, err := s.uploads.Save(filename, content)
	if err != nil {
		s.logger.Error("failed to store uploaded file",
			"error", err,
			"filename", filename)
		return nil, NewExtractionServiceError("start_extraction", "failed to store uploaded file", err)
	}

	fileType := extraction.DetectFileType(filename)

	t := domain.NewTask(path, fileType)
	if err := s.taskRepo.Create(ctx, t); err != nil {
		s.logger.Error("failed to create task record",
			"error", err,
			"task_id", t.ID)
		return nil, NewExtractionServiceError("start_extraction", "failed to create task record", err)
	}

	job, err := task.NewTextExtractionTask(t.ID, path, fileType, s.extractor, s.taskRepo, s.logger)
	if err != nil {
		s.logger.Error("failed to build extraction job",
			"error", err,
			"task_id", t.ID)
		return nil, NewExtractionServiceError("start_extraction", "failed to build extraction job", err)
	}

	if err := s.taskRunner.Enqueue(job); err != nil {
		// The task record already exists and stays in the processing
		// state; there is no retry path that would pick it up again.
		s.logger.Error("failed to enqueue extraction job",
			"error", err,
			"task_id", t.ID)
		return nil, NewExtractionServiceError("start_extraction", "failed to enqueue extraction job", err)
	}

	s.logger.Info("extraction task accepted",
		"task_id", t.ID,
		"file_type", fileType,
		"file_path", path)
	return t, nil
}

// GetTask retrieves a task record by its identifier.
func (s *extractionServiceImpl) GetTask(ctx context.Context, taskID string) (*domain.Task, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, store.ErrTaskNotFound) {
			s.logger.Debug("task not found",
				"task_id", taskID)
			return nil, ErrTaskNotFound
		}
		s.logger.Error("failed to retrieve task",
			"error", err,
			"task_id", taskID)
		return nil, NewExtractionServiceError("get_task", "failed to retrieve task", err)
	}

	s.logger.Debug("retrieved task",
		"task_id", taskID,
		"status", t.Status)
	return t, nil
}
