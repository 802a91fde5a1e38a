package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/extraction"
)

// Common errors
var (
	ErrNilExtractor   = errors.New("extractor cannot be nil")
	ErrNilResultStore = errors.New("result store cannot be nil")
	ErrNilLogger      = errors.New("logger cannot be nil")
	ErrEmptyTaskID    = errors.New("task ID cannot be empty")
	ErrEmptyFilePath  = errors.New("file path cannot be empty")
)

// TaskResultStore defines the store operations the extraction task needs to
// record its outcome
type TaskResultStore interface {
	// SetResult transitions a processing task to a terminal status and
	// stores the extraction result on the task record
	SetResult(ctx context.Context, taskID string, status domain.TaskStatus, result *domain.ExtractionResult) error
}

// TextExtractionTask implements the Task interface for extracting text from
// an uploaded document. The outcome, success or failure, is written to the
// task record exactly once; failures are never re-run.
type TextExtractionTask struct {
	taskID    string
	filePath  string
	fileType  string
	extractor extraction.Extractor
	results   TaskResultStore
	logger    *slog.Logger
}

// NewTextExtractionTask creates a new text extraction task bound to an
// existing task record
func NewTextExtractionTask(
	taskID string,
	filePath string,
	fileType string,
	extractor extraction.Extractor,
	results TaskResultStore,
	logger *slog.Logger,
) (*TextExtractionTask, error) {
	// Validate dependencies
	if extractor == nil {
		return nil, ErrNilExtractor
	}
	if results == nil {
		return nil, ErrNilResultStore
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	// Validate task parameters
	if taskID == "" {
		return nil, ErrEmptyTaskID
	}
	if filePath == "" {
		return nil, ErrEmptyFilePath
	}

	return &TextExtractionTask{
		taskID:    taskID,
		filePath:  filePath,
		fileType:  fileType,
		extractor: extractor,
		results:   results,
		logger:    logger.With("task_type", TaskTypeTextExtraction, "task_id", taskID),
	}, nil
}

// ID returns the task's unique identifier. It is the same identifier the
// task record carries, so log lines and poll responses correlate.
func (t *TextExtractionTask) ID() string {
	return t.taskID
}

// Type returns the task type identifier
func (t *TextExtractionTask) Type() string {
	return TaskTypeTextExtraction
}

// Execute runs the extraction and records the outcome on the task record.
// Extraction errors are stored verbatim on the failed record; they are also
// returned so the worker pool can log them.
func (t *TextExtractionTask) Execute(ctx context.Context) error {
	t.logger.Info("starting text extraction task",
		"file_path", t.filePath,
		"file_type", t.fileType)

	// Check for context cancellation before doing any work
	if err := ctx.Err(); err != nil {
		t.recordFailure(ctx, err)
		return fmt.Errorf("task cancelled by context: %w", err)
	}

	text, err := t.extractor.Extract(ctx, t.filePath, t.fileType)
	if err != nil {
		t.recordFailure(ctx, err)
		return fmt.Errorf("text extraction failed: %w", err)
	}

	result := &domain.ExtractionResult{Text: text}
	if err := t.results.SetResult(ctx, t.taskID, domain.TaskStatusCompleted, result); err != nil {
		return fmt.Errorf("failed to record extraction result: %w", err)
	}

	t.logger.Info("text extraction task completed", "characters", len(text))
	return nil
}

// recordFailure marks the task record failed, preserving the cause's text
// exactly as produced. The write must go through even when the task context
// was cancelled, so cancellation is stripped from the context first.
func (t *TextExtractionTask) recordFailure(ctx context.Context, cause error) {
	writeCtx := context.WithoutCancel(ctx)

	result := &domain.ExtractionResult{Error: cause.Error()}
	if err := t.results.SetResult(writeCtx, t.taskID, domain.TaskStatusFailed, result); err != nil {
		t.logger.Error("failed to record task failure",
			"error", err,
			"cause", cause)
	}
}
