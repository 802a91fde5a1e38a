package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the lifecycle state of an extraction task.
type TaskStatus string

// Possible task status values
const (
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

// IsTerminal reports whether the status is one of the two final states.
// A task reaches a terminal state exactly once and never leaves it.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// ExtractionResult is the outcome payload recorded on a task when it
// reaches a terminal state: the extracted text on success, or the failure
// description on failure. The description is stored exactly as produced.
type ExtractionResult struct {
	Text  string `json:"text,omitempty" bson:"text,omitempty"`
	Error string `json:"error,omitempty" bson:"error,omitempty"`
}

// Task represents an asynchronous text-extraction job. It is created in
// the processing state when an upload is accepted, transitions exactly
// once to completed or failed, and is never deleted.
type Task struct {
	ID          string            `json:"task_id" bson:"task_id"`
	Status      TaskStatus        `json:"task_status" bson:"task_status"`
	ExtractData *ExtractionResult `json:"extract_data,omitempty" bson:"extract_data,omitempty"`
	FilePath    string            `json:"file_path,omitempty" bson:"file_path,omitempty"`
	FileType    string            `json:"file_type,omitempty" bson:"file_type,omitempty"`
	CreatedAt   time.Time         `json:"created_at" bson:"created_at"`
}

// NewTask creates a task for the given stored file in the processing
// state. It generates the task identifier and sets the creation timestamp.
func NewTask(filePath, fileType string) *Task {
	return &Task{
		ID:        uuid.NewString(),
		Status:    TaskStatusProcessing,
		FilePath:  filePath,
		FileType:  fileType,
		CreatedAt: time.Now().UTC(),
	}
}

// Validate checks that the task carries an identifier and a known status.
func (t *Task) Validate() error {
	if t.ID == "" {
		return ErrEmptyTaskID
	}
	if !isValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}
	return nil
}

// isValidTaskStatus checks if the given status is a valid TaskStatus.
func isValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusProcessing, TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}
