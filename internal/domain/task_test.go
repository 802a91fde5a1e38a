package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	t.Parallel()

	task := NewTask("/data/uploads/f.pdf", "pdf")

	assert.NotEmpty(t, task.ID)
	assert.Equal(t, TaskStatusProcessing, task.Status)
	assert.Equal(t, "/data/uploads/f.pdf", task.FilePath)
	assert.Equal(t, "pdf", task.FileType)
	assert.Nil(t, task.ExtractData)
	assert.False(t, task.CreatedAt.IsZero())
	require.NoError(t, task.Validate())
}

func TestTaskValidate(t *testing.T) {
	t.Parallel()

	task := NewTask("/data/uploads/f.txt", "text")

	task.ID = ""
	assert.ErrorIs(t, task.Validate(), ErrEmptyTaskID)

	task.ID = "t1"
	task.Status = "paused"
	assert.ErrorIs(t, task.Validate(), ErrInvalidTaskStatus)
}

func TestTaskStatusIsTerminal(t *testing.T) {
	t.Parallel()

	assert.False(t, TaskStatusProcessing.IsTerminal())
	assert.True(t, TaskStatusCompleted.IsTerminal())
	assert.True(t, TaskStatusFailed.IsTerminal())
}
