package service

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/task"
)

// MockPaperRepository mocks the PaperRepository interface
type MockPaperRepository struct {
	mock.Mock
}

func (m *MockPaperRepository) Create(ctx context.Context, paper *domain.Paper) error {
	args := m.Called(ctx, paper)
	return args.Error(0)
}

func (m *MockPaperRepository) GetByID(ctx context.Context, id string) (*domain.Paper, error) {
	args := m.Called(ctx, id)
	paper, _ := args.Get(0).(*domain.Paper)
	return paper, args.Error(1)
}

func (m *MockPaperRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPaperRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPaperCache mocks the PaperCache interface
type MockPaperCache struct {
	mock.Mock
}

func (m *MockPaperCache) Get(ctx context.Context, id string) (*domain.Paper, error) {
	args := m.Called(ctx, id)
	paper, _ := args.Get(0).(*domain.Paper)
	return paper, args.Error(1)
}

func (m *MockPaperCache) Set(ctx context.Context, id string, paper *domain.Paper) error {
	args := m.Called(ctx, id, paper)
	return args.Error(0)
}

func (m *MockPaperCache) Invalidate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTaskRepository mocks the TaskRepository interface
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, t *domain.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*domain.Task)
	return t, args.Error(1)
}

func (m *MockTaskRepository) SetResult(ctx context.Context, taskID string, status domain.TaskStatus, result *domain.ExtractionResult) error {
	args := m.Called(ctx, taskID, status, result)
	return args.Error(0)
}

// MockUploadStore mocks the UploadStore interface
type MockUploadStore struct {
	mock.Mock
}

func (m *MockUploadStore) Save(filename string, content io.Reader) (string, error) {
	args := m.Called(filename, content)
	return args.String(0), args.Error(1)
}

// MockTaskRunner mocks the TaskRunner interface
type MockTaskRunner struct {
	mock.Mock
}

func (m *MockTaskRunner) Enqueue(t task.Task) error {
	args := m.Called(t)
	return args.Error(0)
}

// MockExtractor mocks the extraction.Extractor interface
type MockExtractor struct {
	mock.Mock
}

func (m *MockExtractor) Extract(ctx context.Context, path, fileType string) (string, error) {
	args := m.Called(ctx, path, fileType)
	return args.String(0), args.Error(1)
}
