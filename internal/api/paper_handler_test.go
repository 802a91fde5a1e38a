package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takshila/paperbank-api/internal/api/shared"
	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/service"
	"github.com/takshila/paperbank-api/internal/store"
)

// MockPaperService is a mock implementation of service.PaperService for testing
type MockPaperService struct {
	CreatePaperFn func(ctx context.Context, paper *domain.Paper) (string, error)
	GetPaperFn    func(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error)
	UpdatePaperFn func(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error)
	DeletePaperFn func(ctx context.Context, paperID string) error
}

// CreatePaper implements service.PaperService
func (m *MockPaperService) CreatePaper(ctx context.Context, paper *domain.Paper) (string, error) {
	if m.CreatePaperFn != nil {
		return m.CreatePaperFn(ctx, paper)
	}
	return "", nil
}

// GetPaper implements service.PaperService
func (m *MockPaperService) GetPaper(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error) {
	if m.GetPaperFn != nil {
		return m.GetPaperFn(ctx, paperID)
	}
	return nil, "", nil
}

// UpdatePaper implements service.PaperService
func (m *MockPaperService) UpdatePaper(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error) {
	if m.UpdatePaperFn != nil {
		return m.UpdatePaperFn(ctx, paperID, patch)
	}
	return nil, nil
}

// DeletePaper implements service.PaperService
func (m *MockPaperService) DeletePaper(ctx context.Context, paperID string) error {
	if m.DeletePaperFn != nil {
		return m.DeletePaperFn(ctx, paperID)
	}
	return nil
}

// newPaperRouter registers the paper routes the way the server does, so the
// tests exercise the exact request paths.
func newPaperRouter(svc service.PaperService) *chi.Mux {
	h := NewPaperHandler(svc)
	r := chi.NewRouter()
	r.Post("/paper", h.CreatePaper)
	r.Get("/papers/{id}", h.GetPaper)
	r.Put("/papers/{id}", h.UpdatePaper)
	r.Delete("/papers/{id}", h.DeletePaper)
	return r
}

// decodeEnvelope decodes the response body into the shared envelope.
func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) shared.Response {
	t.Helper()
	var resp shared.Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

// handlerTestPaper returns a valid paper for handler tests.
func handlerTestPaper(id string) *domain.Paper {
	return &domain.Paper{
		ID:    id,
		Title: "Math Mid-Term",
		Type:  domain.PaperTypeMock,
		Time:  90,
		Marks: 80,
		Params: domain.PaperParams{
			Board:   "CBSE",
			Grade:   10,
			Subject: "Mathematics",
		},
		Tags:     []string{"algebra"},
		Chapters: []string{"Linear Equations"},
		Sections: []domain.Section{},
	}
}

func TestPaperHandler_CreatePaper(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockPaperService)
		expectedStatus int
		expectedLabel  string
		expectedMsg    string
		expectPaperID  bool
	}{
		{
			name: "successful_creation",
			body: `{"title":"Math Mid-Term","type":"mock","time":90,"marks":80,"params":{"board":"CBSE","grade":10,"subject":"Mathematics"}}`,
			setupMock: func(ms *MockPaperService) {
				ms.CreatePaperFn = func(ctx context.Context, paper *domain.Paper) (string, error) {
					return "paper-123", nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedLabel:  "success",
			expectedMsg:    "Sample paper created successfully",
			expectPaperID:  true,
		},
		{
			name:           "malformed_body",
			body:           `{"title": `,
			setupMock:      func(ms *MockPaperService) {},
			expectedStatus: http.StatusBadRequest,
			expectedLabel:  "error",
			expectedMsg:    "Invalid request format",
		},
		{
			name: "validation_failure",
			body: `{"type":"mock"}`,
			setupMock: func(ms *MockPaperService) {
				ms.CreatePaperFn = func(ctx context.Context, paper *domain.Paper) (string, error) {
					return "", fmt.Errorf("%w: field Title failed on required", domain.ErrValidation)
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedLabel:  "error",
			expectedMsg:    "validation failed: field Title failed on required",
		},
		{
			name: "unacknowledged_insert",
			body: `{"title":"Math Mid-Term","type":"mock","time":90,"marks":80,"params":{"board":"CBSE","grade":10,"subject":"Mathematics"}}`,
			setupMock: func(ms *MockPaperService) {
				ms.CreatePaperFn = func(ctx context.Context, paper *domain.Paper) (string, error) {
					return "", service.NewPaperServiceError("create_paper", "failed to save paper", store.ErrInsertNotAcknowledged)
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedLabel:  "error",
			expectedMsg:    "Failed to create sample paper",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockPaperService{}
			tc.setupMock(mockService)
			router := newPaperRouter(mockService)

			req := httptest.NewRequest(http.MethodPost, "/paper", bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.Equal(t, tc.expectedStatus, resp.Code)
			assert.Equal(t, tc.expectedLabel, resp.Status)
			assert.Equal(t, tc.expectedMsg, resp.Message)

			if tc.expectPaperID {
				data, ok := resp.Data.(map[string]any)
				require.True(t, ok, "data should be an object")
				assert.Equal(t, "paper-123", data["paper_id"])
			} else if tc.expectedLabel == "error" {
				assert.Nil(t, resp.Data, "failure envelopes carry null data")
			}
		})
	}
}

func TestPaperHandler_GetPaper(t *testing.T) {
	tests := []struct {
		name           string
		paperID        string
		setupMock      func(*MockPaperService)
		expectedStatus int
		expectedMsg    string
		expectPaper    bool
	}{
		{
			name:    "served_from_cache",
			paperID: "paper-1",
			setupMock: func(ms *MockPaperService) {
				ms.GetPaperFn = func(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error) {
					return handlerTestPaper(paperID), service.PaperSourceCache, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Paper retrieved from cache",
			expectPaper:    true,
		},
		{
			name:    "served_from_database",
			paperID: "paper-1",
			setupMock: func(ms *MockPaperService) {
				ms.GetPaperFn = func(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error) {
					return handlerTestPaper(paperID), service.PaperSourceDatabase, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Paper retrieved from database",
			expectPaper:    true,
		},
		{
			name:    "not_found",
			paperID: "missing",
			setupMock: func(ms *MockPaperService) {
				ms.GetPaperFn = func(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error) {
					return nil, "", service.ErrPaperNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Paper not found",
		},
		{
			name:    "store_failure",
			paperID: "paper-1",
			setupMock: func(ms *MockPaperService) {
				ms.GetPaperFn = func(ctx context.Context, paperID string) (*domain.Paper, service.PaperSource, error) {
					return nil, "", errors.New("server selection timeout")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "Failed to retrieve paper",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockPaperService{}
			tc.setupMock(mockService)
			router := newPaperRouter(mockService)

			req := httptest.NewRequest(http.MethodGet, "/papers/"+tc.paperID, nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.Equal(t, tc.expectedMsg, resp.Message)

			if tc.expectPaper {
				data, ok := resp.Data.(map[string]any)
				require.True(t, ok, "data should be the paper object")
				assert.Equal(t, tc.paperID, data["paper_id"])
				assert.Equal(t, "Math Mid-Term", data["title"])
			} else {
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestPaperHandler_UpdatePaper(t *testing.T) {
	tests := []struct {
		name           string
		paperID        string
		body           string
		setupMock      func(*MockPaperService)
		expectedStatus int
		expectedMsg    string
		expectPaper    bool
	}{
		{
			name:    "successful_update",
			paperID: "paper-1",
			body:    `{"title":"Math Final"}`,
			setupMock: func(ms *MockPaperService) {
				ms.UpdatePaperFn = func(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error) {
					merged := handlerTestPaper(paperID)
					merged.Title = "Math Final"
					return merged, nil
				}
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Paper updated successfully",
			expectPaper:    true,
		},
		{
			name:           "malformed_body",
			paperID:        "paper-1",
			body:           `not json`,
			setupMock:      func(ms *MockPaperService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "Invalid request format",
		},
		{
			name:    "not_found",
			paperID: "missing",
			body:    `{"title":"Math Final"}`,
			setupMock: func(ms *MockPaperService) {
				ms.UpdatePaperFn = func(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error) {
					return nil, service.ErrPaperNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "Paper not found",
		},
		{
			name:    "merged_record_invalid",
			paperID: "paper-1",
			body:    `{"marks":0}`,
			setupMock: func(ms *MockPaperService) {
				ms.UpdatePaperFn = func(ctx context.Context, paperID string, patch map[string]json.RawMessage) (*domain.Paper, error) {
					return nil, fmt.Errorf("%w: field Marks failed on gt=0", domain.ErrValidation)
				}
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedMsg:    "validation failed: field Marks failed on gt=0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockPaperService{}
			tc.setupMock(mockService)
			router := newPaperRouter(mockService)

			req := httptest.NewRequest(http.MethodPut, "/papers/"+tc.paperID, bytes.NewBufferString(tc.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedStatus, rec.Code)
			resp := decodeEnvelope(t, rec)
			assert.Equal(t, tc.expectedMsg, resp.Message)

			if tc.expectPaper {
				data, ok := resp.Data.(map[string]any)
				require.True(t, ok, "data should be the merged paper")
				assert.Equal(t, "Math Final", data["title"])
			} else {
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestPaperHandler_DeletePaper(t *testing.T) {
	t.Run("successful_delete", func(t *testing.T) {
		mockService := &MockPaperService{
			DeletePaperFn: func(ctx context.Context, paperID string) error {
				assert.Equal(t, "paper-1", paperID)
				return nil
			},
		}
		router := newPaperRouter(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/papers/paper-1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "success", resp.Status)
		assert.Equal(t, "Paper deleted successfully", resp.Message)
		assert.Nil(t, resp.Data)
	})

	t.Run("not_found", func(t *testing.T) {
		mockService := &MockPaperService{
			DeletePaperFn: func(ctx context.Context, paperID string) error {
				return service.ErrPaperNotFound
			},
		}
		router := newPaperRouter(mockService)

		req := httptest.NewRequest(http.MethodDelete, "/papers/missing", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, "error", resp.Status)
		assert.Equal(t, "Paper not found", resp.Message)
		assert.Nil(t, resp.Data)
	})
}
