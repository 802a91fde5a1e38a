package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/takshila/paperbank-api/internal/api/shared"
	"github.com/takshila/paperbank-api/internal/service"
)

// maxUploadMemory is the in-memory buffer limit for parsing multipart
// uploads; larger payloads spill to temporary files.
const maxUploadMemory = 32 << 20

// ExtractionHandler handles text extraction HTTP requests
type ExtractionHandler struct {
	extractionService service.ExtractionService
}

// NewExtractionHandler creates a new ExtractionHandler
func NewExtractionHandler(extractionService service.ExtractionService) *ExtractionHandler {
	return &ExtractionHandler{
		extractionService: extractionService,
	}
}

// StartTextExtraction handles POST /extract/text requests. The upload is
// accepted unconditionally; extraction runs asynchronously and its outcome,
// success or failure, is observable only by polling the returned task.
func (h *ExtractionHandler) StartTextExtraction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	defer func() {
		_ = file.Close()
	}()

	task, err := h.extractionService.StartExtraction(r.Context(), header.Filename, file)
	if err != nil {
		respondServiceError(w, r, err, "Failed to start extraction")
		return
	}

	message := fmt.Sprintf("%s extraction started", strings.ToUpper(task.FileType))
	shared.RespondWithData(w, r, http.StatusAccepted, message, map[string]string{
		"task_id": task.ID,
	})
}

// GetTaskStatus handles GET /tasks/{task_id} requests. Terminal tasks also
// carry their recorded extraction outcome.
func (h *ExtractionHandler) GetTaskStatus(w http.ResponseWriter, r *http.Request) {
	taskID := chi.URLParam(r, "task_id")

	task, err := h.extractionService.GetTask(r.Context(), taskID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve task")
		return
	}

	data := map[string]any{
		"status": string(task.Status),
	}
	if task.Status.IsTerminal() && task.ExtractData != nil {
		data["extracted_data"] = task.ExtractData
	}

	shared.RespondWithData(w, r, http.StatusOK, "Task status retrieved", data)
}
