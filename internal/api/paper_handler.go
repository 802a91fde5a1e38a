package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/takshila/paperbank-api/internal/api/shared"
	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/service"
)

// PaperHandler handles sample paper HTTP requests
type PaperHandler struct {
	paperService service.PaperService
}

// NewPaperHandler creates a new PaperHandler
func NewPaperHandler(paperService service.PaperService) *PaperHandler {
	return &PaperHandler{
		paperService: paperService,
	}
}

// respondServiceError writes the envelope for a failed service call. The
// fallback message is used for server errors, where the underlying cause is
// logged but never returned.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status >= http.StatusInternalServerError {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// CreatePaper handles POST /paper requests. The identifier is assigned by
// the server; any identifier in the body is ignored.
func (h *PaperHandler) CreatePaper(w http.ResponseWriter, r *http.Request) {
	var paper domain.Paper
	if err := shared.DecodeJSON(r, &paper); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	paperID, err := h.paperService.CreatePaper(r.Context(), &paper)
	if err != nil {
		respondServiceError(w, r, err, "Failed to create sample paper")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Sample paper created successfully", map[string]string{
		"paper_id": paperID,
	})
}

// GetPaper handles GET /papers/{id} requests. The message reports whether
// the paper was served from the cache or the database.
func (h *PaperHandler) GetPaper(w http.ResponseWriter, r *http.Request) {
	paperID := chi.URLParam(r, "id")

	paper, source, err := h.paperService.GetPaper(r.Context(), paperID)
	if err != nil {
		respondServiceError(w, r, err, "Failed to retrieve paper")
		return
	}

	message := "Paper retrieved from database"
	if source == service.PaperSourceCache {
		message = "Paper retrieved from cache"
	}
	shared.RespondWithData(w, r, http.StatusOK, message, paper)
}

// UpdatePaper handles PUT /papers/{id} requests. The body is a partial
// field map merged into the stored paper; the merged record is returned.
func (h *PaperHandler) UpdatePaper(w http.ResponseWriter, r *http.Request) {
	paperID := chi.URLParam(r, "id")

	var patch map[string]json.RawMessage
	if err := shared.DecodeJSON(r, &patch); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	merged, err := h.paperService.UpdatePaper(r.Context(), paperID, patch)
	if err != nil {
		respondServiceError(w, r, err, "Failed to update paper")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Paper updated successfully", merged)
}

// DeletePaper handles DELETE /papers/{id} requests.
func (h *PaperHandler) DeletePaper(w http.ResponseWriter, r *http.Request) {
	paperID := chi.URLParam(r, "id")

	if err := h.paperService.DeletePaper(r.Context(), paperID); err != nil {
		respondServiceError(w, r, err, "Failed to delete paper")
		return
	}

	shared.RespondWithData(w, r, http.StatusOK, "Paper deleted successfully", nil)
}
