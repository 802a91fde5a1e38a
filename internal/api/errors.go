package api

import (
	"errors"
	"net/http"

	"github.com/takshila/paperbank-api/internal/domain"
	"github.com/takshila/paperbank-api/internal/service"
	"github.com/takshila/paperbank-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, service.ErrPaperNotFound),
		errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Validation errors: the record (or the merged result of a patch)
	// violates the schema
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Default: internal server error (store failures, unacknowledged
	// writes, queue failures)
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	// Handle nil error
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Not found errors
	case errors.Is(err, service.ErrPaperNotFound),
		errors.Is(err, store.ErrPaperNotFound):
		return "Paper not found"

	case errors.Is(err, service.ErrTaskNotFound),
		errors.Is(err, store.ErrTaskNotFound):
		return "Task not found"

	// Validation errors carry their own field-level detail, which is safe
	// to return
	case errors.Is(err, domain.ErrValidation):
		return err.Error()

	// Default case for unknown errors
	default:
		return "An unexpected error occurred"
	}
}
