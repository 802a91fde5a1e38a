package shared

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/takshila/paperbank-api/internal/redact"
)

// Response is the envelope every endpoint returns, success or failure.
// Failure envelopes carry a null Data field; the detailed cause is logged
// server-side, never serialized to the client.
type Response struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// statusLabel derives the envelope status field from the HTTP status code.
// 202 is the asynchronous accept path and is labeled "processing"; other
// non-error codes are "success" and everything from 400 up is "error".
func statusLabel(code int) string {
	switch {
	case code == http.StatusAccepted:
		return "processing"
	case code < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// RespondWithJSON writes a JSON response with the given status code and body.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithData writes a success envelope with the given status code,
// message, and data payload.
func RespondWithData(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	RespondWithJSON(w, r, status, Response{
		Code:    status,
		Status:  statusLabel(status),
		Message: message,
		Data:    data,
	})
}

// RespondWithError writes an error envelope with the given status code and
// message. The data field is always null on failures.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	traceID := GetTraceID(r.Context())

	slog.Debug("sending error response",
		"status_code", status,
		"message", message,
		"trace_id", traceID,
		"path", r.URL.Path,
		"method", r.Method)

	RespondWithJSON(w, r, status, Response{
		Code:    status,
		Status:  statusLabel(status),
		Message: message,
		Data:    nil,
	})
}

// RespondWithErrorAndLog writes an error envelope and also logs the detailed
// error. This is used where the full error must be logged but only a
// sanitized message may reach the client.
//
// Log level strategy:
// - 5xx errors: logged at ERROR level
// - 4xx errors: logged at DEBUG level (expected client conditions)
func RespondWithErrorAndLog(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	userMessage string,
	err error,
) {
	traceID := GetTraceID(r.Context())

	logAttrs := []slog.Attr{
		slog.String("trace_id", traceID),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method),
		slog.Int("status_code", status),
		slog.String("user_message", userMessage),
	}

	// The raw error string goes to the logs only, redacted.
	if err != nil {
		logAttrs = append(logAttrs, slog.String("error", redact.Error(err)))
		logAttrs = append(logAttrs, slog.String("error_type", fmt.Sprintf("%T", err)))
	}

	logLevel := slog.LevelDebug
	if status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}

	slog.LogAttrs(r.Context(), logLevel, "API error response", logAttrs...)

	RespondWithJSON(w, r, status, Response{
		Code:    status,
		Status:  statusLabel(status),
		Message: userMessage,
		Data:    nil,
	})
}
