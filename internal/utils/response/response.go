package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}

const internalErrorMessage = "An unexpected error occurred"

// interface {} == any
func WriteJson(w http.ResponseWriter, statusCode int, data any) error {

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data) //struct to json
}

func Success(w http.ResponseWriter, statusCode int, data any) {
	if err := WriteJson(w, statusCode, data); err != nil {
		slog.Error("Failed to encode response", slog.String("error", err.Error()))
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// Error is the single translator from service errors to HTTP responses.
// AppErrors keep their status and message; anything else becomes a 500
// with a generic message so storage details never leak to clients.
func Error(w http.ResponseWriter, r *http.Request, err error) {

	statusCode := http.StatusInternalServerError
	message := internalErrorMessage

	if appErr, ok := errors.IsAppError(err); ok {
		statusCode = appErr.StatusCode
		message = appErr.Message

		if appErr.Code == errors.ErrCodeValidation && appErr.Detail != "" {
			message = appErr.Detail
		}

		if statusCode >= http.StatusInternalServerError {
			message = internalErrorMessage
		}
	}

	if statusCode >= http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "Request failed",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
	}

	if writeErr := WriteJson(w, statusCode, ErrorResponse{Message: message, URL: r.URL.Path}); writeErr != nil {
		slog.Error("Failed to encode error response", slog.String("error", writeErr.Error()))
	}
}
