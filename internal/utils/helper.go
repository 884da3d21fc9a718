package utils

import (
	"log/slog"
	"net/http"
	"strings"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
)

// ParseAndValidate decodes the JSON body into dest and validates it.
// The returned error is an AppError ready for response.Error.
func ParseAndValidate(r *http.Request, dest any, v *Validator) error {

	if err := DecodeJSONBody(r, dest); err != nil {
		slog.Warn("Invalid request", slog.String("error", err.Error()))
		return appErrors.BadRequestError(err.Error()).WithError(err)
	}

	return Validate(dest, v)
}

// sanitizer is implemented by payloads that clean their free-text fields before validation.
type sanitizer interface {
	Sanitize(clean func(string) string)
}

func Validate(data any, v *Validator) error {
	if s, ok := data.(sanitizer); ok {
		s.Sanitize(v.Sanitize)
	}

	messages, err := v.Struct(data)
	if err != nil {
		slog.Error("Unexpected validation error", slog.String("error", err.Error()))
		return appErrors.InternalError("unexpected validation error").WithError(err)
	}

	if len(messages) > 0 {
		slog.Warn("User input validation failed", slog.String("error", strings.Join(messages, "; ")))
		return appErrors.ValidationError("Validation failed").WithDetails(messages)
	}

	return nil
}
