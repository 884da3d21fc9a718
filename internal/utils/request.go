package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	appErrors "github.com/aaravmahajanofficial/inventory-catalog/internal/errors"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/models"
)

// maxBodyBytes bounds request bodies; catalog payloads are small.
const maxBodyBytes = 1 << 20

var ErrEmptyBody = errors.New("request body cannot be empty")

func DecodeJSONBody(r *http.Request, dest any) error {

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))

	if err != nil {
		slog.Error("Failed to read request body",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("failed to read request body: %w", err)
	}

	defer r.Body.Close()

	if len(body) == 0 {
		slog.Warn("Empty request body", slog.String("endpoint", r.URL.Path))
		return ErrEmptyBody
	}

	if err := json.Unmarshal(body, dest); err != nil {
		slog.Warn("Failed to parse request JSON",
			slog.String("error", err.Error()),
			slog.String("endpoint", r.URL.Path),
		)
		return fmt.Errorf("invalid JSON format: %w", err)
	}

	return nil
}

// ParseID parses a positive integer path value.
func ParseID(raw, kind string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id < 1 {
		return 0, appErrors.BadRequestError(fmt.Sprintf("invalid %s id %s", kind, raw))
	}

	return id, nil
}

// ParseIDList parses a comma-joined list of ids such as "1,2,3".
func ParseIDList(raw, kind string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))

	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			continue
		}

		id, err := ParseID(part, kind)
		if err != nil {
			return nil, err
		}

		ids = append(ids, id)
	}

	if len(ids) == 0 {
		return nil, appErrors.BadRequestError(fmt.Sprintf("at least one %s id is required", kind))
	}

	return ids, nil
}

// ParseWindow reads the optional first/last query parameters.
func ParseWindow(r *http.Request) (models.WindowParams, error) {
	var params models.WindowParams
	query := r.URL.Query()

	for _, bound := range []struct {
		name string
		dest **int
	}{
		{"first", &params.First},
		{"last", &params.Last},
	} {
		raw := query.Get(bound.name)
		if raw == "" {
			continue
		}

		v, err := strconv.Atoi(raw)
		if err != nil {
			return models.WindowParams{}, appErrors.BadRequestError(fmt.Sprintf("query parameter %s must be an integer", bound.name))
		}

		*bound.dest = &v
	}

	return params, nil
}
