package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/logging"
	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("Success - Attached logger is returned", func(t *testing.T) {
		// Arrange
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		ctx := logging.WithLogger(context.Background(), logger)

		// Act
		logging.FromContext(ctx).Info("product cached")

		// Assert
		assert.Same(t, logger, logging.FromContext(ctx))
		assert.Contains(t, buf.String(), `"msg":"product cached"`)
	})

	t.Run("Success - Falls back to the default logger", func(t *testing.T) {
		assert.Equal(t, slog.Default(), logging.FromContext(context.Background()))
	})
}
