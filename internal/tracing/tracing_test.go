package tracing_test

import (
	"testing"

	"github.com/aaravmahajanofficial/inventory-catalog/internal/config"
	"github.com/aaravmahajanofficial/inventory-catalog/internal/tracing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewProvider(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Spans carry the service resource", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{Env: "test", Otel: config.Otel{ServiceName: "inventory-catalog", SamplerRatio: 1}}
		recorder := tracetest.NewSpanRecorder()

		// Act
		tp, err := tracing.NewProvider(ctx, cfg, sdktrace.WithSpanProcessor(recorder))
		require.NoError(t, err)
		t.Cleanup(func() { _ = tp.Shutdown(ctx) })

		_, span := otel.Tracer("test").Start(ctx, "GET /products")
		span.End()

		// Assert
		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "GET /products", spans[0].Name())
		assert.Contains(t, spans[0].Resource().Attributes(), attribute.String("service.name", "inventory-catalog"))
		assert.Contains(t, spans[0].Resource().Attributes(), attribute.String("deployment.environment", "test"))
	})

	t.Run("Success - Zero ratio samples nothing", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{Otel: config.Otel{ServiceName: "inventory-catalog", SamplerRatio: 0}}
		recorder := tracetest.NewSpanRecorder()

		// Act
		tp, err := tracing.NewProvider(ctx, cfg, sdktrace.WithSpanProcessor(recorder))
		require.NoError(t, err)
		t.Cleanup(func() { _ = tp.Shutdown(ctx) })

		_, span := tp.Tracer("test").Start(ctx, "GET /categories")
		span.End()

		// Assert
		assert.Empty(t, recorder.Ended())
	})

	t.Run("Success - Exporter endpoint is accepted without dialing", func(t *testing.T) {
		// Arrange
		cfg := &config.Config{Otel: config.Otel{
			ServiceName:      "inventory-catalog",
			ExporterEndpoint: "http://localhost:4318/v1/traces",
			SamplerRatio:     1,
		}}

		// Act
		tp, err := tracing.NewProvider(ctx, cfg)

		// Assert
		require.NoError(t, err)
		assert.NotNil(t, tp)
	})
}
