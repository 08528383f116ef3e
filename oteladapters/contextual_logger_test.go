package oteladapters_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel/log/noop"

	"github.com/openshelf/circulation-go/oteladapters"
)

func Test_SlogBridgeLogger_AllLevels(t *testing.T) {
	// arrange
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := oteladapters.NewSlogBridgeLoggerWithHandler(handler)
	ctx := context.Background()

	// act
	logger.DebugContext(ctx, "executed sql", "duration_ms", 3)
	logger.InfoContext(ctx, "fine recorded", "amount", 200)
	logger.WarnContext(ctx, "slow query", "table", "fines")
	logger.ErrorContext(ctx, "statement failed", "table", "books")

	// assert
	output := buf.String()
	assert.Contains(t, output, "executed sql")
	assert.Contains(t, output, "fine recorded")
	assert.Contains(t, output, "slow query")
	assert.Contains(t, output, "statement failed")
	assert.Contains(t, output, `"amount":200`)
	assert.Contains(t, output, `"table":"fines"`)
}

func Test_NewSlogBridgeLogger_Construction(t *testing.T) {
	logger := oteladapters.NewSlogBridgeLogger("circulation")
	assert.NotNil(t, logger)
}

func Test_OTelLogger_AllLevels_DoNotPanic(t *testing.T) {
	// arrange - the noop logger checks record construction without an exporter
	otelLogger := noop.NewLoggerProvider().Logger("circulation")
	logger := oteladapters.NewOTelLogger(otelLogger)
	ctx := context.Background()

	// act + assert
	assert.NotPanics(t, func() {
		logger.DebugContext(ctx, "executed sql", "duration_ms", 3)
		logger.InfoContext(ctx, "fine recorded", "amount", 200)
		logger.WarnContext(ctx, "slow query", "table", "fines")
		logger.ErrorContext(ctx, "statement failed", "table", "books")
	})
}

func Test_OTelLogger_ArgumentHandling(t *testing.T) {
	// arrange
	otelLogger := noop.NewLoggerProvider().Logger("circulation")
	logger := oteladapters.NewOTelLogger(otelLogger)
	ctx := context.Background()

	// act + assert - mixed types, odd arg count, and no args must all be safe
	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "store operation",
			"operation", "insert_fine",
			"rows_affected", int64(1),
			"cached", false,
		)
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "store operation", "key1", "value1", "dangling")
	})

	assert.NotPanics(t, func() {
		logger.InfoContext(ctx, "store operation")
	})
}
