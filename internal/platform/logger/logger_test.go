package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris/catalog-api/internal/config"
	"github.com/libris/catalog-api/internal/platform/logger"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{name: "debug level", logLevel: "debug"},
		{name: "info level", logLevel: "info"},
		{name: "warn level", logLevel: "warn"},
		{name: "error level", logLevel: "error"},
		{name: "uppercase accepted", logLevel: "INFO"},
		{name: "invalid level falls back to info", logLevel: "verbose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, err := logger.Setup(config.ServerConfig{LogLevel: tc.logLevel})

			require.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, slog.Default(), log, "Setup installs the logger as default")
		})
	}
}

func TestLoggerContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		custom := slog.Default().With("component", "test")
		ctx := logger.WithLogger(context.Background(), custom)

		assert.Same(t, custom, logger.FromContext(ctx))
		assert.Same(t, custom, logger.FromContextOrDefault(ctx, nil))
	})

	t.Run("empty context falls back to default", func(t *testing.T) {
		t.Parallel()

		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers the given default", func(t *testing.T) {
		t.Parallel()

		def := slog.Default().With("component", "store")

		assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))
	})
}
