package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libris/catalog-api/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CATALOG_DATABASE_URL", "postgres://localhost:5432/catalog")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.True(t, cfg.Server.RateLimitEnabled)
	assert.Equal(t, 10.0, cfg.Server.RateLimitRPS)
	assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.True(t, cfg.Database.Seed)
	assert.Equal(t, "postgres://localhost:5432/catalog", cfg.Database.URL)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("CATALOG_DATABASE_URL", "postgres://db:5432/catalog")
	t.Setenv("CATALOG_SERVER_PORT", "9090")
	t.Setenv("CATALOG_SERVER_LOG_LEVEL", "debug")
	t.Setenv("CATALOG_SERVER_RATE_LIMIT_ENABLED", "false")
	t.Setenv("CATALOG_DATABASE_SEED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.False(t, cfg.Server.RateLimitEnabled)
	assert.False(t, cfg.Database.Seed)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("CATALOG_DATABASE_URL", "")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("CATALOG_DATABASE_URL", "postgres://db:5432/catalog")
		t.Setenv("CATALOG_SERVER_LOG_LEVEL", "loud")

		_, err := config.Load()
		assert.Error(t, err)
	})

	t.Run("port out of range", func(t *testing.T) {
		t.Setenv("CATALOG_DATABASE_URL", "postgres://db:5432/catalog")
		t.Setenv("CATALOG_SERVER_PORT", "70000")

		_, err := config.Load()
		assert.Error(t, err)
	})
}
