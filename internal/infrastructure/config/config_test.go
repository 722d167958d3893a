package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "storecore", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Redis.Enabled)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Zero(t, cfg.Tax.DefaultRate)
	assert.Empty(t, cfg.Pricing.UpdateStrategy)
}

func TestEnvironmentOverride(t *testing.T) {
	t.Setenv("STORECORE_DATABASE_HOST", "db.internal")
	t.Setenv("STORECORE_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestValidate(t *testing.T) {
	t.Run("rejects negative tax rate", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		cfg.Tax.DefaultRate = -0.1
		assert.Error(t, cfg.Validate())
	})

	t.Run("requires collector endpoint when telemetry is on", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		cfg.Telemetry.Enabled = true
		cfg.Telemetry.CollectorEndpoint = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects sampling ratio outside range", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		cfg.Telemetry.SamplingRatio = 1.5
		assert.Error(t, cfg.Validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "storecore",
		Password: "secret", DBName: "storecore", SSLMode: "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=storecore password=secret dbname=storecore sslmode=disable",
		cfg.DSN())
}
