package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legibrief/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":10000", cfg.Server.Port)
	assert.Equal(t, "openai", cfg.Generator.Provider)
	assert.Equal(t, 4000, cfg.Generator.MaxTokens)
	assert.Equal(t, 120, cfg.Generator.TimeoutSecs)
	assert.Equal(t, "uploads", cfg.Upload.Dir)
	assert.Equal(t, int64(10), cfg.Upload.MaxFileSizeMB)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
	assert.Contains(t, cfg.CORS.AllowedSuffixes, ".github.io")
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LEGIBRIEF_GENERATOR_PROVIDER", "claude")
	t.Setenv("LEGIBRIEF_GENERATOR_API_KEY", "sk-test")
	t.Setenv("LEGIBRIEF_SERVER_PORT", ":8080")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "claude", cfg.Generator.Provider)
	assert.Equal(t, "sk-test", cfg.Generator.APIKey)
	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoadExplicitPortWinsOverFallback(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LEGIBRIEF_SERVER_PORT", ":8080")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
}

func TestLoadFrontendURLJoinsAllowedOrigins(t *testing.T) {
	t.Setenv("LEGIBRIEF_CORS_FRONTEND_URL", "https://bills.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.CORS.AllowedOrigins, "https://bills.example.com")
}
