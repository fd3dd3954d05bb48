package config_test

import (
	"testing"

	"github.com/globoclima/globoclima-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "https://restcountries.com/v3.1", cfg.Country.BaseURL)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.Weather.BaseURL)
	assert.Empty(t, cfg.Weather.APIKey, "weather API key has no default; it must surface at call time")
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 24*60, cfg.Auth.TokenLifetimeMinutes)
	assert.GreaterOrEqual(t, len(cfg.Auth.JWTSecret), 32)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GLOBOCLIMA_SERVER_PORT", "9090")
	t.Setenv("GLOBOCLIMA_SERVER_LOG_LEVEL", "debug")
	t.Setenv("GLOBOCLIMA_WEATHER_API_KEY", "test-key")
	t.Setenv("GLOBOCLIMA_REDIS_ADDR", "redis.internal:6380")
	t.Setenv("GLOBOCLIMA_AUTH_JWT_SECRET", "an-override-secret-that-is-long-enough-123")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "test-key", cfg.Weather.APIKey)
	assert.Equal(t, "redis.internal:6380", cfg.Redis.Addr)
	assert.Equal(t, "an-override-secret-that-is-long-enough-123", cfg.Auth.JWTSecret)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "short jwt secret", key: "GLOBOCLIMA_AUTH_JWT_SECRET", value: "too-short"},
		{name: "invalid log level", key: "GLOBOCLIMA_SERVER_LOG_LEVEL", value: "verbose"},
		{name: "port out of range", key: "GLOBOCLIMA_SERVER_PORT", value: "70000"},
		{name: "non-url country base", key: "GLOBOCLIMA_COUNTRY_BASE_URL", value: "not a url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
