package config

import (
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig_Defaults(t *testing.T) {
	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.False(t, cfg.IsDev)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "http://localhost:5000", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.False(t, cfg.Backend.ExposeErrorDetail)
	assert.Equal(t, 8*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "session:", cfg.Auth.SessionPrefix)
	assert.Equal(t, "localhost:6379", cfg.Redis.URI)
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	t.Setenv("BACKEND_BASE_URL", "https://api.ratehub.example")
	t.Setenv("BACKEND_EXPOSE_ERROR_DETAIL", "true")
	t.Setenv("AUTH_SESSION_TTL", "30m")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("REDIS_URI", "redis.internal:6379")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.Equal(t, "https://api.ratehub.example", cfg.Backend.BaseURL)
	assert.True(t, cfg.Backend.ExposeErrorDetail)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "redis.internal:6379", cfg.Redis.URI)
}

func TestAppConfig_DevModeFromNodeEnv(t *testing.T) {
	t.Setenv("NODE_ENV", "development")

	var cfg AppConfig
	require.NoError(t, env.Parse(&cfg))
	cfg.Sanitize()

	assert.True(t, cfg.IsDev)
}

func TestHTTPConfig_SanitizeClampsCompressionLevel(t *testing.T) {
	h := HTTPConfig{CompressionLevel: 42}
	h.Sanitize()
	assert.Equal(t, 9, h.CompressionLevel)

	h = HTTPConfig{CompressionLevel: -1}
	h.Sanitize()
	assert.Equal(t, 1, h.CompressionLevel)
}

func TestAuthConfig_SanitizeDefaults(t *testing.T) {
	a := AuthConfig{SessionTTL: -time.Hour}
	a.Sanitize()
	assert.Equal(t, 8*time.Hour, a.SessionTTL)
	assert.Equal(t, "session:", a.SessionPrefix)
}

func TestBackendConfig_SanitizeTimeout(t *testing.T) {
	b := BackendConfig{}
	b.Sanitize()
	assert.Equal(t, 10*time.Second, b.Timeout)
}
