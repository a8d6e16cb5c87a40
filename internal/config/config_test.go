package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToml = `
[development]
host = "localhost"
port = 8000
log_level = "trace"
log_to_stdout = true
postgres_host = "localhost"
postgres_port = "5432"
postgres_db_name = "fittrack"
redis_host = "localhost"
redis_port = "6379"
ai_provider_timeout = "5s"
cors_allowed_origins = ["http://localhost:3000"]

[production]
host = "0.0.0.0"
port = 9000
environment = "production"
log_format_json = true
sentry_enabled = true
token_ttl = "24h"
water_daily_goal = 2.5
`

func writeTestConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(testToml), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeTestConfig(t)

	cfg, err := Load("dev", path)
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, "fittrack", cfg.PostgresDBName)
	assert.Equal(t, "postgres", cfg.PostgresUser)
	assert.Equal(t, 5*time.Second, cfg.AIProviderTimeout.Duration)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL.Duration)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CorsAllowedOrigins)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "llama-3.3-70b-versatile", cfg.GroqModel)
	assert.Equal(t, 3.0, cfg.WaterDailyGoal)

	cfg, err = Load("production", path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.LogFormatJSON)
	assert.True(t, cfg.SentryEnabled)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL.Duration)
	assert.Equal(t, 2.5, cfg.WaterDailyGoal)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	path := writeTestConfig(t)

	_, err := Load("staging", path)
	assert.EqualError(t, err, "unknown env: staging")

	_, err = Load("dev", filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	badPath := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(badPath, []byte("[development]\nai_provider_timeout = \"soon\"\n"), 0o600))
	_, err = Load("dev", badPath)
	assert.Error(t, err)

	emptyPath := filepath.Join(t.TempDir(), "empty.toml")
	require.NoError(t, os.WriteFile(emptyPath, []byte("[development]\nport = 1\n"), 0o600))
	_, err = Load("prod", emptyPath)
	assert.EqualError(t, err, "no config section for env: prod")
}

func TestLoadSecrets(t *testing.T) {
	secrets, err := loadSecrets(context.Background(), envconfig.MapLookuper(map[string]string{
		"FITTRACK_JWT_SECRET": "jwt-secret",
		"GROQ_API_KEY":        "groq-key",
		"HONEYCOMB_ENABLED":   "true",
	}))
	require.NoError(t, err)
	assert.Equal(t, "jwt-secret", secrets.JWTSecret)
	assert.Equal(t, "groq-key", secrets.GroqAPIKey)
	assert.Empty(t, secrets.GoogleAPIKey)
	assert.True(t, secrets.HoneycombEnabled)

	_, err = loadSecrets(context.Background(), envconfig.MapLookuper(map[string]string{
		"HONEYCOMB_ENABLED": "maybe",
	}))
	assert.Error(t, err)
}
