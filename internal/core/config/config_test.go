package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var managedKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT",
	"DB_DRIVER", "DB_HOST", "DB_PORT", "DB_PATH",
	"REDIS_ENABLED", "REDIS_URL", "CACHE_TTL_SECONDS",
	"AUTH_JWT_SECRET", "AUTH_COOKIE_NAME",
	"KAFKA_ENABLED", "KAFKA_BROKERS", "KAFKA_STATUS_TOPIC",
	"SMS_ENABLED", "SMS_GATEWAY_URL",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range managedKeys {
		os.Unsetenv(k)
	}
	t.Cleanup(func() {
		for _, k := range managedKeys {
			os.Unsetenv(k)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	os.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cargo.db", cfg.Database.Path)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CacheTTL())
	assert.Equal(t, "token", cfg.Auth.CookieName)
	assert.False(t, cfg.Kafka.Enabled)
	assert.False(t, cfg.SMS.Enabled)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_DRIVER", "postgres")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("AUTH_JWT_SECRET", "s3cret")
	os.Setenv("KAFKA_ENABLED", "true")
	os.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.BrokerList())
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
AUTH_JWT_SECRET=from-file
CACHE_TTL_SECONDS=60
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, time.Minute, cfg.Redis.CacheTTL())
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: AUTH_JWT_SECRET")
}

func TestLoad_UnsupportedDriver(t *testing.T) {
	clearEnv(t)
	os.Setenv("AUTH_JWT_SECRET", "secret")
	os.Setenv("DB_DRIVER", "oracle")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestLoad_SMSRequiresURL(t *testing.T) {
	clearEnv(t)
	os.Setenv("AUTH_JWT_SECRET", "secret")
	os.Setenv("SMS_ENABLED", "true")

	_, err := Load(".")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMS_GATEWAY_URL")
}
