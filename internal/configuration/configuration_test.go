package configuration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"APP_NAME", "APP_ENV", "APP_LOG_LEVEL", "APP_REST_HOST", "APP_REST_PORT", "APP_REST_SHUTDOWN_TIMEOUT", "APP_REST_TRUSTED_PROXIES"} {
		t.Setenv(k, "")
	}

	cfg := loadFromEnv()

	assert.Equal(t, "greeter", cfg.AppName)
	assert.Equal(t, "local", cfg.Env)
	assert.True(t, cfg.IsLocal())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0", cfg.RestConfig.Host)
	assert.Equal(t, 8080, cfg.RestConfig.Port)
	assert.Equal(t, 10*time.Second, cfg.RestConfig.ShutdownTimeout)
	assert.Empty(t, cfg.RestConfig.TrustedProxies)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_NAME", "hello")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("APP_REST_PORT", "9090")
	t.Setenv("APP_REST_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("APP_REST_TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2,,")
	t.Setenv("APP_DB__HOST", "db.internal")
	t.Setenv("APP_DB__PORT", "5432")

	cfg := loadFromEnv()

	assert.Equal(t, "hello", cfg.AppName)
	assert.False(t, cfg.IsLocal())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.RestConfig.Port)
	assert.Equal(t, 3*time.Second, cfg.RestConfig.ShutdownTimeout)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.RestConfig.TrustedProxies)
	assert.Equal(t, "db.internal", cfg.DatabaseConfig.Host)
	assert.Equal(t, 5432, cfg.DatabaseConfig.Port)
}
