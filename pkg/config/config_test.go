package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "guardrails", cfg.Database.DBName)
	assert.Equal(t, 24*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, 168*time.Hour, cfg.JWT.RefreshExp)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("DB_NAME", "guardrails_test")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "guardrails_test", cfg.Database.DBName)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestGetEnv(t *testing.T) {
	t.Setenv("SOME_CONFIG_KEY", "set")

	assert.Equal(t, "set", getEnv("SOME_CONFIG_KEY", "fallback"))
	assert.Equal(t, "fallback", getEnv("SOME_MISSING_KEY", "fallback"))
}
