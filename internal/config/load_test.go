package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Not parallel: Load reads process environment.
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, defaultPort, cfg.Server.Port)
	assert.Equal(t, defaultLogLevel, cfg.Server.LogLevel)
	assert.Equal(t, defaultDatabaseURL, cfg.Database.URL)
	assert.Equal(t, defaultSessionSecret, cfg.Auth.SessionSecret)
	assert.Equal(t, defaultTokenLifetimeMinutes, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, defaultCookieName, cfg.Auth.CookieName)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("TASKWELL_SERVER_PORT", "9090")
	t.Setenv("TASKWELL_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKWELL_DATABASE_URL", "postgres://app:app@db:5432/tasks")
	t.Setenv("TASKWELL_AUTH_SESSION_SECRET", "another-secret")
	t.Setenv("TASKWELL_AUTH_TOKEN_LIFETIME_MINUTES", "30")
	t.Setenv("TASKWELL_AUTH_COOKIE_NAME", "session")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "postgres://app:app@db:5432/tasks", cfg.Database.URL)
	assert.Equal(t, "another-secret", cfg.Auth.SessionSecret)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, "session", cfg.Auth.CookieName)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "port out of range", key: "TASKWELL_SERVER_PORT", value: "70000"},
		{name: "unknown log level", key: "TASKWELL_SERVER_LOG_LEVEL", value: "loud"},
		{name: "negative token lifetime", key: "TASKWELL_AUTH_TOKEN_LIFETIME_MINUTES", value: "-5"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
