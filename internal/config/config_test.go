package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "DATABASE_URL", "MIGRATIONS_PATH", "DEFAULT_LOCALE",
		"LOG_LEVEL", "LOG_FORMAT", "DISCORD_TOKEN", "DISCORD_CHANNEL_ID",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, "migrations", cfg.MigrationsPath)
	assert.Equal(t, "en", cfg.DefaultLocale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_ExplicitValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/activities?sslmode=disable")
	t.Setenv("DEFAULT_LOCALE", "fr")
	t.Setenv("LOG_FORMAT", "console")
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "123456789")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "postgres://localhost:5432/activities?sslmode=disable", cfg.DatabaseURL)
	assert.Equal(t, "fr", cfg.DefaultLocale)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "123456789", cfg.DiscordChannelID)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad locale", key: "DEFAULT_LOCALE", val: "no-such-locale-tag!"},
		{name: "bad log format", key: "LOG_FORMAT", val: "xml"},
		{name: "bad database url", key: "DATABASE_URL", val: "://missing-scheme"},
		{name: "database url without host", key: "DATABASE_URL", val: "localhost-only"},
		{name: "discord token without channel", key: "DISCORD_TOKEN", val: "token"},
		{name: "discord channel without token", key: "DISCORD_CHANNEL_ID", val: "123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_DiscordChannelMustBeNumeric(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_CHANNEL_ID", "general")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DISCORD_CHANNEL_ID")
}
