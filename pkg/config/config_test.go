package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "testuser")
	t.Setenv("DB_PASSWORD", "testpass")
	t.Setenv("DB_NAME", "testdb")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BOARD_MAX_ACTIVE", "5")
	t.Setenv("BOARD_MAX_CORE", "2")
	t.Setenv("EVENTS_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "6543", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "cache", cfg.RedisHost)
	assert.Equal(t, "6380", cfg.RedisPort)
	assert.Equal(t, 5, cfg.MaxActive)
	assert.Equal(t, 2, cfg.MaxCore)
	assert.True(t, cfg.EventsEnabled)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("BOARD_MAX_ACTIVE", "")
	t.Setenv("BOARD_MAX_CORE", "")
	t.Setenv("EVENTS_ENABLED", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 50, cfg.MaxActive)
	assert.Equal(t, 12, cfg.MaxCore)
	assert.False(t, cfg.EventsEnabled)
}

func TestLoadConfig_InvalidLimitsFallBack(t *testing.T) {
	t.Setenv("BOARD_MAX_ACTIVE", "lots")
	t.Setenv("BOARD_MAX_CORE", "-3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.MaxActive)
	assert.Equal(t, 12, cfg.MaxCore)
}
