package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load built-in defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.Server.Port)
		assert.Equal(t, "memory", cfg.Database.Driver)
		assert.Equal(t, "@every 15m", cfg.Refresh.CronSpec)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Should override defaults from environment", func(t *testing.T) {
		t.Setenv("INDIEPAGES_SERVER_PORT", "9090")
		t.Setenv("INDIEPAGES_DATABASE_DRIVER", "sqlite")
		t.Setenv("INDIEPAGES_SERVER_READ_TIMEOUT", "30s")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	})

	t.Run("Should reject an unknown database driver", func(t *testing.T) {
		t.Setenv("INDIEPAGES_DATABASE_DRIVER", "dynamo")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation")
	})

	t.Run("Should parse comma-separated origins into a slice", func(t *testing.T) {
		t.Setenv("INDIEPAGES_SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should map section prefix to a dotted path", func(t *testing.T) {
		assert.Equal(t, "server.read_timeout", transformEnvKey("SERVER_READ_TIMEOUT"))
		assert.Equal(t, "database.driver", transformEnvKey("DATABASE_DRIVER"))
		assert.Equal(t, "log.level", transformEnvKey("LOG_LEVEL"))
	})

	t.Run("Should handle degenerate keys", func(t *testing.T) {
		assert.Equal(t, "", transformEnvKey(""))
		assert.Equal(t, "server", transformEnvKey("SERVER"))
	})
}

func TestFromContext(t *testing.T) {
	t.Run("Should return attached config", func(t *testing.T) {
		cfg := Default()
		cfg.Server.Port = 1234
		ctx := ContextWithConfig(t.Context(), cfg)
		assert.Equal(t, 1234, FromContext(ctx).Server.Port)
	})

	t.Run("Should fall back to defaults when nothing attached", func(t *testing.T) {
		cfg := FromContext(t.Context())
		require.NotNil(t, cfg)
	})
}
