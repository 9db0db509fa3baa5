package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Applies defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: loading it
		conf, err := Load(path)

		// Then: every other value has its default
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "ai", conf.Mode)
		assert.False(t, conf.NoColor)
		assert.False(t, conf.Redis.Enabled)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "tictactoe:events", conf.Redis.Channel)
	})

	t.Run("Reads nested redis section", func(t *testing.T) {
		// Given: a config file enabling redis
		path := writeConfig(t, `
mode: player
no-color: true
redis:
  enabled: true
  host: redis
  port: "6380"
  channel: games
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the values from the file are used
		require.NoError(t, err)
		assert.Equal(t, "player", conf.Mode)
		assert.True(t, conf.NoColor)
		assert.True(t, conf.Redis.Enabled)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, "games", conf.Redis.Channel)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		// Given: a config file and a GAME_MODE variable
		path := writeConfig(t, "mode: ai\n")
		t.Setenv("GAME_MODE", "player")

		// When: loading it
		conf, err := Load(path)

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "player", conf.Mode)
	})

	t.Run("Missing file is an error", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load config file")
	})

	t.Run("MustLoad panics on a missing file", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
