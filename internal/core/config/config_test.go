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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "tokyo-night", cfg.Theme)
		assert.Equal(t, "info", cfg.LogLevel)
		require.NotNil(t, cfg.ConfirmDelete)
		assert.True(t, *cfg.ConfirmDelete)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "theme: gruvbox\nconfirm_delete: false\nlog_level: debug\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "gruvbox", cfg.Theme)
		assert.Equal(t, "debug", cfg.LogLevel)
		require.NotNil(t, cfg.ConfirmDelete)
		assert.False(t, *cfg.ConfirmDelete)
	})

	t.Run("partial file keeps remaining defaults", func(t *testing.T) {
		path := writeConfig(t, "theme: plain\n")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "plain", cfg.Theme)
		assert.Equal(t, "info", cfg.LogLevel)
		require.NotNil(t, cfg.ConfirmDelete)
		assert.True(t, *cfg.ConfirmDelete)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "theme: [unclosed\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config file")
	})

	t.Run("unknown theme", func(t *testing.T) {
		path := writeConfig(t, "theme: neon-dreams\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown theme")
	})

	t.Run("invalid log level", func(t *testing.T) {
		path := writeConfig(t, "log_level: shouty\n")

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}
