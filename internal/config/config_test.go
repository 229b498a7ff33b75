package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvThemeFile, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "", cfg.Database.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 5*time.Second, cfg.Sync.WriteTimeout)
	assert.Equal(t, 0, cfg.Sync.MaxRetries)
	assert.Equal(t, "default", cfg.ColorScheme.Preset)
	assert.NotEmpty(t, cfg.ColorScheme.Accent)
}

func TestLoadConfigWithFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvThemeFile, "")

	writeFile(t, filepath.Join(dir, "focusflow", "config.yaml"), `database:
  path: /tmp/board.db
log:
  level: debug
sync:
  write_timeout: 2s
  max_retries: 3
theme:
  preset: monochrome
  accent: "#123456"
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/board.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2*time.Second, cfg.Sync.WriteTimeout)
	assert.Equal(t, 3, cfg.Sync.MaxRetries)
	assert.Equal(t, 50*time.Millisecond, cfg.Sync.RetryBaseDelay)
	assert.Equal(t, "#123456", cfg.ColorScheme.Accent)
	// unset colors come from the chosen preset
	assert.Equal(t, "#585858", cfg.ColorScheme.Completed)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "database:\n  path: from-file.db\n")
	t.Setenv(EnvDBPath, "from-env.db")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvThemeFile, "")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.db", cfg.Database.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestThemeFileMerge(t *testing.T) {
	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	writeFile(t, themePath, "theme:\n  title: \"#ABCDEF\"\n")
	t.Setenv(EnvThemeFile, themePath)
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")

	cfg, err := LoadFrom(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "#ABCDEF", cfg.ColorScheme.Title)
	assert.Equal(t, "#874BFD", cfg.ColorScheme.Accent)
}

func TestInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "sync: [not a map")

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	t.Setenv(EnvDBPath, "")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvThemeFile, "")

	cfg := Default()
	cfg.Database.Path = "saved.db"
	cfg.Sync.MaxRetries = 2
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "saved.db", loaded.Database.Path)
	assert.Equal(t, 2, loaded.Sync.MaxRetries)
	assert.Equal(t, cfg.Sync.WriteTimeout, loaded.Sync.WriteTimeout)
}
