package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := NewLoader(t.TempDir()).Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Storage.Backend)
	assert.Equal(t, 20, cfg.Limits.MaxActions)
	assert.Equal(t, 60, cfg.Limits.WindowSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_PartialFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "sqlite"

[log]
level = "debug"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Storage.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
	// Untouched sections keep their defaults.
	assert.Equal(t, 20, cfg.Limits.MaxActions)
	assert.Equal(t, 60, cfg.Limits.WindowSeconds)
}

func TestLoader_FullFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[storage]
backend = "json"
path = "/tmp/custom/todos.json"

[limits]
max_actions = 5
window_seconds = 10

[log]
level = "error"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))

	cfg, err := NewLoader(dir).Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/custom/todos.json", cfg.Storage.Path)
	assert.Equal(t, 5, cfg.Limits.MaxActions)
	assert.Equal(t, 10, cfg.Limits.WindowSeconds)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoader_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("[storage\nbad"), 0o600))

	_, err := NewLoader(dir).Load()
	assert.Error(t, err)
}

func TestDefaultConfigDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, filepath.Join("/custom/config", "tododeck"), DefaultConfigDir())
}

func TestDefaultDataDir_HonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/custom/data")
	assert.Equal(t, filepath.Join("/custom/data", "tododeck"), DefaultDataDir())
}
