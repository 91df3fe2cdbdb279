package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService()

	cfg := DefaultConfig()
	cfg.UISettings.SidebarVisible = false
	cfg.UISettings.SidebarWidth = 40
	cfg.Search.Placeholder = "Find…"

	require.NoError(t, svc.SaveToPath(cfg, path))

	loaded, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Version, loaded.Version)
	assert.False(t, loaded.UISettings.SidebarVisible)
	assert.Equal(t, 40, loaded.UISettings.SidebarWidth)
	assert.Equal(t, "Find…", loaded.Search.Placeholder)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	svc := NewConfigService()

	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadFromPathBackfillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0644))

	svc := NewConfigService()
	cfg, err := svc.LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig().UISettings.SidebarWidth, cfg.UISettings.SidebarWidth)
	assert.Equal(t, DefaultConfig().Search.Placeholder, cfg.Search.Placeholder)
}

func TestLoadFromPathInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = [broken"), 0644))

	svc := NewConfigService()
	_, err := svc.LoadFromPath(path)
	assert.Error(t, err)
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	svc := NewConfigService()

	require.NoError(t, svc.SaveToPath(DefaultConfig(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1, cfg.Version)
	assert.True(t, cfg.UISettings.SidebarVisible)
	assert.Greater(t, cfg.UISettings.SidebarWidth, 0)
	assert.NotEmpty(t, cfg.Search.Placeholder)
}
