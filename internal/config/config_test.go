package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	hub, err := Load(filepath.Join(t.TempDir(), DefaultRoot))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", hub.CoevoBaseURL)
	assert.Equal(t, "dev", hub.CoevoBoardSlug)
	assert.Empty(t, hub.CoevoToken)
}

func TestLoadConfigFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), DefaultRoot)
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(
		"coevo_base_url = \"http://coevo.local:9000\"\ncoevo_board_slug = \"help\"\n"), 0644))

	hub, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "http://coevo.local:9000", hub.CoevoBaseURL)
	assert.Equal(t, "help", hub.CoevoBoardSlug)
}

func TestEnvOverridesConfig(t *testing.T) {
	root := filepath.Join(t.TempDir(), DefaultRoot)
	require.NoError(t, os.MkdirAll(root, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "config.toml"), []byte(
		"coevo_board_slug = \"help\"\n"), 0644))
	t.Setenv("COEVO_BOARD_SLUG", "general")
	t.Setenv("COEVO_TOKEN", "tok-123")

	hub, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "general", hub.CoevoBoardSlug)
	assert.Equal(t, "tok-123", hub.CoevoToken)
}

func TestInitIsIdempotent(t *testing.T) {
	root := filepath.Join(t.TempDir(), DefaultRoot)

	path, err := Init(root)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("coevo_board_slug = \"mine\"\n"), 0644))

	// A second init must not clobber operator edits.
	_, err = Init(root)
	require.NoError(t, err)

	hub, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "mine", hub.CoevoBoardSlug)
}

func TestPaths(t *testing.T) {
	hub := Hub{Root: ".launchpad"}
	assert.Equal(t, filepath.Join(".launchpad", "registry.toml"), hub.RegistryPath())
	assert.Equal(t, filepath.Join(".launchpad", "runtime.json"), hub.RuntimePath())
	assert.Equal(t, filepath.Join(".launchpad", "logs", "coevo-api.log"), hub.LogPath("coevo-api"))
}
