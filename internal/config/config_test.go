package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	t.Parallel()
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "widlidl", cfg.Name)
	assert.Equal(t, DefaultExtensions, cfg.Extensions)
	assert.False(t, cfg.Ignored("grammar"))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, ".widlidl.yaml")
	content := "name: custom\nignore_kinds: [legacy]\nextensions: [\".idl\"]\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Name)
	assert.Equal(t, []string{".idl"}, cfg.Extensions)
	assert.True(t, cfg.Ignored("legacy"))
	assert.False(t, cfg.Ignored("grammar"))
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	path := filepath.Join(dir, ".widlidl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ignore_kinds: [duplicate]\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "widlidl", cfg.Name)
	assert.Equal(t, DefaultExtensions, cfg.Extensions)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
