package config

import (
	"os"
	"path/filepath"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, err := loadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, ".editorconfig", s.ConfigFileName)
	assert.Equal(t, 0, s.Verbosity)
	assert.False(t, s.Table)
}

func TestLoadUserFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content, err := gotoml.Marshal(map[string]interface{}{
		"config_file_name": ".myeditorconfig",
		"verbosity":        2,
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	s, err := loadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, ".myeditorconfig", s.ConfigFileName)
	assert.Equal(t, 2, s.Verbosity)
	// Untouched keys keep their defaults.
	assert.False(t, s.Table)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid\n"), 0o644))

	_, err := loadFrom(path)
	assert.Error(t, err)
}

func TestPathUnderConfigHome(t *testing.T) {
	assert.Contains(t, Path(), filepath.Join("editorconfig", "config.toml"))
}
