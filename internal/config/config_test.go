package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	confHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", confHome)
	dir := filepath.Join(confHome, ConfigDir)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(content), 0o644))
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	writeConfig(t, "theme = \"light\"\ngit_timeout = 1.5\n")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, 1.5, cfg.GitTimeout)

	// unset keys keep their defaults
	assert.Equal(t, DefaultMaxCwdLen, cfg.MaxCwdLen)
	assert.Equal(t, DefaultMaxHeadLen, cfg.MaxHeadLen)
}

func TestLoad_MalformedFileGivesDefaults(t *testing.T) {
	writeConfig(t, "theme = [not toml")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestGitTimeoutDuration(t *testing.T) {
	cfg := Config{GitTimeout: 1.5}
	assert.Equal(t, 1500*time.Millisecond, cfg.GitTimeoutDuration())

	assert.Equal(t, 3*time.Second, Default().GitTimeoutDuration())
}
