package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalConfig(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	cfg := GetGlobalConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "table", cfg.Output.DefaultFormat)
	assert.Empty(t, cfg.Path())

	assert.Same(t, cfg, GetGlobalConfig())

	ResetGlobalConfigForTest()
	assert.NotSame(t, cfg, GetGlobalConfig())
}

func TestGlobalConfig_ReadsFileFromHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv(EnvHome, home)
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	custom := Defaults()
	custom.Defaults.GridIntensity = 0.45
	custom.Output.DefaultFormat = FormatJSON
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, custom.Save(path))

	assert.Equal(t, FormatJSON, GetDefaultOutputFormat())
	assert.InDelta(t, 0.45, GetDefaults().GridIntensity, 0)
	assert.Equal(t, path, GetGlobalConfig().Path())
}

func TestGetConfigDir(t *testing.T) {
	t.Run("env override", func(t *testing.T) {
		t.Setenv(EnvHome, "/opt/carbonwise")
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/opt/carbonwise", dir)
	})

	t.Run("home default", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvHome, "")
		t.Setenv("HOME", home)
		dir, err := GetConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".carbonwise"), dir)
	})
}

func TestEnsureConfigDir(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "carbonwise")
	t.Setenv(EnvHome, home)

	require.NoError(t, EnsureConfigDir())
	assert.DirExists(t, home)
}

func TestEnsureLogDir(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	ResetGlobalConfigForTest()
	t.Cleanup(ResetGlobalConfigForTest)

	logFile := filepath.Join(t.TempDir(), "logs", "carbonwise.log")
	GetGlobalConfig().Logging.File = logFile

	require.NoError(t, EnsureLogDir())
	assert.DirExists(t, filepath.Dir(logFile))
}
