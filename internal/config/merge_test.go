package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonwise/internal/config"
)

// writeOverlay is a test helper that writes YAML content to a temp file
// and returns its path.
func writeOverlay(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "overlay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestShallowMergeYAML_SingleKeyOverride(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
output:
  default_format: json
  precision: 3
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.Equal(t, "json", target.Output.DefaultFormat)
	assert.Equal(t, 3, target.Output.Precision)

	// Other sections should be unchanged.
	assert.InDelta(t, config.DefaultGridIntensity, target.Defaults.GridIntensity, 0)
	assert.Equal(t, config.DefaultLogLevel, target.Logging.Level)
}

func TestShallowMergeYAML_PartialSectionKeepsDefaults(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
defaults:
  daily_km: 100
logging:
  audit:
    enabled: true
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))

	assert.InDelta(t, 100, target.Defaults.DailyKm, 0)
	assert.InDelta(t, config.DefaultGridIntensity, target.Defaults.GridIntensity, 0)
	assert.InDelta(t, config.Defaults().Defaults.Years, target.Defaults.Years, 0)
	assert.InDelta(t, config.Defaults().Defaults.FuelPrice, target.Defaults.FuelPrice, 0)
	assert.True(t, target.Logging.Audit.Enabled)
	assert.Equal(t, config.DefaultLogLevel, target.Logging.Level)
	require.NoError(t, target.Validate())
}

func TestShallowMergeYAML_UnknownKeysIgnored(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, `
plugins:
  aws: {}
catalog:
  path: /data/vehicles.yaml
`)

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, "/data/vehicles.yaml", target.Catalog.Path)
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	target := config.Defaults()
	overlay := writeOverlay(t, "# nothing here\n")

	require.NoError(t, config.ShallowMergeYAML(target, overlay))
	assert.Equal(t, config.Defaults(), target)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		require.Error(t, config.ShallowMergeYAML(config.Defaults(), filepath.Join(t.TempDir(), "absent.yaml")))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		overlay := writeOverlay(t, "output: [unclosed\n")
		require.Error(t, config.ShallowMergeYAML(config.Defaults(), overlay))
	})

	t.Run("wrong section type", func(t *testing.T) {
		overlay := writeOverlay(t, "cache:\n  ttl_seconds: soon\n")
		err := config.ShallowMergeYAML(config.Defaults(), overlay)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"cache"`)
	})
}
