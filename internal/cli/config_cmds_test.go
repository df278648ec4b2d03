package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonwise/internal/config"
)

func TestConfigInit(t *testing.T) {
	home := setupCLITest(t)

	stdout, _, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration initialized at")

	path := filepath.Join(home, "config.yaml")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.InDelta(t, config.DefaultGridIntensity, cfg.Defaults.GridIntensity, 1e-9)

	_, _, err = runCLI(t, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, _, err = runCLI(t, "config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	home := setupCLITest(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"),
		[]byte("defaults:\n  grid_intensity: 0.5\n  daily_km: 60\n  years: 5\n  usage_pattern: CITY\n"), 0o600))

	stdout, _, err := runCLI(t, "config", "show")
	require.NoError(t, err)

	var shown config.Config
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &shown))
	assert.InDelta(t, 0.5, shown.Defaults.GridIntensity, 1e-9)
	assert.Equal(t, "CITY", shown.Defaults.UsagePattern)
	assert.Equal(t, "error", shown.Logging.Level)

	asJSON := runJSON[config.Config](t, "config", "show")
	assert.InDelta(t, 60.0, asJSON.Defaults.DailyKm, 1e-9)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "no file uses defaults",
		},
		{
			name:    "valid file",
			content: "output:\n  default_format: json\n  precision: 2\n",
		},
		{
			name:    "bad usage pattern",
			content: "defaults:\n  grid_intensity: 0.7\n  daily_km: 40\n  years: 8\n  usage_pattern: OFFROAD\n",
			wantErr: "usage_pattern",
		},
		{
			name:    "zero grid intensity",
			content: "defaults:\n  grid_intensity: 0\n  daily_km: 40\n",
			wantErr: "defaults.grid_intensity",
		},
		{
			name:    "malformed yaml",
			content: "defaults: [\n",
			wantErr: "configuration validation failed",
		},
		{
			name:    "missing catalog",
			content: "catalog:\n  path: /nonexistent/catalog.yaml\n",
			wantErr: "catalog.path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupCLITest(t)
			if tt.content != "" {
				require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(tt.content), 0o600))
			}

			stdout, _, err := runCLI(t, "config", "validate", "--verbose")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout, "Configuration is valid")
			assert.Contains(t, stdout, "Catalog: embedded")
		})
	}
}
