// Package config loads and validates carbonwise settings.
//
// Settings come from three layers, later layers winning: built-in defaults,
// the YAML file at $CARBONWISE_HOME/config.yaml, and CARBONWISE_* environment
// variables. CLI flags are applied on top by the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonwise/internal/lca"
)

// Default values written by `config init` and used when no file exists.
const (
	DefaultGridIntensity       = 0.71
	DefaultFuelPrice           = 100.0
	DefaultElectricityPrice    = 8.0
	DefaultDailyKm             = 40.0
	DefaultYears               = 8.0
	DefaultUsagePattern        = "MIXED"
	DefaultTimelineMonths      = 120
	DefaultGridImprovementRate = 0.0

	DefaultOutputFormat = "table"
	DefaultPrecision    = 2
	DefaultLogLevel     = "warn"
	DefaultLogFormat    = "console"
	DefaultCacheTTL     = 3600

	configFileName = "config.yaml"
	maxPrecision   = 6
)

// Output formats accepted by OutputConfig.DefaultFormat.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// ErrInvalidConfig is returned by Validate; the message names the field.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the full carbonwise configuration.
type Config struct {
	Defaults DefaultsConfig `yaml:"defaults" json:"defaults"`
	Output   OutputConfig   `yaml:"output"   json:"output"`
	Logging  LoggingConfig  `yaml:"logging"  json:"logging"`
	Cache    CacheConfig    `yaml:"cache"    json:"cache"`
	Catalog  CatalogConfig  `yaml:"catalog"  json:"catalog"`

	// path is the file the config was loaded from, if any.
	path string
}

// DefaultsConfig holds the values the analysis layer substitutes when a
// request leaves a parameter out. The engine itself never defaults these.
type DefaultsConfig struct {
	GridIntensity       float64 `yaml:"grid_intensity"        json:"grid_intensity"`
	FuelPrice           float64 `yaml:"fuel_price"            json:"fuel_price"`
	ElectricityPrice    float64 `yaml:"electricity_price"     json:"electricity_price"`
	DailyKm             float64 `yaml:"daily_km"              json:"daily_km"`
	Years               float64 `yaml:"years"                 json:"years"`
	UsagePattern        string  `yaml:"usage_pattern"         json:"usage_pattern"`
	TimelineMonths      int     `yaml:"timeline_months"       json:"timeline_months"`
	GridImprovementRate float64 `yaml:"grid_improvement_rate" json:"grid_improvement_rate"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls log level, format and destination. An empty File
// logs to stderr.
type LoggingConfig struct {
	Level  string      `yaml:"level"          json:"level"`
	Format string      `yaml:"format"         json:"format"`
	File   string      `yaml:"file,omitempty" json:"file,omitempty"`
	Audit  AuditConfig `yaml:"audit"          json:"audit"`
}

// AuditConfig enables the per-command audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"        json:"enabled"`
	File    string `yaml:"file,omitempty" json:"file,omitempty"`
}

// CacheConfig controls the on-disk result cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"             json:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"         json:"ttl_seconds"`
	Directory  string `yaml:"directory,omitempty" json:"directory,omitempty"`
}

// CatalogConfig points at a vehicle catalog file. An empty Path selects the
// embedded catalog.
type CatalogConfig struct {
	Path string `yaml:"path,omitempty" json:"path,omitempty"`
}

// Defaults returns a Config populated with built-in defaults only.
func Defaults() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			GridIntensity:       DefaultGridIntensity,
			FuelPrice:           DefaultFuelPrice,
			ElectricityPrice:    DefaultElectricityPrice,
			DailyKm:             DefaultDailyKm,
			Years:               DefaultYears,
			UsagePattern:        DefaultUsagePattern,
			TimelineMonths:      DefaultTimelineMonths,
			GridImprovementRate: DefaultGridImprovementRate,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Cache: CacheConfig{
			Enabled:    false,
			TTLSeconds: DefaultCacheTTL,
		},
	}
}

// New builds the effective configuration: defaults, then the config file
// when one exists, then environment overrides. A file that cannot be read
// or parsed is logged and skipped.
func New() *Config {
	cfg := Defaults()

	path, err := GetConfigFilePath()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve config directory, using defaults")
	} else if _, statErr := os.Stat(path); statErr == nil {
		if mergeErr := ShallowMergeYAML(cfg, path); mergeErr != nil {
			log.Warn().Err(mergeErr).Str("path", path).Msg("ignoring unreadable config file")
		} else {
			cfg.path = path
		}
	}

	cfg.ApplyEnvOverrides()
	return cfg
}

// Load reads the config file at path over the defaults and applies
// environment overrides. Unlike New, errors are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if err := ShallowMergeYAML(cfg, path); err != nil {
		return nil, err
	}
	cfg.path = path
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// Path returns the file the configuration was loaded from, or "".
func (c *Config) Path() string {
	return c.path
}

// Save writes the configuration as YAML to path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), 0700); mkErr != nil {
		return fmt.Errorf("creating config directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, 0600); writeErr != nil {
		return fmt.Errorf("writing config file %s: %w", path, writeErr)
	}
	return nil
}

// CacheDirectory returns the configured cache directory, defaulting to
// $CARBONWISE_HOME/cache.
func (c *Config) CacheDirectory() (string, error) {
	if c.Cache.Directory != "" {
		return c.Cache.Directory, nil
	}
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cache"), nil
}

// Validate checks that every value is usable.
func (c *Config) Validate() error {
	d := c.Defaults
	checks := []struct {
		ok    bool
		field string
		value any
	}{
		{d.GridIntensity > 0, "defaults.grid_intensity", d.GridIntensity},
		{d.FuelPrice >= 0, "defaults.fuel_price", d.FuelPrice},
		{d.ElectricityPrice >= 0, "defaults.electricity_price", d.ElectricityPrice},
		{d.DailyKm > 0, "defaults.daily_km", d.DailyKm},
		{d.Years > 0, "defaults.years", d.Years},
		{d.TimelineMonths >= 0, "defaults.timeline_months", d.TimelineMonths},
		{d.GridImprovementRate >= 0 && d.GridImprovementRate < 1, "defaults.grid_improvement_rate", d.GridImprovementRate},
		{c.Output.DefaultFormat == FormatTable || c.Output.DefaultFormat == FormatJSON, "output.default_format", c.Output.DefaultFormat},
		{c.Output.Precision >= 0 && c.Output.Precision <= maxPrecision, "output.precision", c.Output.Precision},
		{c.Cache.TTLSeconds >= 0, "cache.ttl_seconds", c.Cache.TTLSeconds},
	}
	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s = %v", ErrInvalidConfig, check.field, check.value)
		}
	}

	if _, err := lca.ParseUsagePattern(d.UsagePattern); err != nil {
		return fmt.Errorf("%w: defaults.usage_pattern: %w", ErrInvalidConfig, err)
	}
	if err := c.Logging.validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
