package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/catalog"
	"github.com/rshade/carbonwise/internal/config"
)

// NewConfigValidateCmd checks config.yaml and the catalog it points at.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check config.yaml and the configured catalog",
		Long: `Loads config.yaml strictly and reports the first problem found in:

- YAML syntax of the configuration file
- Default grid intensity, prices, distance and ownership period
- Usage pattern, output format, log level and log format
- The configured vehicle catalog, when catalog.path is set`,
		Example: `  # Validate current configuration
  carbonwise config validate

  # Validate and show detailed information
  carbonwise config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the effective settings")

	return cmd
}

// runConfigValidate fails on an unreadable config file, which normal
// startup only logs.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	path, err := config.GetConfigFilePath()
	if err != nil {
		return err
	}

	cfg := config.Defaults()
	if _, statErr := os.Stat(path); statErr == nil {
		cfg, err = config.Load(path)
		if err != nil {
			return fmt.Errorf("configuration validation failed: %w", err)
		}
	} else {
		cfg.ApplyEnvOverrides()
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return fmt.Errorf("configuration validation failed: %w", validateErr)
	}

	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("configuration validation failed: catalog.path: %w", err)
		}
	}

	cmd.Println("✅ Configuration is valid")
	if verbose {
		printVerboseDetails(cmd, cfg, cat)
	}
	return nil
}

func printVerboseDetails(cmd *cobra.Command, cfg *config.Config, cat *catalog.Catalog) {
	source := cfg.Path()
	if source == "" {
		source = "(built-in defaults)"
	}

	cmd.Println()
	cmd.Println("Effective settings:")
	cmd.Printf("  Config file: %s\n", source)
	cmd.Printf("  Default grid intensity: %v kg CO2/kWh\n", cfg.Defaults.GridIntensity)
	cmd.Printf("  Default usage: %v km/day for %v years (%s)\n",
		cfg.Defaults.DailyKm, cfg.Defaults.Years, cfg.Defaults.UsagePattern)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	if cfg.Logging.File != "" {
		cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	}
	cmd.Printf("  Audit log enabled: %t\n", cfg.Logging.Audit.Enabled)
	cmd.Printf("  Cache enabled: %t (ttl %ds)\n", cfg.Cache.Enabled, cfg.Cache.TTLSeconds)

	if cat == nil {
		cmd.Println("  Catalog: embedded")
		return
	}
	cmd.Printf("  Catalog: %s (schema %s, %d vehicles)\n", cat.Source(), cat.SchemaVersion(), cat.Len())
}
