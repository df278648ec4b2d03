package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonwise/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// writerIsTerminal reports whether w is a terminal file.
func writerIsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonwise CLI.
// It wires up logging, tracing, audit logging and every subcommand.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:   "carbonwise",
		Short: "Lifecycle carbon footprints for Indian passenger vehicles",
		Long: `carbonwise estimates the lifecycle CO2 of passenger vehicles driven in India:
manufacturing, state-grid-aware operation and end-of-life, with break-even
analysis, cost of ownership, greenwashing audits and fleet totals.`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cacheTTL, _ := cmd.Flags().GetInt("cache-ttl")
			if cacheTTL < 0 {
				return fmt.Errorf("cache-ttl must be >= 0, got %d", cacheTTL)
			}

			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("catalog", "", "vehicle catalog YAML (default: config catalog.path, then the embedded catalog)")
	cmd.PersistentFlags().
		Int("cache-ttl", 0, "cache TTL in seconds for compare and recommend (0 = use config default)")

	cmd.AddCommand(
		NewCalculateCmd(), NewCompareCmd(), NewRecommendCmd(), NewTimelineCmd(),
		NewTCOCmd(), NewAuditCmd(), NewFleetCmd(),
		newVehiclesCmd(), newGridCmd(), newConfigCmd(), newCacheCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Lifecycle footprint of one vehicle in Delhi
  carbonwise calculate tata-nexon-ev-lr --state Delhi --daily-km 40 --years 8

  # Compare an EV against petrol and CNG cars, with break-even
  carbonwise compare tata-nexon-ev-lr maruti-swift-zxi tata-tiago-icng --state Karnataka

  # Three diversified picks under 15 lakh
  carbonwise recommend --state Maharashtra --max-budget 15

  # Audit marketing claims
  carbonwise audit mg-zs-ev-excite --state Jharkhand

  # Aggregate a fleet file
  carbonwise fleet fleet.yaml --output json

  # Browse the catalog
  carbonwise vehicles list --filter fuel=electric --sort price:asc`

// newVehiclesCmd creates the vehicles command group.
func newVehiclesCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "vehicles", Short: "Browse the vehicle catalog"}
	cmd.AddCommand(NewVehiclesListCmd(), NewVehiclesShowCmd(), NewVehiclesMakesCmd())
	return cmd
}

// newGridCmd creates the grid command group.
func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "grid", Short: "State grid carbon intensities"}
	cmd.AddCommand(NewGridListCmd(), NewGridShowCmd())
	return cmd
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}

// newCacheCmd creates the cache command group.
func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "cache", Short: "Manage cached analysis results"}
	cmd.AddCommand(NewCacheClearCmd(), NewCachePruneCmd(), NewCacheStatusCmd())
	return cmd
}
