package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carbonwise/internal/config"
)

// NewConfigShowCmd creates the config show command, which prints the
// effective configuration after file and environment overrides.
func NewConfigShowCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Example: `  carbonwise config show
  carbonwise config show --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()

			switch strings.ToLower(output) {
			case "yaml", "":
				data, err := yaml.Marshal(cfg)
				if err != nil {
					return fmt.Errorf("marshalling config: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			case outputJSON:
				return writeJSON(cmd.OutOrStdout(), cfg)
			default:
				return fmt.Errorf("unsupported output format %q: use yaml or json", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "yaml", "Output format: yaml or json")

	return cmd
}
