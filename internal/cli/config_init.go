package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/config"
)

// NewConfigInitCmd writes a defaults-only config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config.yaml holding the built-in defaults",
		Long: `Writes config.yaml with built-in defaults to $CARBONWISE_HOME
(default ~/.carbonwise). Environment variables are not written.`,
		Example: `  # Create the configuration file
  carbonwise config init

  # Reset an existing configuration to defaults
  carbonwise config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := config.GetConfigFilePath()
			if err != nil {
				return err
			}

			switch _, statErr := os.Stat(path); {
			case force, errors.Is(statErr, fs.ErrNotExist):
			case statErr == nil:
				return errors.New("configuration file already exists, use --force to overwrite")
			default:
				return fmt.Errorf("checking %s: %w", path, statErr)
			}

			if err := config.Defaults().Save(path); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			cmd.Printf("Configuration initialized at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "replace an existing config.yaml")

	return cmd
}
