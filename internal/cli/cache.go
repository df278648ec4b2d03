package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonwise/internal/cache"
	"github.com/rshade/carbonwise/internal/logging"
)

// NewCacheClearCmd creates the cache clear command.
func NewCacheClearCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached analysis result",
		Example: `  carbonwise cache clear
  carbonwise cache clear --yes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(cmd, true)
			if err != nil {
				return err
			}
			count, err := store.Count()
			if err != nil {
				return err
			}
			if count == 0 {
				cmd.Println("Cache is empty")
				return nil
			}

			ok, err := confirmDestructive(cmd.OutOrStdout(), cmd.InOrStdin(),
				fmt.Sprintf("Remove %d cached result(s) in %s?", count, store.Directory()), yes)
			if err != nil {
				return err
			}
			if !ok {
				cmd.Println("Aborted")
				return nil
			}

			removed, err := store.Clear()
			if err != nil {
				return err
			}
			logging.FromContext(cmd.Context()).Info().Ctx(cmd.Context()).
				Int("removed", removed).Str("directory", store.Directory()).Msg("cache cleared")
			cmd.Printf("Removed %d cached result(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")

	return cmd
}

// NewCachePruneCmd creates the cache prune command.
func NewCachePruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Remove expired and unreadable cache entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openCache(cmd, true)
			if err != nil {
				return err
			}
			removed, err := store.CleanupExpired()
			if err != nil {
				return err
			}
			cmd.Printf("Pruned %d expired result(s)\n", removed)
			return nil
		},
	}
}

// cacheStatus is the JSON shape of `cache status`.
type cacheStatus struct {
	Enabled    bool   `json:"enabled"`
	Directory  string `json:"directory"`
	TTLSeconds int    `json:"ttl_seconds"`
	TTL        string `json:"ttl"`
	Entries    int    `json:"entries"`
}

// NewCacheStatusCmd creates the cache status command.
func NewCacheStatusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show cache location, TTL and entry count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			configured, err := openCache(cmd, false)
			if err != nil {
				return err
			}
			store, err := openCache(cmd, true)
			if err != nil {
				return err
			}
			entries, err := store.Count()
			if err != nil && !errors.Is(err, cache.ErrCacheDisabled) {
				return err
			}

			status := cacheStatus{
				Enabled:    configured.IsEnabled(),
				Directory:  store.Directory(),
				TTLSeconds: int(store.TTL().Seconds()),
				TTL:        cache.FormatDuration(store.TTL()),
				Entries:    entries,
			}
			if format == outputJSON {
				return writeJSON(cmd.OutOrStdout(), status)
			}

			p := newPrinter(cmd.OutOrStdout())
			p.line("Enabled:   %t", status.Enabled)
			p.line("Directory: %s", status.Directory)
			p.line("TTL:       %s", status.TTL)
			p.line("Entries:   %d", status.Entries)
			return nil
		},
	}

	addOutputFlag(cmd, &output)

	return cmd
}
