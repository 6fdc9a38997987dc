package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rileyhilliard/pgmon/internal/config"
	"github.com/rileyhilliard/pgmon/internal/errors"
	"github.com/rileyhilliard/pgmon/internal/view"
)

// Command-specific flags
var (
	activityIntervalFlag string
	tablesIntervalFlag   string
)

// activityCmd shows the live session snapshot
var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Live session snapshot (pg_stat_activity)",
	Long: `Display the current server sessions from pg_stat_activity as a
live-refreshing table: pid, user, database, state, and running query.

Shows up to 10 sessions ordered by pid, refreshed every 2 seconds.

Examples:
  pgmon activity
  pgmon activity --interval 5s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parseInterval(activityIntervalFlag)
		if err != nil {
			return err
		}
		return dashboardCommand(view.Activity(), interval)
	},
}

// tablesCmd shows per-table access counters
var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Per-table access counters (pg_stat_user_tables)",
	Long: `Display per-table access statistics from pg_stat_user_tables as a
live-refreshing table: sequential and index scan counts, tuple reads,
and insert/update/delete counters.

Shows up to 15 tables ordered by sequential scans, refreshed every
2 seconds.

Examples:
  pgmon tables
  pgmon tables --interval 10s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		interval, err := parseInterval(tablesIntervalFlag)
		if err != nil {
			return err
		}
		return dashboardCommand(view.TableStats(), interval)
	},
}

// completionCmd generates shell completion scripts
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion scripts for pgmon.

Examples:
  # Bash
  pgmon completion bash > /etc/bash_completion.d/pgmon

  # Zsh
  pgmon completion zsh > "${fpath[1]}/_pgmon"

  # Fish
  pgmon completion fish > ~/.config/fish/completions/pgmon.fish`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(os.Stdout)
		case "zsh":
			return rootCmd.GenZshCompletion(os.Stdout)
		case "fish":
			return rootCmd.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(os.Stdout)
		default:
			return errors.New(errors.ErrConfig,
				"Unknown shell: "+args[0],
				"Supported shells: bash, zsh, fish, powershell")
		}
	},
}

// parseInterval resolves the refresh interval from the flag, falling
// back to the config default when the flag is empty.
func parseInterval(flag string) (time.Duration, error) {
	if flag == "" {
		return 0, nil // config decides
	}
	parsed, err := time.ParseDuration(flag)
	if err != nil {
		return 0, errors.WrapWithCode(err, errors.ErrConfig,
			fmt.Sprintf("Invalid interval: %s", flag),
			"Use a valid duration like 2s, 5s, or 1m")
	}
	if err := config.ValidateInterval(parsed); err != nil {
		return 0, err
	}
	return parsed, nil
}

func init() {
	// activity command flags
	activityCmd.Flags().StringVar(&activityIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")

	// tables command flags
	tablesCmd.Flags().StringVar(&tablesIntervalFlag, "interval", "", "refresh interval (e.g., 2s, 5s, 1m)")

	// Register all commands
	rootCmd.AddCommand(activityCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(completionCmd)
}
