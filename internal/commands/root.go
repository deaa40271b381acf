package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	var configPath string
	var verbose bool

	rootCmd := &cobra.Command{
		Use:     "smp",
		Short:   "Personal money planner with text-to-transaction parsing",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "smp.yaml", "path to smp.yaml")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	opts := &globalOptions{configPath: &configPath, verbose: &verbose}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newPasteCommand(opts))
	rootCmd.AddCommand(newSuggestCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newCategorizeCommand(opts))
	rootCmd.AddCommand(newDeleteCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand(opts))
	rootCmd.AddCommand(newStatsCommand(opts))
	rootCmd.AddCommand(newReportCommand(opts))

	return rootCmd
}
