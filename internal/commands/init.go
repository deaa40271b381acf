package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/categories"
	"github.com/nowhereuri/smartMoneyPlanner/internal/config"
	"github.com/nowhereuri/smartMoneyPlanner/internal/gitops"
	"github.com/nowhereuri/smartMoneyPlanner/internal/store"
)

func newInitCommand() *cobra.Command {
	var noDefaults bool
	var backup bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new planner data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, noDefaults, backup)
		},
	}

	cmd.Flags().BoolVar(&noDefaults, "no-defaults", false, "start with an empty category table")
	cmd.Flags().BoolVar(&backup, "backup", false, "enable git auto-backup of the data directory")

	return cmd
}

func runInit(dir string, noDefaults, backup bool) error {
	if err := os.MkdirAll(filepath.Join(dir, "logs"), 0o755); err != nil {
		return fmt.Errorf("creating directories: %w", err)
	}

	cfg := config.Default(dir)
	cfg.Backup.AutoCommit = backup
	if err := config.Save(filepath.Join(dir, "smp.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	st := store.New(dir)
	cats := categories.DefaultCategories()
	subs := categories.DefaultSubcategories()
	if noDefaults {
		cats = nil
		subs = nil
	}
	if err := st.SaveCategories(cats); err != nil {
		return fmt.Errorf("writing categories: %w", err)
	}
	if err := st.SaveSubcategories(subs); err != nil {
		return fmt.Errorf("writing subcategories: %w", err)
	}
	if err := st.SaveTransactions(nil); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	if backup {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		hash, err := gitops.CommitAll(dir, "init: new planner", cfg.Backup.AuthorName, cfg.Backup.AuthorEmail)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Printf("Initialized planner at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Printf("Initialized planner at %s\n", dir)
	return nil
}
