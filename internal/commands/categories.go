package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/classify"
)

func newCategoriesCommand(opts *globalOptions) *cobra.Command {
	var showKeywords bool

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category table",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			tables, err := a.ledger.Tables()
			if err != nil {
				return err
			}

			for _, c := range tables.All() {
				fmt.Printf("%-15s %-10s %s (%d keywords)\n", c.ID, c.Type, c.Name, len(c.Keywords))
				if showKeywords {
					fmt.Printf("                keywords: %s\n", strings.Join(c.Keywords, ", "))
				}
				for _, sub := range tables.Children(c.ID) {
					fmt.Printf("  %-13s %s\n", sub.ID, sub.Name)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showKeywords, "keywords", false, "show each category's keyword list")

	return cmd
}

func newStatsCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show per-category usage counts and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			txns, err := a.ledger.List()
			if err != nil {
				return err
			}
			tables, err := a.ledger.Tables()
			if err != nil {
				return err
			}

			stats := classify.Stats(txns)
			if len(stats) == 0 {
				fmt.Println("No transactions.")
				return nil
			}
			for _, st := range stats {
				name := "(unclassified)"
				if c, ok := tables.Get(st.CategoryID); ok {
					name = c.Name
				}
				fmt.Printf("%-20s %4d  %s\n", name, st.Count, st.TotalAmount.String())
			}
			return nil
		},
	}
}
