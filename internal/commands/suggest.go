package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/classify"
)

func newSuggestCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <description>",
		Short: "Suggest categories for a description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			tables, err := a.ledger.Tables()
			if err != nil {
				return err
			}

			suggestions := classify.Suggest(args[0], tables.All())
			if len(suggestions) == 0 {
				fmt.Println("No matching categories.")
				return nil
			}
			for i, c := range suggestions {
				fmt.Printf("%d. %s (%s)\n", i+1, c.Name, c.ID)
			}
			return nil
		},
	}
}
