package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCategorizeCommand(opts *globalOptions) *cobra.Command {
	var subcategory string

	cmd := &cobra.Command{
		Use:   "categorize <transaction-id> <category-id>",
		Short: "File a transaction under a category and learn from it",
		Long: `Assign a category to a transaction. The transaction's description is
mined for new keywords, which are appended to the category so future
auto-classification picks up similar text.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			txn, learned, err := a.ledger.Categorize(args[0], args[1], subcategory)
			if err != nil {
				return err
			}

			printTransaction(txn)
			if len(learned) > 0 {
				fmt.Printf("Learned keywords for %s: %s\n", args[1], strings.Join(learned, ", "))
			}
			return a.backup("categorize: " + txn.ID)
		},
	}

	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory id")

	return cmd
}
