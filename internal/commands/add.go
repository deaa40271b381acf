package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func newAddCommand(opts *globalOptions) *cobra.Command {
	var amountStr string
	var description string
	var dateStr string
	var typeStr string
	var category string
	var subcategory string
	var memo string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a transaction manually",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			amount, err := decimal.NewFromString(amountStr)
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", amountStr, err)
			}
			date, err := parseDate(dateStr)
			if err != nil {
				return err
			}

			txn := model.Transaction{
				Date:        date,
				Type:        model.TransactionType(typeStr),
				Amount:      amount,
				Description: description,
				Category:    category,
				Subcategory: subcategory,
				Memo:        memo,
				Source:      model.SourceManual,
			}

			added, err := a.ledger.Add(txn)
			if err != nil {
				return err
			}

			printTransaction(added)
			return a.backup("add: " + added.ID)
		},
	}

	cmd.Flags().StringVar(&amountStr, "amount", "", "amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&description, "description", "", "description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&dateStr, "date", "", "date as YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&typeStr, "type", string(model.TypeExpense), "income or expense")
	cmd.Flags().StringVar(&category, "category", "", "category id (auto-classified when empty)")
	cmd.Flags().StringVar(&subcategory, "subcategory", "", "subcategory id")
	cmd.Flags().StringVar(&memo, "memo", "", "free-form memo")

	return cmd
}

func printTransaction(t model.Transaction) {
	category := t.Category
	if category == "" {
		category = "(unclassified)"
	}
	fmt.Printf("%s  %s  %-7s  %s  %s", t.ID, t.Date.Format("2006-01-02"), t.Type, t.Amount.String(), t.Description)
	fmt.Printf("  [%s", category)
	if t.Subcategory != "" {
		fmt.Printf("/%s", t.Subcategory)
	}
	fmt.Println("]")
}
