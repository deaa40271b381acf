package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

func newListCommand(opts *globalOptions) *cobra.Command {
	var monthStr string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}

			var txns []model.Transaction
			if monthStr != "" {
				m, err := time.Parse("2006-01", monthStr)
				if err != nil {
					return fmt.Errorf("parsing month %q: %w", monthStr, err)
				}
				txns, err = a.ledger.Month(m.Year(), int(m.Month()))
				if err != nil {
					return err
				}
			} else {
				txns, err = a.ledger.List()
				if err != nil {
					return err
				}
			}

			if len(txns) == 0 {
				fmt.Println("No transactions.")
				return nil
			}
			for _, t := range txns {
				printTransaction(t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&monthStr, "month", "", "only this month, as YYYY-MM")

	return cmd
}

func newDeleteCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <transaction-id>",
		Short: "Delete a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts)
			if err != nil {
				return err
			}
			if err := a.ledger.Delete(args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", args[0])
			return a.backup("delete: " + args[0])
		},
	}
}
