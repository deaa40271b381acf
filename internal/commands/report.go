package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nowhereuri/smartMoneyPlanner/internal/analysis"
	"github.com/nowhereuri/smartMoneyPlanner/internal/export"
)

func newReportCommand(opts *globalOptions) *cobra.Command {
	var csvPath string

	cmd := &cobra.Command{
		Use:   "report <year>",
		Short: "Yearly analysis per category and month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parsing year %q: %w", args[0], err)
			}

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

			yearly := analysis.GenerateYearly(txns, year)
			rows := analysis.Table(yearly, tables.All())

			if csvPath != "" {
				f, err := os.Create(csvPath)
				if err != nil {
					return fmt.Errorf("creating %s: %w", csvPath, err)
				}
				defer f.Close()
				if err := export.WriteAnalysisCSV(f, rows); err != nil {
					return err
				}
				fmt.Printf("Wrote %s\n", csvPath)
				return nil
			}

			fmt.Printf("Analysis for %d\n\n", year)
			for _, row := range rows {
				if row.YearlyTotal.IsZero() {
					continue
				}
				fmt.Printf("%-20s %s\n", row.CategoryName, row.YearlyTotal.String())
			}

			fmt.Println()
			for _, mt := range analysis.MonthlyTotals(yearly) {
				if mt.TotalIncome.IsZero() && mt.TotalExpense.IsZero() {
					continue
				}
				fmt.Printf("%2d월  income %-12s expense %-12s net %s\n",
					mt.Month, mt.TotalIncome.String(), mt.TotalExpense.String(), mt.NetIncome.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the analysis table to a CSV file")

	return cmd
}
