// Package export renders report data for use outside the app.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/nowhereuri/smartMoneyPlanner/internal/analysis"
)

// numColumns is category name + 12 months + yearly total.
const numColumns = 14

// WriteAnalysisCSV writes the yearly analysis table as CSV: one row per
// category with a column per month and the annual total last.
func WriteAnalysisCSV(w io.Writer, rows []analysis.TableRow) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := make([]string, 0, numColumns)
	header = append(header, "분류")
	for month := 1; month <= 12; month++ {
		header = append(header, fmt.Sprintf("%d월", month))
	}
	header = append(header, "연간총계")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range rows {
		rec := make([]string, 0, numColumns)
		rec = append(rec, row.CategoryName)
		for _, m := range row.Months {
			rec = append(rec, m.Amount.String())
		}
		rec = append(rec, row.YearlyTotal.String())
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
