package classify

import (
	"github.com/shopspring/decimal"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// CategoryStat aggregates usage of one category across transactions.
type CategoryStat struct {
	CategoryID  string
	Count       int
	TotalAmount decimal.Decimal
}

// Stats groups transactions by category field, in order of first
// appearance. Unclassified transactions group under the empty id.
func Stats(transactions []model.Transaction) []CategoryStat {
	index := make(map[string]int)
	var stats []CategoryStat

	for _, t := range transactions {
		i, ok := index[t.Category]
		if !ok {
			i = len(stats)
			index[t.Category] = i
			stats = append(stats, CategoryStat{CategoryID: t.Category, TotalAmount: decimal.Zero})
		}
		stats[i].Count++
		stats[i].TotalAmount = stats[i].TotalAmount.Add(t.Amount)
	}
	return stats
}
