// Package analysis aggregates already-classified transactions into the
// monthly and yearly views behind the reporting screens.
package analysis

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/nowhereuri/smartMoneyPlanner/internal/model"
)

// CategoryMonth is one category's activity within a single month.
type CategoryMonth struct {
	Amount           decimal.Decimal
	TransactionCount int
}

// Monthly is the per-month breakdown for one calendar month.
type Monthly struct {
	Year         int
	Month        int
	Categories   map[string]CategoryMonth
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Yearly holds twelve Monthly breakdowns plus per-category year totals.
type Yearly struct {
	Year           int
	Months         []Monthly
	CategoryTotals map[string]decimal.Decimal
}

// GenerateMonthly builds the breakdown for one month.
func GenerateMonthly(transactions []model.Transaction, year, month int) Monthly {
	m := Monthly{
		Year:         year,
		Month:        month,
		Categories:   make(map[string]CategoryMonth),
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	for _, t := range transactions {
		if t.Date.Year() != year || int(t.Date.Month()) != month {
			continue
		}

		cm := m.Categories[t.Category]
		cm.Amount = cm.Amount.Add(t.Amount)
		cm.TransactionCount++
		m.Categories[t.Category] = cm

		if t.Type == model.TypeIncome {
			m.TotalIncome = m.TotalIncome.Add(t.Amount)
		} else {
			m.TotalExpense = m.TotalExpense.Add(t.Amount)
		}
	}
	return m
}

// GenerateYearly builds all twelve monthly breakdowns for a year and
// the per-category annual totals.
func GenerateYearly(transactions []model.Transaction, year int) Yearly {
	y := Yearly{
		Year:           year,
		CategoryTotals: make(map[string]decimal.Decimal),
	}

	for month := 1; month <= 12; month++ {
		m := GenerateMonthly(transactions, year, month)
		y.Months = append(y.Months, m)

		for categoryID, cm := range m.Categories {
			total, ok := y.CategoryTotals[categoryID]
			if !ok {
				total = decimal.Zero
			}
			y.CategoryTotals[categoryID] = total.Add(cm.Amount)
		}
	}
	return y
}

// MonthCell is one month column in the analysis table.
type MonthCell struct {
	Month            int
	Amount           decimal.Decimal
	TransactionCount int
}

// TableRow is one category's row across the year.
type TableRow struct {
	CategoryID    string
	CategoryName  string
	CategoryColor string
	Months        []MonthCell
	YearlyTotal   decimal.Decimal
}

// Table lays the yearly analysis out per category, sorted by annual
// total descending. Categories with no activity still get a row of
// zero cells, matching the report screen.
func Table(y Yearly, cats []model.Category) []TableRow {
	rows := make([]TableRow, 0, len(cats))
	for _, c := range cats {
		row := TableRow{
			CategoryID:    c.ID,
			CategoryName:  c.Name,
			CategoryColor: c.Color,
			YearlyTotal:   decimal.Zero,
		}
		for _, m := range y.Months {
			cm := m.Categories[c.ID]
			if cm.Amount.IsZero() && cm.TransactionCount == 0 {
				cm = CategoryMonth{Amount: decimal.Zero}
			}
			row.Months = append(row.Months, MonthCell{
				Month:            m.Month,
				Amount:           cm.Amount,
				TransactionCount: cm.TransactionCount,
			})
		}
		if total, ok := y.CategoryTotals[c.ID]; ok {
			row.YearlyTotal = total
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].YearlyTotal.GreaterThan(rows[j].YearlyTotal)
	})
	return rows
}

// MonthlyTotal is the income/expense/net triple for one month.
type MonthlyTotal struct {
	Month        int
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
}

// MonthlyTotals reduces a yearly analysis to twelve totals rows.
func MonthlyTotals(y Yearly) []MonthlyTotal {
	totals := make([]MonthlyTotal, 0, len(y.Months))
	for _, m := range y.Months {
		totals = append(totals, MonthlyTotal{
			Month:        m.Month,
			TotalIncome:  m.TotalIncome,
			TotalExpense: m.TotalExpense,
			NetIncome:    m.TotalIncome.Sub(m.TotalExpense),
		})
	}
	return totals
}

// GrowthRates compares two yearly analyses per category, in percent.
// A category new this year reads as 100; one absent both years as 0.
func GrowthRates(current, previous Yearly) map[string]decimal.Decimal {
	hundred := decimal.NewFromInt(100)

	rates := make(map[string]decimal.Decimal, len(current.CategoryTotals))
	for categoryID, cur := range current.CategoryTotals {
		prev, ok := previous.CategoryTotals[categoryID]
		switch {
		case ok && prev.IsPositive():
			rates[categoryID] = cur.Sub(prev).Div(prev).Mul(hundred)
		case cur.IsPositive():
			rates[categoryID] = hundred
		default:
			rates[categoryID] = decimal.Zero
		}
	}
	return rates
}

// AverageMonthlySpending averages a category's amount over the months
// it was actually active in.
func AverageMonthlySpending(y Yearly, categoryID string) decimal.Decimal {
	sum := decimal.Zero
	active := 0
	for _, m := range y.Months {
		if cm, ok := m.Categories[categoryID]; ok && cm.Amount.IsPositive() {
			sum = sum.Add(cm.Amount)
			active++
		}
	}
	if active == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(active)))
}
