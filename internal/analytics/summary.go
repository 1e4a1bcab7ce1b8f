// Package analytics holds the pure aggregation arithmetic behind the summary
// and trends endpoints. No I/O, no clock: callers pass the expense set in.
package analytics

import (
	"sort"

	"github.com/leon37/SavingsCoach/internal/model"
)

// Summarize totals a filtered expense set and groups it by category, sorted
// by descending total. The timeframe echoes the requested bounds, with
// "all time"/"now" standing in for missing ones.
func Summarize(expenses []model.Expense, startDate, endDate string) model.ExpenseSummary {
	var totalSpent float64
	type bucket struct {
		total float64
		count int
	}
	byCategory := make(map[string]*bucket)

	for _, exp := range expenses {
		totalSpent += exp.Amount
		b, ok := byCategory[exp.Category]
		if !ok {
			b = &bucket{}
			byCategory[exp.Category] = b
		}
		b.total += exp.Amount
		b.count++
	}

	breakdown := make([]model.CategoryTotal, 0, len(byCategory))
	for category, b := range byCategory {
		breakdown = append(breakdown, model.CategoryTotal{
			Category: category,
			Total:    b.total,
			Count:    b.count,
		})
	}
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Total > breakdown[j].Total
	})

	if startDate == "" {
		startDate = "all time"
	}
	if endDate == "" {
		endDate = "now"
	}

	return model.ExpenseSummary{
		TotalSpent:        totalSpent,
		ExpenseCount:      len(expenses),
		CategoryBreakdown: breakdown,
		Timeframe:         model.Timeframe{Start: startDate, End: endDate},
	}
}
