package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/model"
)

func exp(amount float64, category, date string) model.Expense {
	return model.Expense{Amount: amount, Category: category, Date: date}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, "", "")
	assert.Zero(t, s.TotalSpent)
	assert.Zero(t, s.ExpenseCount)
	assert.Empty(t, s.CategoryBreakdown)
	assert.Equal(t, "all time", s.Timeframe.Start)
	assert.Equal(t, "now", s.Timeframe.End)
}

func TestSummarizeSingleExpense(t *testing.T) {
	s := Summarize([]model.Expense{exp(50, "groceries", "2024-01-05")}, "", "")
	assert.Equal(t, 50.0, s.TotalSpent)
	require.Len(t, s.CategoryBreakdown, 1)
	assert.Equal(t, model.CategoryTotal{Category: "groceries", Total: 50, Count: 1}, s.CategoryBreakdown[0])
}

func TestSummarizeGroupsAndSorts(t *testing.T) {
	expenses := []model.Expense{
		exp(10, "transport", "2024-01-01"),
		exp(40, "groceries", "2024-01-02"),
		exp(25, "groceries", "2024-01-03"),
		exp(5, "coffee", "2024-01-04"),
	}
	s := Summarize(expenses, "2024-01-01", "2024-01-31")

	assert.Equal(t, 80.0, s.TotalSpent)
	assert.Equal(t, 4, s.ExpenseCount)
	assert.Equal(t, model.Timeframe{Start: "2024-01-01", End: "2024-01-31"}, s.Timeframe)

	require.Len(t, s.CategoryBreakdown, 3)
	assert.Equal(t, "groceries", s.CategoryBreakdown[0].Category)
	assert.Equal(t, 65.0, s.CategoryBreakdown[0].Total)
	assert.Equal(t, 2, s.CategoryBreakdown[0].Count)

	// Descending by total.
	for i := 1; i < len(s.CategoryBreakdown); i++ {
		assert.GreaterOrEqual(t, s.CategoryBreakdown[i-1].Total, s.CategoryBreakdown[i].Total)
	}
}

// The breakdown must partition the set: totals sum to totalSpent and counts
// sum to the expense count.
func TestSummarizePartitionProperty(t *testing.T) {
	expenses := []model.Expense{
		exp(12.5, "a", "2024-01-01"),
		exp(7.5, "b", "2024-01-01"),
		exp(30, "a", "2024-02-01"),
		exp(0, "c", "2024-03-01"),
		exp(9.99, "b", "2024-03-02"),
	}
	s := Summarize(expenses, "", "")

	var total float64
	var count int
	for _, c := range s.CategoryBreakdown {
		total += c.Total
		count += c.Count
	}
	assert.InDelta(t, s.TotalSpent, total, 1e-9)
	assert.Equal(t, s.ExpenseCount, count)
}
