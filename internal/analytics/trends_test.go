package analytics

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/model"
)

func TestValidPeriod(t *testing.T) {
	assert.True(t, ValidPeriod("day"))
	assert.True(t, ValidPeriod("week"))
	assert.True(t, ValidPeriod("month"))
	assert.False(t, ValidPeriod("year"))
	assert.False(t, ValidPeriod(""))
}

func TestTrendsMonthSingleBucket(t *testing.T) {
	expenses := []model.Expense{
		exp(10, "a", "2024-01-05"),
		exp(20, "b", "2024-01-20"),
	}
	points := Trends(expenses, PeriodMonth)
	require.Len(t, points, 1)
	assert.Equal(t, model.TrendPoint{Period: "2024-01", Amount: 30}, points[0])
}

func TestTrendsDay(t *testing.T) {
	expenses := []model.Expense{
		exp(10, "a", "2024-01-05"),
		exp(5, "a", "2024-01-05T18:00:00Z"),
		exp(20, "b", "2024-01-06"),
	}
	points := Trends(expenses, PeriodDay)
	require.Len(t, points, 2)
	assert.Equal(t, model.TrendPoint{Period: "2024-01-05", Amount: 15}, points[0])
	assert.Equal(t, model.TrendPoint{Period: "2024-01-06", Amount: 20}, points[1])
}

func TestTrendsWeekSundayStart(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week starts Sunday 2024-01-07.
	// 2024-01-07 itself maps to the same bucket; 2024-01-06 (Saturday) to the
	// prior week starting 2023-12-31.
	expenses := []model.Expense{
		exp(10, "a", "2024-01-10"),
		exp(20, "a", "2024-01-07"),
		exp(40, "a", "2024-01-06"),
	}
	points := Trends(expenses, PeriodWeek)
	require.Len(t, points, 2)
	assert.Equal(t, model.TrendPoint{Period: "2023-12-31", Amount: 40}, points[0])
	assert.Equal(t, model.TrendPoint{Period: "2024-01-07", Amount: 30}, points[1])
}

func TestTrendsInvalidDateBucket(t *testing.T) {
	expenses := []model.Expense{
		exp(10, "a", "2024-01-05"),
		exp(7, "a", "garbage"),
	}
	points := Trends(expenses, PeriodDay)
	require.Len(t, points, 2)

	var invalid float64
	for _, p := range points {
		if p.Period == InvalidDateBucket {
			invalid = p.Amount
		}
	}
	assert.Equal(t, 7.0, invalid)
}

// Bucketing preserves the total and emits lexicographically sorted keys.
func TestTrendsSumAndOrderProperties(t *testing.T) {
	expenses := []model.Expense{
		exp(1, "a", "2024-03-01"),
		exp(2, "a", "2024-01-15"),
		exp(3, "a", "2023-12-31"),
		exp(4, "a", "2024-01-16"),
		exp(5, "a", "bad date"),
	}

	for _, period := range []string{PeriodDay, PeriodWeek, PeriodMonth} {
		points := Trends(expenses, period)

		var sum float64
		keys := make([]string, 0, len(points))
		for _, p := range points {
			sum += p.Amount
			keys = append(keys, p.Period)
		}
		assert.InDelta(t, 15.0, sum, 1e-9, period)
		assert.True(t, sort.StringsAreSorted(keys), period)
	}
}

func TestTrendsEmpty(t *testing.T) {
	assert.Empty(t, Trends(nil, PeriodMonth))
}
