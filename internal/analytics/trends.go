package analytics

import (
	"sort"

	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/validator"
)

const (
	PeriodDay   = "day"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

// InvalidDateBucket collects expenses whose date string does not parse.
// Grouping them instead of dropping them keeps the sum-preservation property.
const InvalidDateBucket = "Invalid Date"

// ValidPeriod reports whether the granularity is one of day/week/month.
func ValidPeriod(period string) bool {
	return period == PeriodDay || period == PeriodWeek || period == PeriodMonth
}

// Trends buckets expenses by calendar period and sums the amounts. Keys are
// day YYYY-MM-DD, week = the Sunday on or before the date, month YYYY-MM.
// Lexicographic key order coincides with chronological order.
func Trends(expenses []model.Expense, period string) []model.TrendPoint {
	sums := make(map[string]float64)

	for _, exp := range expenses {
		sums[bucketKey(exp.Date, period)] += exp.Amount
	}

	points := make([]model.TrendPoint, 0, len(sums))
	for key, amount := range sums {
		points = append(points, model.TrendPoint{Period: key, Amount: amount})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Period < points[j].Period
	})
	return points
}

func bucketKey(date, period string) string {
	t, ok := validator.ParseDate(date)
	if !ok {
		return InvalidDateBucket
	}
	t = t.UTC()

	switch period {
	case PeriodDay:
		return t.Format("2006-01-02")
	case PeriodWeek:
		// Sunday on/before, mirroring date - date.getDay().
		weekStart := t.AddDate(0, 0, -int(t.Weekday()))
		return weekStart.Format("2006-01-02")
	default: // month
		return t.Format("2006-01")
	}
}
