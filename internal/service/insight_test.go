package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/infrastructure/llm"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
)

// insightsProvider records the input and returns a canned bundle.
type insightsProvider struct {
	fakeProvider
	lastInput llm.InsightsInput
	bundle    model.FinancialInsights
}

func (p *insightsProvider) GenerateInsights(_ context.Context, input llm.InsightsInput) model.FinancialInsights {
	p.lastInput = input
	return p.bundle
}

func TestInsightsEmptySetShortCircuits(t *testing.T) {
	ctx := context.Background()
	ai := &insightsProvider{}
	svc := NewInsightService(ai, repository.NewMemoryStore().Expenses())

	got, err := svc.Insights(ctx, "u1", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"No expenses found for the selected period."}, got.Insights)
	assert.Empty(t, ai.lastInput.Expenses, "model not called for empty sets")
}

func TestInsightsForwardsTotalsAndTimeframe(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	for _, e := range []model.Expense{
		{ID: "e1", UserID: "u1", Amount: 30, Category: "food", Date: "2024-01-01"},
		{ID: "e2", UserID: "u1", Amount: 70, Category: "rent", Date: "2024-01-02"},
	} {
		copied := e
		require.NoError(t, store.Expenses().Create(ctx, &copied))
	}

	bundle := model.FinancialInsights{Insights: []string{"x"}}
	ai := &insightsProvider{bundle: bundle}
	svc := NewInsightService(ai, store.Expenses())

	got, err := svc.Insights(ctx, "u1", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, bundle, got)
	assert.Equal(t, 100.0, ai.lastInput.TotalSpent)
	assert.Equal(t, DefaultTimeframe, ai.lastInput.Timeframe)
	assert.Len(t, ai.lastInput.Expenses, 2)
}

func TestTrendsRejectsBadPeriod(t *testing.T) {
	svc := NewInsightService(&insightsProvider{}, repository.NewMemoryStore().Expenses())

	_, err := svc.Trends(context.Background(), "u1", "year")
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.Status)
}

func TestTrendsMonthScenario(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	for _, e := range []model.Expense{
		{ID: "e1", UserID: "u1", Amount: 10, Category: "a", Date: "2024-01-05"},
		{ID: "e2", UserID: "u1", Amount: 20, Category: "b", Date: "2024-01-20"},
	} {
		copied := e
		require.NoError(t, store.Expenses().Create(ctx, &copied))
	}

	svc := NewInsightService(&insightsProvider{}, store.Expenses())
	got, err := svc.Trends(ctx, "u1", "month")
	require.NoError(t, err)
	assert.Equal(t, "month", got.Period)
	require.Len(t, got.Trends, 1)
	assert.Equal(t, model.TrendPoint{Period: "2024-01", Amount: 30}, got.Trends[0])
}
