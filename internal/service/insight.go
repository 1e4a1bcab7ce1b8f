package service

import (
	"context"

	"github.com/leon37/SavingsCoach/internal/analytics"
	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/infrastructure/llm"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
)

// DefaultTimeframe labels the insight request when the caller omits one.
const DefaultTimeframe = "last 30 days"

type InsightService struct {
	ai       llm.Provider
	expenses repository.ExpenseRepo
}

func NewInsightService(ai llm.Provider, expenses repository.ExpenseRepo) *InsightService {
	return &InsightService{ai: ai, expenses: expenses}
}

// Insights hands the filtered expense set to the model. An empty set never
// reaches the model: it yields the fixed starter bundle.
func (s *InsightService) Insights(ctx context.Context, userID, startDate, endDate, timeframe string) (model.FinancialInsights, error) {
	if userID == "" {
		return model.FinancialInsights{}, apperr.BadRequest("userId is required")
	}
	if timeframe == "" {
		timeframe = DefaultTimeframe
	}

	expenses, err := s.expenses.List(ctx, repository.ExpenseFilter{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return model.FinancialInsights{}, err
	}

	if len(expenses) == 0 {
		return model.FinancialInsights{
			Insights:        []string{"No expenses found for the selected period."},
			Recommendations: []string{"Start tracking your expenses to get personalized insights!"},
			TopCategories:   []model.TopCategory{},
		}, nil
	}

	var totalSpent float64
	for _, e := range expenses {
		totalSpent += e.Amount
	}

	return s.ai.GenerateInsights(ctx, llm.InsightsInput{
		Expenses:   expenses,
		TotalSpent: totalSpent,
		Timeframe:  timeframe,
	}), nil
}

// Trends buckets the user's full history by the requested granularity.
func (s *InsightService) Trends(ctx context.Context, userID, period string) (model.SpendingTrends, error) {
	if userID == "" {
		return model.SpendingTrends{}, apperr.BadRequest("userId is required")
	}
	if !analytics.ValidPeriod(period) {
		return model.SpendingTrends{}, apperr.BadRequest("Period must be 'day', 'week', or 'month'")
	}

	expenses, err := s.expenses.List(ctx, repository.ExpenseFilter{UserID: userID})
	if err != nil {
		return model.SpendingTrends{}, err
	}

	return model.SpendingTrends{
		Period: period,
		Trends: analytics.Trends(expenses, period),
	}, nil
}
