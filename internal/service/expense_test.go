package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
)

func TestExpenseLogListSummaryDelete(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	svc := NewExpenseService(store.Expenses())

	expense, err := svc.Log(ctx, ExpenseInput{
		UserID:   "u1",
		Amount:   50,
		Category: "groceries",
	})
	require.NoError(t, err)
	assert.Equal(t, "groceries", expense.Category)
	assert.NotEmpty(t, expense.ID)
	assert.NotEmpty(t, expense.Date, "date defaulted")

	list, err := svc.List(ctx, repository.ExpenseFilter{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, list, 1)

	summary, err := svc.Summary(ctx, "u1", "", "")
	require.NoError(t, err)
	assert.Equal(t, 50.0, summary.TotalSpent)
	require.Len(t, summary.CategoryBreakdown, 1)
	assert.Equal(t, model.CategoryTotal{Category: "groceries", Total: 50, Count: 1}, summary.CategoryBreakdown[0])

	require.NoError(t, svc.Delete(ctx, "u1", expense.ID))

	summary, err = svc.Summary(ctx, "u1", "", "")
	require.NoError(t, err)
	assert.Zero(t, summary.TotalSpent)
}

func TestExpenseLogValidation(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(repository.NewMemoryStore().Expenses())

	cases := []struct {
		name  string
		input ExpenseInput
	}{
		{"missing user", ExpenseInput{Amount: 1, Category: "x"}},
		{"negative amount", ExpenseInput{UserID: "u1", Amount: -1, Category: "x"}},
		{"empty category", ExpenseInput{UserID: "u1", Amount: 1, Category: "  "}},
		{"bad date", ExpenseInput{UserID: "u1", Amount: 1, Category: "x", Date: "yesterday"}},
	}
	for _, tc := range cases {
		_, err := svc.Log(ctx, tc.input)
		var appErr *apperr.Error
		require.ErrorAs(t, err, &appErr, tc.name)
		assert.Equal(t, 400, appErr.Status, tc.name)
	}
}

func TestExpenseDeleteOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(repository.NewMemoryStore().Expenses())

	expense, err := svc.Log(ctx, ExpenseInput{UserID: "u1", Amount: 10, Category: "x"})
	require.NoError(t, err)

	// Another authenticated user may not delete it.
	err = svc.Delete(ctx, "u2", expense.ID)
	var appErr *apperr.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 403, appErr.Status)

	// Unknown id is a 404 for authenticated and anonymous callers alike.
	err = svc.Delete(ctx, "u1", "missing")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)
	err = svc.Delete(ctx, "", "missing")
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 404, appErr.Status)

	// Anonymous delete by id is allowed.
	require.NoError(t, svc.Delete(ctx, "", expense.ID))
}

func TestExpenseSummaryIdempotentAcrossCalls(t *testing.T) {
	ctx := context.Background()
	svc := NewExpenseService(repository.NewMemoryStore().Expenses())

	for _, amount := range []float64{10, 20, 30} {
		_, err := svc.Log(ctx, ExpenseInput{UserID: "u1", Amount: amount, Category: "c", Date: "2024-01-05"})
		require.NoError(t, err)
	}

	first, err := svc.Summary(ctx, "u1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	second, err := svc.Summary(ctx, "u1", "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 60.0, first.TotalSpent)
	assert.Equal(t, model.Timeframe{Start: "2024-01-01", End: "2024-01-31"}, first.Timeframe)
}
