package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/leon37/SavingsCoach/internal/analytics"
	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
	"github.com/leon37/SavingsCoach/internal/validator"
)

type ExpenseService struct {
	expenses repository.ExpenseRepo
}

func NewExpenseService(expenses repository.ExpenseRepo) *ExpenseService {
	return &ExpenseService{expenses: expenses}
}

// ExpenseInput is a logging request after userID resolution (token wins over
// the request body).
type ExpenseInput struct {
	UserID      string
	Amount      float64
	Category    string
	Description string
	Date        string
}

// Log validates and persists one spending event. Date defaults to now;
// createdAt is always the server clock.
func (s *ExpenseService) Log(ctx context.Context, input ExpenseInput) (*model.Expense, error) {
	if input.UserID == "" {
		return nil, apperr.BadRequest("userId is required")
	}
	if err := validator.Amount(input.Amount); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}
	if err := validator.Category(input.Category); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	date := input.Date
	if date == "" {
		date = time.Now().UTC().Format(time.RFC3339)
	}
	if err := validator.Date(date); err != nil {
		return nil, apperr.BadRequest(err.Error())
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	expense := &model.Expense{
		ID:          id.String(),
		UserID:      input.UserID,
		Amount:      input.Amount,
		Category:    strings.TrimSpace(input.Category),
		Description: strings.TrimSpace(input.Description),
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.expenses.Create(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// List returns a user's expenses, newest first, honoring the filter.
func (s *ExpenseService) List(ctx context.Context, filter repository.ExpenseFilter) ([]model.Expense, error) {
	if filter.UserID == "" {
		return nil, apperr.BadRequest("userId is required")
	}
	return s.expenses.List(ctx, filter)
}

// Summary aggregates the date-filtered set; the arithmetic itself is pure
// and lives in internal/analytics.
func (s *ExpenseService) Summary(ctx context.Context, userID, startDate, endDate string) (model.ExpenseSummary, error) {
	if userID == "" {
		return model.ExpenseSummary{}, apperr.BadRequest("userId is required")
	}
	expenses, err := s.expenses.List(ctx, repository.ExpenseFilter{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return model.ExpenseSummary{}, err
	}
	return analytics.Summarize(expenses, startDate, endDate), nil
}

// Delete removes an expense. An authenticated caller must own it; an
// anonymous delete goes straight by id, as the original API allowed.
func (s *ExpenseService) Delete(ctx context.Context, callerID, expenseID string) error {
	if expenseID == "" {
		return apperr.BadRequest("expenseId is required")
	}

	if callerID != "" {
		expense, err := s.expenses.GetByID(ctx, expenseID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return apperr.NotFound("Expense not found")
			}
			return err
		}
		if expense.UserID != callerID {
			return apperr.Forbidden("Unauthorized to delete this expense")
		}
	}

	if err := s.expenses.Delete(ctx, expenseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound("Expense not found")
		}
		return err
	}
	return nil
}
