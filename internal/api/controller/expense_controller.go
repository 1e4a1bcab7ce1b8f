package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/api/middleware"
	"github.com/leon37/SavingsCoach/internal/api/response"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
	"github.com/leon37/SavingsCoach/internal/service"
)

// ExpenseController handles direct expense logging, listing and deletion.
type ExpenseController struct {
	expenseService *service.ExpenseService
}

func NewExpenseController(expenseService *service.ExpenseService) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// ==========================================
// DTOs
// ==========================================

type CreateExpenseRequest struct {
	UserID      string   `json:"userId"`
	Amount      *float64 `json:"amount"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Date        string   `json:"date"`
}

type CreateExpenseResponse struct {
	Message string         `json:"message"`
	Expense *model.Expense `json:"expense"`
}

type ListExpensesResponse struct {
	Expenses []model.Expense `json:"expenses"`
	Total    int             `json:"total"`
}

// ==========================================
// Handlers
// ==========================================

// Create logs one expense.
// @Summary Log an expense
// @Description Validates and persists a spending event; the date defaults to now
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "expense payload"
// @Success 201 {object} CreateExpenseResponse
// @Failure 400 {object} apperr.Error
// @Router /expenses [post]
func (ctrl *ExpenseController) Create(c *gin.Context) {
	var req CreateExpenseRequest

	// 1. Parse body. Amount is a pointer so a missing field is
	// distinguishable from an explicit zero.
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Amount == nil || req.Category == "" {
		response.Error(c, http.StatusBadRequest, "amount and category are required")
		return
	}

	// 2. Resolve owner: token identity wins over the body field.
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		userID = req.UserID
	}

	// 3. Business logic
	expense, err := ctrl.expenseService.Log(c.Request.Context(), service.ExpenseInput{
		UserID:      userID,
		Amount:      *req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		response.Err(c, err)
		return
	}

	// 4. Success
	slog.Info("expense logged", "userID", userID, "expenseID", expense.ID, "amount", expense.Amount)
	c.JSON(http.StatusCreated, CreateExpenseResponse{
		Message: "Expense logged successfully",
		Expense: expense,
	})
}

// List returns a user's expenses, newest first.
// @Summary List expenses
// @Description Filters by optional category and inclusive date bounds
// @Tags Expenses
// @Produce json
// @Param userId query string false "owner id, required when unauthenticated"
// @Param category query string false "category filter"
// @Param startDate query string false "inclusive lower date bound"
// @Param endDate query string false "inclusive upper date bound"
// @Success 200 {object} ListExpensesResponse
// @Failure 400 {object} apperr.Error
// @Router /expenses [get]
func (ctrl *ExpenseController) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		userID = c.Query("userId")
	}

	expenses, err := ctrl.expenseService.List(c.Request.Context(), repository.ExpenseFilter{
		UserID:    userID,
		Category:  c.Query("category"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, ListExpensesResponse{
		Expenses: expenses,
		Total:    len(expenses),
	})
}

// Summary aggregates a user's expenses over an optional date window.
// @Summary Expense summary
// @Description Returns the total, per-category breakdown and echoed timeframe
// @Tags Expenses
// @Produce json
// @Param userId path string true "owner id"
// @Param startDate query string false "inclusive lower date bound"
// @Param endDate query string false "inclusive upper date bound"
// @Success 200 {object} model.ExpenseSummary
// @Failure 400 {object} apperr.Error
// @Router /expenses/summary/{userId} [get]
func (ctrl *ExpenseController) Summary(c *gin.Context) {
	summary, err := ctrl.expenseService.Summary(c.Request.Context(),
		c.Param("userId"), c.Query("startDate"), c.Query("endDate"))
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Delete removes one expense by id.
// @Summary Delete an expense
// @Description Authenticated callers must own the expense
// @Tags Expenses
// @Produce json
// @Param expenseId path string true "expense id"
// @Success 200 {object} map[string]string
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /expenses/{expenseId} [delete]
func (ctrl *ExpenseController) Delete(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)
	expenseID := c.Param("expenseId")

	if err := ctrl.expenseService.Delete(c.Request.Context(), callerID, expenseID); err != nil {
		response.Err(c, err)
		return
	}

	slog.Info("expense deleted", "expenseID", expenseID)
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}
