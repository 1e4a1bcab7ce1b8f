// Package llm wraps the generative-model API behind a Provider with a
// degrade-gracefully contract: no method ever returns an error, failures
// collapse into fixed fallback payloads so the chat pipeline keeps moving.
package llm

import (
	"context"

	"github.com/leon37/SavingsCoach/internal/model"
)

// GenerateInput carries one chat turn plus whatever context the caller
// assembled (previous messages, recent expenses).
type GenerateInput struct {
	Message string
	Intent  model.Intent
	Context map[string]any
	UserID  string
}

// ChatReply is the assistant's side of a turn. Action is "log_expense" when
// the intent was an expense log; Data echoes the context back to the client.
type ChatReply struct {
	Response string
	Action   string
	Data     map[string]any
}

// InsightsInput is the expense set handed to the model for analysis.
type InsightsInput struct {
	Expenses   []model.Expense
	TotalSpent float64
	Timeframe  string
}

type Provider interface {
	DetectIntent(ctx context.Context, message string) model.IntentResult
	GenerateResponse(ctx context.Context, input GenerateInput) ChatReply
	GenerateInsights(ctx context.Context, input InsightsInput) model.FinancialInsights
}
