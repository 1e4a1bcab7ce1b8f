package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/leon37/SavingsCoach/internal/config"
	"github.com/leon37/SavingsCoach/internal/infrastructure/llm"
	"github.com/leon37/SavingsCoach/internal/model"
)

// Manual smoke check for the AI gateway: runs a few representative turns
// against the configured model and prints what came back.
func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if conf.AI.APIKey == "" {
		log.Fatal("ai.api_key is not set")
	}

	client := llm.NewClient(conf.AI.APIKey, conf.AI.BaseURL, conf.AI.ChatModel, conf.AI.InsightsModel)
	ctx := context.Background()

	testCases := []struct {
		Name    string
		Message string
	}{
		{"greeting", "hey there!"},
		{"expense log", "I spent 500 on groceries today"},
		{"expense query", "how much did I spend this week?"},
		{"savings advice", "how can I save more each month?"},
	}

	for _, tc := range testCases {
		fmt.Printf("\n-------- %s --------\n", tc.Name)
		fmt.Printf("message: %s\n", tc.Message)

		start := time.Now()
		intent := client.DetectIntent(ctx, tc.Message)
		fmt.Printf("intent: %s (confidence %.2f, %v)\n", intent.Intent, intent.Confidence, time.Since(start))

		reply := client.GenerateResponse(ctx, llm.GenerateInput{
			Message: tc.Message,
			Intent:  intent.Intent,
			Context: map[string]any{},
			UserID:  "smoke-test",
		})
		fmt.Printf("reply: %s\n", reply.Response)
		if reply.Action != "" {
			fmt.Printf("action: %s\n", reply.Action)
		}
	}

	fmt.Printf("\n-------- insights --------\n")
	insights := client.GenerateInsights(ctx, llm.InsightsInput{
		Expenses: []model.Expense{
			{Category: "groceries", Amount: 1200, Date: "2026-08-01"},
			{Category: "transport", Amount: 400, Date: "2026-08-03"},
			{Category: "groceries", Amount: 800, Date: "2026-08-10"},
		},
		TotalSpent: 2400,
		Timeframe:  "last 30 days",
	})
	for _, line := range insights.Insights {
		fmt.Printf("insight: %s\n", line)
	}
	for _, line := range insights.Recommendations {
		fmt.Printf("recommendation: %s\n", line)
	}
}
