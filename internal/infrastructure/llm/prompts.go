package llm

import (
	"fmt"

	"github.com/leon37/SavingsCoach/internal/model"
)

const intentPromptTemplate = `Analyze the following user message and determine the intent. Classify it into one of these categories:
- greeting: User is greeting or starting a conversation
- expense_log: User wants to record/log an expense (e.g., "I spent KSH 500 on groceries")
- expense_query: User is asking about their expenses (e.g., "How much did I spend last week?")
- savings_advice: User is asking for financial advice or savings tips
- budget_help: User is asking for help with budgeting
- unknown: The intent is unclear

User message: %q

Extract any relevant entities like amounts, categories, dates, etc.

Respond in JSON format with: intent, confidence (0-1), and entities (if any).
Example: {"intent": "expense_log", "confidence": 0.95, "entities": {"amount": 50, "category": "groceries"}}`

func intentPrompt(message string) string {
	return fmt.Sprintf(intentPromptTemplate, message)
}

// systemPromptFor selects the assistant persona for a classified intent.
func systemPromptFor(intent model.Intent) string {
	switch intent {
	case model.IntentGreeting:
		return "You are a friendly personal savings coach. Greet the user warmly and ask how you can help them with their finances today."
	case model.IntentExpenseLog:
		return "You are a personal savings coach. The user wants to log an expense. Extract the amount, category, and description from their message. Confirm the details and provide encouragement."
	case model.IntentExpenseQuery:
		return "You are a personal savings coach. The user is asking about their expenses. Use the context provided to answer their question. If context is missing, ask for clarification."
	case model.IntentSavingsAdvice:
		return "You are an expert financial advisor focused on savings. Provide practical, actionable advice based on the user's situation. Be encouraging and specific."
	case model.IntentBudgetHelp:
		return "You are a budgeting expert. Help the user create or manage their budget. Provide the 50/30/20 rule as a starting point if they're new to budgeting."
	default:
		return "You are a helpful personal savings coach. The user's intent is unclear. Ask clarifying questions to better understand how you can help."
	}
}

const insightsPromptTemplate = `As a financial advisor, analyze the following expense data and provide insights:

Timeframe: %s
Total Spent: KSH %.2f
Number of Expenses: %d

Expenses by Category:
%s

Please provide:
1. 3-5 key insights about spending patterns
2. 3-5 actionable recommendations for saving money
3. Top spending categories with percentages

Respond in JSON format with this structure:
{
  "insights": ["insight 1", "insight 2", ...],
  "recommendations": ["recommendation 1", "recommendation 2", ...],
  "topCategories": [
    {"category": "name", "amount": 100, "percentage": 25},
    ...
  ]
}`

// apologyReply is returned whenever response generation fails upstream.
const apologyReply = "I'm sorry, I'm having trouble processing your request right now. Please try again."

func insightsErrorFallback() model.FinancialInsights {
	return model.FinancialInsights{
		Insights:        []string{"Unable to generate insights. Please check your expenses and try again."},
		Recommendations: []string{"Consider reviewing your spending patterns manually."},
		TopCategories:   []model.TopCategory{},
	}
}

func insightsParseFallback() model.FinancialInsights {
	return model.FinancialInsights{
		Insights:        []string{"Unable to generate insights at this time."},
		Recommendations: []string{"Please try again later."},
		TopCategories:   []model.TopCategory{},
	}
}
