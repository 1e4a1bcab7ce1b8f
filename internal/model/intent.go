package model

// Intent is the six-way classification a chat message resolves to.
type Intent string

const (
	IntentGreeting      Intent = "greeting"
	IntentExpenseLog    Intent = "expense_log"
	IntentExpenseQuery  Intent = "expense_query"
	IntentSavingsAdvice Intent = "savings_advice"
	IntentBudgetHelp    Intent = "budget_help"
	IntentUnknown       Intent = "unknown"
)

// ParseIntent maps free text onto the enumeration, falling back to unknown.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case IntentGreeting, IntentExpenseLog, IntentExpenseQuery,
		IntentSavingsAdvice, IntentBudgetHelp, IntentUnknown:
		return Intent(s)
	}
	return IntentUnknown
}

// IntentResult is ephemeral: the model's classification plus whatever
// entities it pulled out of the message. Never persisted.
type IntentResult struct {
	Intent     Intent         `json:"intent"`
	Confidence float64        `json:"confidence"`
	Entities   map[string]any `json:"entities"`
}
