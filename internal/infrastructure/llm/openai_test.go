package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leon37/SavingsCoach/internal/model"
)

// newTestClient points the gateway at a stub chat-completions endpoint.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-key", srv.URL+"/v1", "chat-model", "insights-model")
}

func completionWith(content string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
		})
	}
}

func failing() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}
}

func TestExtractJSON(t *testing.T) {
	raw, ok := extractJSON("```json\n{\"a\":1}\n```")
	require.True(t, ok)
	assert.Equal(t, `{"a":1}`, raw)

	_, ok = extractJSON("no braces here")
	assert.False(t, ok)
}

func TestDetectIntentParsesModelReply(t *testing.T) {
	c := newTestClient(t, completionWith(`Sure! {"intent":"expense_log","confidence":0.95,"entities":{"amount":50,"category":"groceries"}}`))

	result := c.DetectIntent(context.Background(), "I spent 50 on groceries")
	assert.Equal(t, model.IntentExpenseLog, result.Intent)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, "groceries", result.Entities["category"])
}

func TestDetectIntentModelErrorSoftFails(t *testing.T) {
	c := newTestClient(t, failing())

	result := c.DetectIntent(context.Background(), "anything")
	assert.Equal(t, model.IntentResult{
		Intent:     model.IntentUnknown,
		Confidence: 0.3,
		Entities:   map[string]any{},
	}, result)
}

func TestDetectIntentUnparseableReply(t *testing.T) {
	c := newTestClient(t, completionWith("I cannot answer in JSON, sorry."))

	result := c.DetectIntent(context.Background(), "hello")
	assert.Equal(t, model.IntentUnknown, result.Intent)
	assert.Equal(t, 0.5, result.Confidence)
	assert.NotNil(t, result.Entities)
}

func TestDetectIntentUnknownLabel(t *testing.T) {
	c := newTestClient(t, completionWith(`{"intent":"order_pizza","confidence":0.9}`))

	result := c.DetectIntent(context.Background(), "pizza please")
	assert.Equal(t, model.IntentUnknown, result.Intent)
	assert.Equal(t, 0.9, result.Confidence)
}

func TestGenerateResponse(t *testing.T) {
	c := newTestClient(t, completionWith("Logged it, nice work!"))

	reply := c.GenerateResponse(context.Background(), GenerateInput{
		Message: "I spent 50 on groceries",
		Intent:  model.IntentExpenseLog,
		Context: map[string]any{"userId": "u1"},
	})
	assert.Equal(t, "Logged it, nice work!", reply.Response)
	assert.Equal(t, "log_expense", reply.Action)
	assert.Equal(t, "u1", reply.Data["userId"])
}

func TestGenerateResponseSoftFails(t *testing.T) {
	c := newTestClient(t, failing())

	reply := c.GenerateResponse(context.Background(), GenerateInput{
		Message: "hello",
		Intent:  model.IntentGreeting,
	})
	assert.Equal(t, apologyReply, reply.Response)
	assert.Empty(t, reply.Action)
}

func TestGenerateInsights(t *testing.T) {
	c := newTestClient(t, completionWith(`{"insights":["i1"],"recommendations":["r1"],"topCategories":[{"category":"food","amount":100,"percentage":50}]}`))

	insights := c.GenerateInsights(context.Background(), InsightsInput{
		Expenses:   []model.Expense{{Amount: 100, Category: "food", Date: "2024-01-01"}},
		TotalSpent: 100,
		Timeframe:  "last 30 days",
	})
	require.Len(t, insights.TopCategories, 1)
	assert.Equal(t, "food", insights.TopCategories[0].Category)
	assert.Equal(t, []string{"i1"}, insights.Insights)
}

func TestGenerateInsightsFallbacks(t *testing.T) {
	errored := newTestClient(t, failing())
	got := errored.GenerateInsights(context.Background(), InsightsInput{Timeframe: "x"})
	assert.Equal(t, insightsErrorFallback(), got)

	unparseable := newTestClient(t, completionWith("plain prose, no json"))
	got = unparseable.GenerateInsights(context.Background(), InsightsInput{Timeframe: "x"})
	assert.Equal(t, insightsParseFallback(), got)
}
