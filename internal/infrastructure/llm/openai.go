package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/leon37/SavingsCoach/internal/model"
)

// Client talks to any OpenAI-compatible chat-completions endpoint; base URL
// and model names come from config so hosted Gemini/DeepSeek gateways work
// unchanged.
type Client struct {
	chatModel     string
	insightsModel string
	client        *openai.Client
}

func NewClient(apiKey, baseURL, chatModel, insightsModel string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Client{
		chatModel:     chatModel,
		insightsModel: insightsModel,
		client:        openai.NewClientWithConfig(cfg),
	}
}

func (c *Client) complete(ctx context.Context, modelName string, messages []openai.ChatCompletionMessage) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    modelName,
		Messages: messages,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty completion")
	}
	return resp.Choices[0].Message.Content, nil
}

// extractJSON pulls the first-to-last brace span out of a model reply, which
// tolerates markdown fences and prose around the object.
func extractJSON(s string) (string, bool) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return s[start : end+1], true
}

// DetectIntent classifies a message. Model failure degrades to unknown at
// confidence 0.3, an unparseable reply to unknown at 0.5; it never errors.
func (c *Client) DetectIntent(ctx context.Context, message string) model.IntentResult {
	text, err := c.complete(ctx, c.chatModel, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: intentPrompt(message)},
	})
	if err != nil {
		slog.Warn("intent detection failed", "err", err)
		return model.IntentResult{Intent: model.IntentUnknown, Confidence: 0.3, Entities: map[string]any{}}
	}

	fallback := model.IntentResult{Intent: model.IntentUnknown, Confidence: 0.5, Entities: map[string]any{}}
	raw, ok := extractJSON(text)
	if !ok {
		return fallback
	}

	var parsed struct {
		Intent     string         `json:"intent"`
		Confidence float64        `json:"confidence"`
		Entities   map[string]any `json:"entities"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		slog.Warn("intent reply not parseable", "err", err)
		return fallback
	}

	result := model.IntentResult{
		Intent:     model.ParseIntent(parsed.Intent),
		Confidence: parsed.Confidence,
		Entities:   parsed.Entities,
	}
	if result.Confidence == 0 {
		result.Confidence = 0.5
	}
	if result.Entities == nil {
		result.Entities = map[string]any{}
	}
	return result
}

// GenerateResponse produces the assistant's reply for a classified turn.
// Upstream failure degrades to a static apology; it never errors.
func (c *Client) GenerateResponse(ctx context.Context, input GenerateInput) ChatReply {
	userContent := input.Message
	if len(input.Context) > 0 {
		if raw, err := json.MarshalIndent(input.Context, "", "  "); err == nil {
			userContent = fmt.Sprintf("%s\n\nContext: %s", input.Message, raw)
		}
	}

	text, err := c.complete(ctx, c.chatModel, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: systemPromptFor(input.Intent)},
		{Role: openai.ChatMessageRoleUser, Content: userContent},
	})
	if err != nil {
		slog.Warn("response generation failed", "intent", input.Intent, "err", err)
		return ChatReply{Response: apologyReply}
	}

	reply := ChatReply{Response: text, Data: input.Context}
	if input.Intent == model.IntentExpenseLog {
		reply.Action = "log_expense"
	}
	return reply
}

// GenerateInsights asks the model for the insight bundle. The two failure
// modes keep their distinct static fallbacks; it never errors.
func (c *Client) GenerateInsights(ctx context.Context, input InsightsInput) model.FinancialInsights {
	type expenseView struct {
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description,omitempty"`
		Date        string  `json:"date"`
	}
	views := make([]expenseView, 0, len(input.Expenses))
	for _, e := range input.Expenses {
		views = append(views, expenseView{
			Amount:      e.Amount,
			Category:    e.Category,
			Description: e.Description,
			Date:        e.Date,
		})
	}
	serialized, _ := json.MarshalIndent(views, "", "  ")

	prompt := fmt.Sprintf(insightsPromptTemplate,
		input.Timeframe, input.TotalSpent, len(input.Expenses), serialized)

	text, err := c.complete(ctx, c.insightsModel, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleUser, Content: prompt},
	})
	if err != nil {
		slog.Warn("insight generation failed", "err", err)
		return insightsErrorFallback()
	}

	raw, ok := extractJSON(text)
	if !ok {
		return insightsParseFallback()
	}
	var insights model.FinancialInsights
	if err := json.Unmarshal([]byte(raw), &insights); err != nil {
		slog.Warn("insight reply not parseable", "err", err)
		return insightsParseFallback()
	}

	if insights.Insights == nil {
		insights.Insights = []string{}
	}
	if insights.Recommendations == nil {
		insights.Recommendations = []string{}
	}
	if insights.TopCategories == nil {
		insights.TopCategories = []model.TopCategory{}
	}
	return insights
}
