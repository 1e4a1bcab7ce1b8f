package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/leon37/SavingsCoach/internal/apperr"
	"github.com/leon37/SavingsCoach/internal/infrastructure/llm"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/repository"
)

// AnonymousUser stands in when a turn arrives with no token and no userId.
const AnonymousUser = "anonymous"

// recentExpenseContext caps how many expenses feed an expense-query turn.
const recentExpenseContext = 20

type ChatService struct {
	ai            llm.Provider
	conversations repository.ConversationRepo
	expenses      repository.ExpenseRepo
}

func NewChatService(ai llm.Provider, conversations repository.ConversationRepo, expenses repository.ExpenseRepo) *ChatService {
	return &ChatService{
		ai:            ai,
		conversations: conversations,
		expenses:      expenses,
	}
}

// ChatResult is one completed turn.
type ChatResult struct {
	Response       string
	Intent         model.Intent
	ConversationID string
	Action         string
	Data           map[string]any
}

// HandleMessage runs one chat turn: classify, assemble context, generate,
// append to the transcript (creating it on the first turn). Appends are
// read-then-write; concurrent turns on one conversation are last-write-wins.
func (s *ChatService) HandleMessage(ctx context.Context, userID, message, conversationID string) (*ChatResult, error) {
	if message == "" {
		return nil, apperr.BadRequest("Message is required")
	}
	if userID == "" {
		userID = AnonymousUser
	}

	intentResult := s.ai.DetectIntent(ctx, message)
	slog.Info("chat intent detected",
		"userID", userID,
		"intent", intentResult.Intent,
		"confidence", intentResult.Confidence)

	chatContext := map[string]any{}
	var conversation *model.Conversation

	if conversationID != "" {
		existing, err := s.conversations.GetByID(ctx, conversationID)
		switch {
		case err == nil && existing.UserID == userID:
			conversation = existing
			chatContext["previousMessages"] = lastMessages(existing.Messages, 5)
			chatContext["userId"] = existing.UserID
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return nil, err
		}
	}

	if intentResult.Intent == model.IntentExpenseQuery && userID != AnonymousUser {
		recent, err := s.expenses.List(ctx, repository.ExpenseFilter{
			UserID: userID,
			Limit:  recentExpenseContext,
		})
		if err != nil {
			return nil, err
		}
		chatContext["recentExpenses"] = recent
	}

	reply := s.ai.GenerateResponse(ctx, llm.GenerateInput{
		Message: message,
		Intent:  intentResult.Intent,
		Context: chatContext,
		UserID:  userID,
	})

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339)
	userMessage := model.Message{Role: model.RoleUser, Content: message, Timestamp: timestamp}
	assistantMessage := model.Message{Role: model.RoleAssistant, Content: reply.Response, Timestamp: timestamp}

	if conversation != nil {
		conversation.Messages = append(conversation.Messages, userMessage, assistantMessage)
		conversation.LastUpdated = now
		conversation.Intent = string(intentResult.Intent)
		if err := s.conversations.Update(ctx, conversation); err != nil {
			return nil, err
		}
	} else {
		id, err := uuid.NewV7()
		if err != nil {
			return nil, err
		}
		conversation = &model.Conversation{
			ID:          id.String(),
			UserID:      userID,
			Messages:    []model.Message{userMessage, assistantMessage},
			LastUpdated: now,
			Intent:      string(intentResult.Intent),
		}
		if err := s.conversations.Create(ctx, conversation); err != nil {
			return nil, err
		}
	}

	return &ChatResult{
		Response:       reply.Response,
		Intent:         intentResult.Intent,
		ConversationID: conversation.ID,
		Action:         reply.Action,
		Data:           reply.Data,
	}, nil
}

// GetConversation fetches a transcript; authenticated callers must own it.
func (s *ChatService) GetConversation(ctx context.Context, callerID, conversationID string) (*model.Conversation, error) {
	if conversationID == "" {
		return nil, apperr.BadRequest("Conversation ID is required")
	}

	conversation, err := s.conversations.GetByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NotFound("Conversation not found")
		}
		return nil, err
	}
	if callerID != "" && conversation.UserID != callerID {
		return nil, apperr.Forbidden("Unauthorized to access this conversation")
	}
	return conversation, nil
}

func lastMessages(messages []model.Message, n int) []model.Message {
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
