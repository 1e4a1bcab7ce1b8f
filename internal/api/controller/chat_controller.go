package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/leon37/SavingsCoach/internal/api/middleware"
	"github.com/leon37/SavingsCoach/internal/api/response"
	"github.com/leon37/SavingsCoach/internal/model"
	"github.com/leon37/SavingsCoach/internal/service"
)

// ChatController fronts the conversational surface.
type ChatController struct {
	chatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// ==========================================
// DTOs
// ==========================================

type ChatRequest struct {
	Message        string `json:"message"`
	UserID         string `json:"userId"`
	ConversationID string `json:"conversationId"`
}

type ChatResponse struct {
	Response       string         `json:"response"`
	Intent         model.Intent   `json:"intent"`
	ConversationID string         `json:"conversationId"`
	Action         string         `json:"action,omitempty"`
	Data           map[string]any `json:"data,omitempty"`
}

// ==========================================
// Handlers
// ==========================================

// Send runs one chat turn.
// @Summary Send a chat message
// @Description Classifies the message, generates a coach reply and appends both to the conversation
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body ChatRequest true "chat turn"
// @Success 200 {object} ChatResponse
// @Failure 400 {object} apperr.Error
// @Router /chat [post]
func (ctrl *ChatController) Send(c *gin.Context) {
	var req ChatRequest

	// 1. Parse body
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	// 2. Resolve the speaker: token identity wins over the body field.
	userID := c.GetString(middleware.ContextUserID)
	if userID == "" {
		userID = req.UserID
	}

	// 3. Business logic
	result, err := ctrl.chatService.HandleMessage(c.Request.Context(), userID, req.Message, req.ConversationID)
	if err != nil {
		response.Err(c, err)
		return
	}

	// 4. Success
	c.JSON(http.StatusOK, ChatResponse{
		Response:       result.Response,
		Intent:         result.Intent,
		ConversationID: result.ConversationID,
		Action:         result.Action,
		Data:           result.Data,
	})
}

// GetConversation returns a full transcript.
// @Summary Fetch a conversation
// @Description Returns the transcript; authenticated callers must own it
// @Tags Chat
// @Produce json
// @Param conversationId path string true "conversation id"
// @Success 200 {object} model.Conversation
// @Failure 403 {object} apperr.Error
// @Failure 404 {object} apperr.Error
// @Router /chat/{conversationId} [get]
func (ctrl *ChatController) GetConversation(c *gin.Context) {
	callerID := c.GetString(middleware.ContextUserID)
	conversationID := c.Param("conversationId")

	conversation, err := ctrl.chatService.GetConversation(c.Request.Context(), callerID, conversationID)
	if err != nil {
		response.Err(c, err)
		return
	}

	c.JSON(http.StatusOK, conversation)
}
