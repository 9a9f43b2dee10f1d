package handlers

import (
	"errors"
	"net/http"

	chatRepo "furaha/database/repository/chat"
	ai "furaha/services/intelligence"
	"furaha/utils"

	"github.com/gin-gonic/gin"
)

// chatSessionListLimit caps the admin session listing.
const chatSessionListLimit = 50

// ChatHandler exposes the chat-widget endpoints.
type ChatHandler struct {
	AI   ai.AIService
	Repo chatRepo.ChatRepository
}

func NewChatHandler(aiSvc ai.AIService, repo chatRepo.ChatRepository) *ChatHandler {
	return &ChatHandler{AI: aiSvc, Repo: repo}
}

// SendChatMessageHandler forwards a visitor message to the assistant.
func (h *ChatHandler) SendChatMessageHandler(c *gin.Context) {
	var input struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	result, err := h.AI.Chat(c.Request.Context(), input.SessionID, input.Message)
	switch {
	case errors.Is(err, ai.ErrEmptyMessage):
		utils.RespondError(c, http.StatusBadRequest, "Message is required", nil)
		return
	case errors.Is(err, ai.ErrMessageTooLong):
		utils.RespondError(c, http.StatusBadRequest, "Message is too long. Please keep it under 1000 characters.", nil)
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, "Failed to process your message. Please try again.", err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, result, "")
}

// ListChatSessionsHandler returns per-session summaries for the admin view.
func (h *ChatHandler) ListChatSessionsHandler(c *gin.Context) {
	sessions, err := h.Repo.SessionSummaries(c.Request.Context(), chatSessionListLimit)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching chat sessions", err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, sessions, "")
}

// GetChatSessionHandler returns a full session transcript.
func (h *ChatHandler) GetChatSessionHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")
	messages, err := h.Repo.GetSession(c.Request.Context(), sessionID)
	if errors.Is(err, chatRepo.ErrSessionNotFound) {
		utils.RespondError(c, http.StatusNotFound, "Chat session not found", nil)
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, "Error fetching chat session", err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"sessionId": sessionID,
		"messages":  messages,
	}, "")
}
