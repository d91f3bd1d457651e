package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/model"
	"github.com/Harshithaboinepally/AIRBNB-PROTOTYPE/internal/service"

	"github.com/gin-gonic/gin"
)

// ChatHandler handles chat HTTP requests
type ChatHandler struct {
	chatService *service.ChatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService *service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
	}
}

// Chat handles POST /api/v1/chat
func (h *ChatHandler) Chat(c *gin.Context) {
	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.chatService.HandleChat(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAIUnavailable):
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI service unavailable. Please ensure Ollama is running."})
		case errors.Is(err, service.ErrAITimeout):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "Request took too long. Try a shorter message."})
		default:
			log.Printf("chat request failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred: " + err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
