package handlers

import (
	"net/http"

	"supportapi/internal/pkg/models"
	"supportapi/internal/service/chats"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	service *chats.ChatService
}

func NewChatHandler(service *chats.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) CreateChat(c *gin.Context) {
	var body models.CreateChatRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	resp, err := h.service.CreateChat(c.Request.Context(), body)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ChatHandler) GetChat(c *gin.Context) {
	sessionID := c.Param("SessionId")

	chat, err := h.service.GetChat(c.Request.Context(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, chat)
}

func (h *ChatHandler) GetChatsByCustomer(c *gin.Context) {
	customerID := c.Param("CustomerId")

	result, err := h.service.GetChatsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"chats": result})
}

func (h *ChatHandler) AppendMessages(c *gin.Context) {
	var body models.AppendChatMessagesRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.service.AppendMessages(c.Request.Context(), body); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": body.SessionID})
}

func (h *ChatHandler) UpdateSummary(c *gin.Context) {
	var body models.UpdateChatSummaryRequest

	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, err)
		return
	}

	if err := h.service.UpdateSummary(c.Request.Context(), body); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"sessionId": body.SessionID})
}
