package models

import "time"

type ChatMessagePayload struct {
	Role      string    `json:"role" binding:"required,oneof=user assistant system"`
	Content   string    `json:"content" binding:"required"`
	Timestamp time.Time `json:"timestamp"`
}

type CreateChatRequest struct {
	CustomerID string               `json:"customerId" binding:"required"`
	Messages   []ChatMessagePayload `json:"messages"`
}

type AppendChatMessagesRequest struct {
	SessionID string               `json:"sessionId" binding:"required"`
	Messages  []ChatMessagePayload `json:"messages" binding:"required,min=1,dive"`
}

type UpdateChatSummaryRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	Summary   string `json:"summary" binding:"required"`
}

type CreateChatResponse struct {
	SessionID string `json:"sessionId"`
}
