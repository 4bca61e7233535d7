package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	MessageRoleUser      MessageRole = "user"
	MessageRoleAssistant MessageRole = "assistant"
)

// ConversationMessage stores chat history for agent context.
type ConversationMessage struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	CustomerID uuid.UUID   `db:"customer_id" json:"customer_id"`
	Role       MessageRole `db:"role" json:"role"`
	Content    string      `db:"content" json:"content"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
}

type AddMessageRequest struct {
	Role    string `json:"role" binding:"required" validate:"required,oneof=user assistant"`
	Content string `json:"content" binding:"required" validate:"required"`
}
