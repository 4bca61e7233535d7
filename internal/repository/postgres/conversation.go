package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/model"
)

func (r *conversationRepository) Create(ctx context.Context, msg *model.ConversationMessage) error {
	query := `
		INSERT INTO conversations (
			id, customer_id, role, content, created_at
		) VALUES ($1, $2, $3, $4, $5)
	`
	msg.ID = uuid.New()
	msg.CreatedAt = time.Now()

	_, err := r.db.ExecContext(ctx, query,
		msg.ID,
		msg.CustomerID,
		msg.Role,
		msg.Content,
		msg.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create conversation message: %w", err)
	}
	return nil
}

func (r *conversationRepository) ListRecent(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ConversationMessage, error) {
	query := `
		SELECT id, customer_id, role, content, created_at
		FROM conversations
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var messages []*model.ConversationMessage
	err := r.db.SelectContext(ctx, &messages, query, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation messages: %w", err)
	}

	// Reverse into chronological order for the caller.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
