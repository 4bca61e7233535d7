package conversation

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/trimshop/booking-api/internal/model"
	"github.com/trimshop/booking-api/internal/repository"
)

const defaultHistoryLimit = 10

// Service stores and replays chat history so the booking agent can keep
// conversational context per customer.
type Service struct {
	repo repository.ConversationRepository
}

func NewService(repo repository.ConversationRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) AddMessage(ctx context.Context, customerID uuid.UUID, role model.MessageRole, content string) (*model.ConversationMessage, error) {
	msg := &model.ConversationMessage{
		CustomerID: customerID,
		Role:       role,
		Content:    content,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	return msg, nil
}

// RecentMessages returns the latest messages in chronological order.
func (s *Service) RecentMessages(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ConversationMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	return s.repo.ListRecent(ctx, customerID, limit)
}
