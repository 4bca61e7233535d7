package conversation

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trimshop/booking-api/internal/model"
)

type fakeConversationRepo struct {
	messages  []*model.ConversationMessage
	lastLimit int
}

func (r *fakeConversationRepo) Create(ctx context.Context, m *model.ConversationMessage) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	r.messages = append(r.messages, m)
	return nil
}

func (r *fakeConversationRepo) ListRecent(ctx context.Context, customerID uuid.UUID, limit int) ([]*model.ConversationMessage, error) {
	r.lastLimit = limit
	var out []*model.ConversationMessage
	for _, m := range r.messages {
		if m.CustomerID == customerID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func TestAddMessage(t *testing.T) {
	repo := &fakeConversationRepo{}
	svc := NewService(repo)
	customerID := uuid.New()

	msg, err := svc.AddMessage(context.Background(), customerID, model.MessageRoleUser, "quero cortar o cabelo")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, msg.ID)
	assert.Equal(t, customerID, msg.CustomerID)
	assert.Equal(t, model.MessageRoleUser, msg.Role)
}

func TestRecentMessages_DefaultLimit(t *testing.T) {
	repo := &fakeConversationRepo{}
	svc := NewService(repo)

	_, err := svc.RecentMessages(context.Background(), uuid.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
}

func TestRecentMessages_ChronologicalWindow(t *testing.T) {
	repo := &fakeConversationRepo{}
	svc := NewService(repo)
	customerID := uuid.New()

	contents := []string{"oi", "quero agendar", "amanha de manha", "pode ser 10h"}
	for i, c := range contents {
		role := model.MessageRoleUser
		if i%2 == 1 {
			role = model.MessageRoleAssistant
		}
		_, err := svc.AddMessage(context.Background(), customerID, role, c)
		require.NoError(t, err)
	}

	msgs, err := svc.RecentMessages(context.Background(), customerID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "amanha de manha", msgs[0].Content)
	assert.Equal(t, "pode ser 10h", msgs[1].Content)
}
