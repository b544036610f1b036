package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripmate/internal/models/db_models"
	mem "tripmate/pkg/memcache"
)

type fakeMessageRepo struct {
	inserted  []db_models.ChatMessage
	insertErr error
}

func (f *fakeMessageRepo) ListByAccount(ctx context.Context, accountID string) ([]db_models.ChatMessage, error) {
	return f.inserted, nil
}

func (f *fakeMessageRepo) Insert(ctx context.Context, message *db_models.ChatMessage) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	f.inserted = append(f.inserted, *message)
	return nil
}

func newTestChatService(repo *fakeMessageRepo) ChatServiceInterface {
	bot := NewChatbotService(newTestPlanner(nil, nil, nil, nil, nil))
	return NewChatService(bot, mem.NewChatSessions(), repo)
}

func TestHandleMessageAssignsSessionID(t *testing.T) {
	svc := newTestChatService(&fakeMessageRepo{})

	resp, err := svc.HandleMessage(context.Background(), "", "", "hi")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "text", resp.Type)
	assert.Contains(t, resp.Message, "Would you like to plan a trip?")
}

func TestHandleMessageContinuesConversationAcrossTurns(t *testing.T) {
	svc := newTestChatService(&fakeMessageRepo{})
	ctx := context.Background()

	first, err := svc.HandleMessage(ctx, "", "", "hi")
	require.NoError(t, err)
	sessionID := first.SessionID

	second, err := svc.HandleMessage(ctx, sessionID, "", "yes")
	require.NoError(t, err)
	assert.Equal(t, sessionID, second.SessionID)
	assert.Contains(t, second.Message, "budget")

	third, err := svc.HandleMessage(ctx, sessionID, "", "low")
	require.NoError(t, err)
	assert.Contains(t, third.Message, "Which destination")
}

func TestHandleMessagePersistsForLoggedInUsers(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := newTestChatService(repo)

	accountID := "7f9c74f5-3f8e-4be3-9e41-6b0c2dfab001"
	resp, err := svc.HandleMessage(context.Background(), "", accountID, "hi")
	require.NoError(t, err)

	require.Len(t, repo.inserted, 1)
	assert.Equal(t, "hi", repo.inserted[0].Message)
	assert.Equal(t, resp.Message, repo.inserted[0].Response)
	assert.Equal(t, resp.SessionID, repo.inserted[0].SessionID)
}

func TestHandleMessageSkipsPersistenceForAnonymous(t *testing.T) {
	repo := &fakeMessageRepo{}
	svc := newTestChatService(repo)

	_, err := svc.HandleMessage(context.Background(), "", "", "hi")
	require.NoError(t, err)
	assert.Empty(t, repo.inserted)
}

func TestHandleMessageStorageFailureDoesNotFailTurn(t *testing.T) {
	repo := &fakeMessageRepo{insertErr: assertErr("db down")}
	svc := newTestChatService(repo)

	resp, err := svc.HandleMessage(context.Background(), "", "7f9c74f5-3f8e-4be3-9e41-6b0c2dfab001", "hi")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
}
