package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"tripmate/internal/models/db_models"
	"tripmate/internal/models/response_models"
	"tripmate/internal/repositories"
	mem "tripmate/pkg/memcache"
)

const sessionTTL = 30 * time.Minute

type ChatServiceInterface interface {
	HandleMessage(ctx context.Context, sessionID, accountID, message string) (*response_models.ChatResponse, error)
	History(ctx context.Context, accountID string) ([]db_models.ChatMessage, error)
}

type ChatService struct {
	bot      ChatbotServiceInterface
	sessions mem.ChatSessionStore
	messages repositories.ChatMessageRepository
}

func NewChatService(
	bot ChatbotServiceInterface,
	sessions mem.ChatSessionStore,
	messages repositories.ChatMessageRepository,
) ChatServiceInterface {
	return &ChatService{
		bot:      bot,
		sessions: sessions,
		messages: messages,
	}
}

// HandleMessage runs one conversation turn. An empty session id starts
// a new dialogue; a corrupt stored session falls back to a fresh one
// rather than failing the turn.
func (s *ChatService) HandleMessage(ctx context.Context, sessionID, accountID, message string) (*response_models.ChatResponse, error) {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	session := NewChatSession()
	if raw, ok := s.sessions.Load(sessionID); ok {
		if err := json.Unmarshal(raw, session); err != nil {
			log.Printf("Error decoding session %s, starting fresh: %v", sessionID, err)
			session = NewChatSession()
		}
	}

	reply := s.bot.HandleTurn(ctx, session, message)

	raw, err := json.Marshal(session)
	if err != nil {
		log.Printf("Error encoding session %s: %v", sessionID, err)
	} else {
		s.sessions.Save(sessionID, raw, sessionTTL)
	}

	s.persist(ctx, sessionID, accountID, message, reply)

	return &response_models.ChatResponse{
		Message:   reply,
		Type:      "text",
		SessionID: sessionID,
	}, nil
}

// persist records the exchange for logged-in users; anonymous turns and
// storage failures never affect the reply.
func (s *ChatService) persist(ctx context.Context, sessionID, accountID, message, reply string) {
	if accountID == "" {
		return
	}
	accountUUID, err := uuid.Parse(accountID)
	if err != nil {
		log.Printf("Error parsing account id %s: %v", accountID, err)
		return
	}
	record := &db_models.ChatMessage{
		AccountID: accountUUID,
		SessionID: sessionID,
		Message:   message,
		Response:  reply,
	}
	if err := s.messages.Insert(ctx, record); err != nil {
		log.Printf("Error saving chat message for account %s: %v", accountID, err)
	}
}

func (s *ChatService) History(ctx context.Context, accountID string) ([]db_models.ChatMessage, error) {
	return s.messages.ListByAccount(ctx, accountID)
}
