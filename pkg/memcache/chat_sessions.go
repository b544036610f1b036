package mem

import (
	"sync"
	"time"
)

// ChatSessionStore keeps the serialized conversation state between
// turns, keyed by session id. Reads happen at turn start, writes at
// turn end; concurrent turns for the same session race last-write-wins.
type ChatSessionStore interface {
	Load(sessionID string) ([]byte, bool)

	Save(sessionID string, state []byte, ttl time.Duration)

	// Delete removes a session outright (used when a dialogue is abandoned).
	Delete(sessionID string)
}

type sessionEntry struct {
	state     []byte
	expiresAt time.Time
}

type ChatSessions struct {
	mu   sync.RWMutex
	data map[string]sessionEntry
}

func NewChatSessions() *ChatSessions {
	return &ChatSessions{
		data: make(map[string]sessionEntry),
	}
}

func (s *ChatSessions) Load(sessionID string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[sessionID]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.state, true
}

func (s *ChatSessions) Save(sessionID string, state []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = sessionEntry{
		state:     state,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *ChatSessions) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
