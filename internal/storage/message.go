package storage

import (
	"sync"
	"time"
)

// BoardMessage is the message that renders a running game.
type BoardMessage struct {
	ChatID    int64
	MessageID int
	SessionID string
	SentAt    time.Time
}

// BoardStorage remembers the board message of every chat so timer ticks can
// edit it in place.
type BoardStorage struct {
	mu       sync.RWMutex
	messages map[int64]BoardMessage
}

func NewBoardStorage() *BoardStorage {
	return &BoardStorage{
		messages: make(map[int64]BoardMessage),
	}
}

func (s *BoardStorage) Get(chatID int64) (BoardMessage, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[chatID]
	return msg, ok
}

func (s *BoardStorage) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.messages, chatID)
}

// UpsertAndGetPrev stores the new board message and returns the one it replaced.
func (s *BoardStorage) UpsertAndGetPrev(chatID int64, messageID int, sessionID string) (prev BoardMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]

	s.messages[chatID] = BoardMessage{
		ChatID:    chatID,
		MessageID: messageID,
		SessionID: sessionID,
		SentAt:    time.Now(),
	}

	return prev, hadPrev
}
