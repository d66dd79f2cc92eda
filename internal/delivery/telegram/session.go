package telegram

import (
	"sync"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// pendingInput is the free-text answer a chat is expected to send next.
type pendingInput int

const (
	pendingNone pendingInput = iota
	pendingAdd
	pendingPaste
	pendingRestore
)

// chatState serializes updates and timer ticks of one chat.
type chatState struct {
	mu         sync.Mutex
	pending    pendingInput
	otp        entities.OTPSettings // settings of the last OTP round
	boardKey   string               // what the board message shows right now
	boardPhase entities.Phase
}

type chatStates struct {
	mu     sync.Mutex
	states map[int64]*chatState
}

func newChatStates() *chatStates {
	return &chatStates{states: make(map[int64]*chatState)}
}

func (s *chatStates) get(chatID int64) *chatState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.states[chatID]
	if !ok {
		st = &chatState{}
		s.states[chatID] = st
	}
	return st
}
