package telegram

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
	"github.com/aliskhannn/memory-game-bot/internal/service"
)

// tickers holds the cancel func of the timer goroutine of every chat.
type tickers struct {
	mu      sync.Mutex
	cancels map[int64]context.CancelFunc
}

func newTickers() *tickers {
	return &tickers{cancels: make(map[int64]context.CancelFunc)}
}

// replace stores cancel for chatID and stops the previous ticker.
func (t *tickers) replace(chatID int64, cancel context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if prev, ok := t.cancels[chatID]; ok {
		prev()
	}
	t.cancels[chatID] = cancel
}

func (t *tickers) stop(chatID int64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if cancel, ok := t.cancels[chatID]; ok {
		cancel()
		delete(t.cancels, chatID)
	}
}

// timed reports whether a game needs timer ticks in its current state.
func timed(snap game.Snapshot) bool {
	if snap.Phase.IsTerminal() {
		return false
	}
	switch snap.Mode {
	case entities.ModeMissingDigits, entities.ModeSequence:
		return true
	case entities.ModeOTP:
		return snap.Phase != entities.PhaseIdle
	default:
		return false
	}
}

// tickInterval is the wake-up period of a game's ticker.
func (h *Handler) tickInterval(mode entities.Mode) time.Duration {
	switch mode {
	case entities.ModeOTP, entities.ModeSequence:
		return h.cfg.OTPTickInterval
	default:
		return h.cfg.TickInterval
	}
}

// boardKey identifies what a rendered board shows. Ticks that leave the key
// unchanged do not edit the message.
func boardKey(snap game.Snapshot) string {
	key := fmt.Sprintf("%s|%s|%d|%d", snap.ID, snap.Phase, snap.Step, snap.Score)
	switch snap.Phase {
	case entities.PhaseMemorizing, entities.PhaseCountdown:
		key += fmt.Sprintf("|%d", snap.RemainingSeconds())
	case entities.PhaseAwaitingInput:
		if snap.OTP != nil {
			key += fmt.Sprintf("|%d|%d", snap.RemainingSeconds(), snap.OTP.AttemptsLeft)
		}
	case entities.PhaseRevealing:
		key += fmt.Sprintf("|%d", len(snap.Sequence.Shown))
	}
	return key
}

// startTicker drives the timers of the game in snap until it ends, is
// replaced or stopped.
func (h *Handler) startTicker(ctx context.Context, chatID, playerID int64, snap game.Snapshot) {
	if !timed(snap) {
		h.tickers.stop(chatID)
		return
	}

	tctx, cancel := context.WithCancel(ctx)
	h.tickers.replace(chatID, cancel)

	go h.runTicker(tctx, chatID, playerID, snap.ID, h.tickInterval(snap.Mode))
}

func (h *Handler) runTicker(ctx context.Context, chatID, playerID int64, sessionID string, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()

	last := time.Now()
	for {
		var now time.Time
		select {
		case <-ctx.Done():
			return
		case now = <-t.C:
		}

		delta := now.Sub(last)
		last = now

		if !h.tick(ctx, chatID, playerID, sessionID, delta) {
			return
		}
	}
}

// tick advances the game by delta and redraws the board when it changed.
// It returns false once the ticker should stop.
func (h *Handler) tick(ctx context.Context, chatID, playerID int64, sessionID string, delta time.Duration) bool {
	st := h.chats.get(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if ctx.Err() != nil {
		return false
	}

	prevKey, prevPhase := st.boardKey, st.boardPhase
	out, err := h.games.Tick(ctx, playerID, sessionID, delta)
	if err != nil {
		if !errors.Is(err, service.ErrStaleSession) && !errors.Is(err, service.ErrNoActiveGame) {
			h.logger.Error("failed to tick game",
				zap.Int64("chat_id", chatID),
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		}
		return false
	}

	snap := out.Snapshot
	if boardKey(snap) != prevKey {
		// A finished feedback screen stays in the history.
		if prevPhase == entities.PhaseFeedback && snap.Phase != entities.PhaseFeedback {
			h.sendBoard(st, chatID, out)
		} else {
			h.editBoard(st, chatID, out)
		}
	}

	return timed(snap)
}
