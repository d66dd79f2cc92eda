package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

var (
	ErrNoActiveGame = errors.New("no active game")
	ErrStaleSession = errors.New("stale game session")
)

// Outcome is what the presentation layer needs after any game action.
type Outcome struct {
	Snapshot game.Snapshot
	Result   *game.Result
	Events   []game.Event
	NewBest  bool // the finished game set a new best score
}

type session struct {
	mu       sync.Mutex
	game     game.Game
	lastSeen time.Time
}

// GameService owns the active game of every player. Each player has at most
// one game; starting a new one replaces the previous.
type GameService struct {
	contacts ContactRepository
	scores   *ScoreService
	otp      OTPRepository
	logger   *zap.Logger
	newRand  func() *rand.Rand
	now      func() time.Time

	mu       sync.Mutex
	sessions map[int64]*session
}

func NewGameService(
	contacts ContactRepository,
	scores *ScoreService,
	otp OTPRepository,
	logger *zap.Logger,
) *GameService {
	return &GameService{
		contacts: contacts,
		scores:   scores,
		otp:      otp,
		logger:   logger,
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
		now:      time.Now,
		sessions: make(map[int64]*session),
	}
}

// StartRecall starts mode 1.
func (s *GameService) StartRecall(ctx context.Context, playerID int64) (Outcome, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	g, err := game.NewRecallGame(contacts, s.newRand())
	if err != nil {
		return Outcome{}, err
	}
	return s.install(playerID, g), nil
}

// StartMissingDigits starts mode 2.
func (s *GameService) StartMissingDigits(ctx context.Context, playerID int64, d entities.Difficulty) (Outcome, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	g, err := game.NewMissingDigitsGame(contacts, d, s.newRand())
	if err != nil {
		return Outcome{}, err
	}
	return s.install(playerID, g), nil
}

// StartSequence starts mode 3. It works without contacts.
func (s *GameService) StartSequence(ctx context.Context, playerID int64) (Outcome, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	return s.install(playerID, game.NewSequenceGame(contacts, s.newRand())), nil
}

// StartCompleteInput starts mode 4.
func (s *GameService) StartCompleteInput(ctx context.Context, playerID int64, d entities.Difficulty) (Outcome, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	g, err := game.NewCompleteInputGame(contacts, d, s.newRand())
	if err != nil {
		return Outcome{}, err
	}
	return s.install(playerID, g), nil
}

// StartOTP begins an OTP round, reusing the player's OTP game between rounds
// so the session survives.
func (s *GameService) StartOTP(ctx context.Context, playerID int64, settings entities.OTPSettings) (Outcome, error) {
	if sess := s.session(playerID); sess != nil {
		sess.mu.Lock()
		g, ok := sess.game.(*game.OTPGame)
		if ok && g.Phase() != entities.PhaseMemorizing && g.Phase() != entities.PhaseAwaitingInput {
			defer sess.mu.Unlock()
			if err := g.Start(settings); err != nil {
				return Outcome{}, err
			}
			sess.lastSeen = s.now()
			return Outcome{Snapshot: g.Snapshot()}, nil
		}
		sess.mu.Unlock()
	}

	stats, err := s.otp.Get(ctx, playerID)
	if err != nil {
		return Outcome{}, err
	}
	g := game.NewOTPGame(stats, s.newRand())
	if err := g.Start(settings); err != nil {
		return Outcome{}, err
	}
	return s.install(playerID, g), nil
}

// ResetOTP zeroes the player's OTP progress.
func (s *GameService) ResetOTP(ctx context.Context, playerID int64) error {
	if sess := s.session(playerID); sess != nil {
		sess.mu.Lock()
		if g, ok := sess.game.(*game.OTPGame); ok {
			g.Reset()
		}
		sess.mu.Unlock()
	}
	return s.otp.Save(ctx, playerID, entities.NewOTPStats())
}

// OTPStats returns the live stats of a running OTP game, or the saved ones.
func (s *GameService) OTPStats(ctx context.Context, playerID int64) (entities.OTPStats, error) {
	if sess := s.session(playerID); sess != nil {
		sess.mu.Lock()
		defer sess.mu.Unlock()
		if g, ok := sess.game.(*game.OTPGame); ok {
			return g.Stats(), nil
		}
	}
	return s.otp.Get(ctx, playerID)
}

func (s *GameService) install(playerID int64, g game.Game) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[playerID] = &session{game: g, lastSeen: s.now()}

	s.logger.Debug("game started",
		zap.Int64("player_id", playerID),
		zap.String("mode", string(g.Mode())),
		zap.String("session_id", g.ID()),
	)

	return Outcome{Snapshot: g.Snapshot()}
}

func (s *GameService) session(playerID int64) *session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessions[playerID]
}

// Submit forwards an answer to the active game.
func (s *GameService) Submit(ctx context.Context, playerID int64, value string) (Outcome, error) {
	return s.apply(ctx, playerID, "", true, func(g game.Game) (Outcome, error) {
		res, err := g.Submit(value)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Result: &res}, nil
	})
}

// Advance moves the active game past its feedback phase.
func (s *GameService) Advance(ctx context.Context, playerID int64) (Outcome, error) {
	return s.apply(ctx, playerID, "", true, func(g game.Game) (Outcome, error) {
		return Outcome{}, g.Advance()
	})
}

// Tick advances the timers of session sessionID by delta. A tick addressed to
// a replaced session returns ErrStaleSession. Ticks are not player activity
// and leave the idle clock alone.
func (s *GameService) Tick(ctx context.Context, playerID int64, sessionID string, delta time.Duration) (Outcome, error) {
	return s.apply(ctx, playerID, sessionID, false, func(g game.Game) (Outcome, error) {
		return Outcome{Events: g.Tick(delta)}, nil
	})
}

// Snapshot returns the current state of the active game.
func (s *GameService) Snapshot(playerID int64) (game.Snapshot, error) {
	sess := s.session(playerID)
	if sess == nil {
		return game.Snapshot{}, ErrNoActiveGame
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	return sess.game.Snapshot(), nil
}

// Abandon drops the active game without recording a score.
func (s *GameService) Abandon(playerID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.sessions[playerID]
	delete(s.sessions, playerID)
	return ok
}

// SweepIdle drops games untouched for longer than maxIdle and returns how
// many were removed.
func (s *GameService) SweepIdle(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Active reports the number of running games.
func (s *GameService) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *GameService) apply(
	ctx context.Context,
	playerID int64,
	sessionID string,
	touch bool,
	fn func(g game.Game) (Outcome, error),
) (Outcome, error) {
	sess := s.session(playerID)
	if sess == nil {
		return Outcome{}, ErrNoActiveGame
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	g := sess.game
	if sessionID != "" && g.ID() != sessionID {
		return Outcome{}, ErrStaleSession
	}

	wasTerminal := g.IsTerminal()
	out, err := fn(g)
	if err != nil {
		return Outcome{}, err
	}
	if touch {
		sess.lastSeen = s.now()
	}

	if !wasTerminal && g.IsTerminal() {
		out.NewBest = s.finish(ctx, playerID, g)
	}
	out.Snapshot = g.Snapshot()

	return out, nil
}

// finish persists the outcome of a game that just became terminal. Storage
// failures are logged; they never fail the player's action.
func (s *GameService) finish(ctx context.Context, playerID int64, g game.Game) bool {
	if otp, ok := g.(*game.OTPGame); ok {
		if err := s.otp.Save(ctx, playerID, otp.Stats()); err != nil {
			s.logger.Error("failed to save otp stats", zap.Int64("player_id", playerID), zap.Error(err))
		}
		return false
	}

	newBest, err := s.scores.RecordBest(ctx, playerID, g.Mode(), g.Score())
	if err != nil {
		s.logger.Error("failed to record best score",
			zap.Int64("player_id", playerID),
			zap.String("mode", string(g.Mode())),
			zap.Error(err),
		)
		return false
	}
	return newBest
}
