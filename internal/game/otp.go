package game

import (
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

const (
	reasonTimeUp     = "time's up"
	reasonNoAttempts = "no attempts left"
)

// OTPGame is the one-time-code variant. Unlike the contact modes it is a
// loop of rounds: idle → memorizing → awaiting_input → success|failure → idle.
// Score, streak and level carry over between rounds.
type OTPGame struct {
	base
	settings entities.OTPSettings
	streak   int
	level    int
	sound    bool
	code     string
	attempts int
	points   int
	reason   string
	timer    countdown
}

// NewOTPGame restores a player's OTP progress. The game waits in idle until
// Start is called.
func NewOTPGame(stats entities.OTPStats, rng *rand.Rand) *OTPGame {
	g := &OTPGame{
		base:     newBase(entities.ModeOTP, rng),
		settings: entities.DefaultOTPSettings(),
		streak:   stats.Streak,
		level:    stats.Level,
		sound:    stats.SoundEnabled,
	}
	if g.level < 1 {
		g.level = 1
	}
	g.score = stats.Score
	g.phase = entities.PhaseIdle
	return g
}

// GenerateOTP returns n random digits.
func GenerateOTP(rng *rand.Rand, n int) string {
	return RandomDigits(rng, n)
}

// Start begins a new round with the given settings.
func (g *OTPGame) Start(settings entities.OTPSettings) error {
	switch g.phase {
	case entities.PhaseIdle, entities.PhaseSuccess, entities.PhaseFailure:
	default:
		return ErrWrongPhase
	}
	if settings.Length < entities.OTPMinLength || settings.Length > entities.OTPMaxLength || settings.DisplayTime <= 0 {
		return ErrInvalidOTPSettings
	}

	g.settings = settings
	g.code = GenerateOTP(g.rng, settings.Length)
	g.attempts = 0
	g.points = 0
	g.reason = ""
	g.last = nil
	g.phase = entities.PhaseMemorizing
	g.timer.start(settings.DisplayTime)
	return nil
}

// Code returns the current one-time code.
func (g *OTPGame) Code() string { return g.code }

func (g *OTPGame) Settings() entities.OTPSettings { return g.settings }

// Stats returns the progress to persist.
func (g *OTPGame) Stats() entities.OTPStats {
	return entities.OTPStats{
		Score:        g.score,
		Streak:       g.streak,
		Level:        g.level,
		SoundEnabled: g.sound,
	}
}

// SetSound toggles the sound preference stored with the stats.
func (g *OTPGame) SetSound(enabled bool) { g.sound = enabled }

// Reset zeroes score, streak and level and returns to idle.
func (g *OTPGame) Reset() {
	g.timer.stop()
	g.score = 0
	g.streak = 0
	g.level = 1
	g.code = ""
	g.attempts = 0
	g.points = 0
	g.reason = ""
	g.last = nil
	g.phase = entities.PhaseIdle
}

// Tick hides the code after the display time and fails the round when the
// input window runs out.
func (g *OTPGame) Tick(delta time.Duration) []Event {
	fired, leftover := g.timer.advance(delta)
	if !fired {
		return nil
	}

	switch g.phase {
	case entities.PhaseMemorizing:
		events := []Event{g.setPhase(entities.PhaseAwaitingInput)}
		g.timer.start(entities.OTPInputWindow)
		return append(events, g.Tick(leftover)...)
	case entities.PhaseAwaitingInput:
		g.fail(reasonTimeUp)
		return []Event{{Kind: EventTimedOut, Phase: g.phase}}
	}
	return nil
}

// Submit checks a typed code. A wrong code costs an attempt; the round fails
// when all attempts are used.
func (g *OTPGame) Submit(value string) (Result, error) {
	if err := g.expect(entities.PhaseAwaitingInput); err != nil {
		return Result{}, err
	}

	value = strings.TrimSpace(value)
	if value == "" || !entities.IsDigits(value) {
		return Result{}, ErrInvalidAnswer
	}

	g.attempts++
	if value == g.code {
		g.timer.stop()
		points := OTPPoints(g.settings, g.attempts, g.level)
		r := Result{Correct: true, ScoreDelta: g.award(points), Expected: g.code}
		g.points = r.ScoreDelta
		g.streak++
		if g.streak%entities.OTPLevelUpStreak == 0 {
			g.level++
			r.LevelUp = true
		}
		g.phase = entities.PhaseSuccess
		return g.remember(r), nil
	}

	left := entities.OTPMaxAttempts - g.attempts
	if left <= 0 {
		g.fail(reasonNoAttempts)
		return g.remember(Result{Expected: g.code}), nil
	}
	return g.remember(Result{AttemptsLeft: left}), nil
}

func (g *OTPGame) fail(reason string) {
	g.timer.stop()
	g.streak = 0
	g.reason = reason
	g.phase = entities.PhaseFailure
}

// Advance returns a finished round to idle.
func (g *OTPGame) Advance() error {
	if g.phase != entities.PhaseSuccess && g.phase != entities.PhaseFailure {
		return ErrWrongPhase
	}
	g.phase = entities.PhaseIdle
	return nil
}

// OTPPoints scores a won round. level is the level the round was played at.
func OTPPoints(settings entities.OTPSettings, attemptsUsed, level int) int {
	ms := float64(settings.DisplayTime / time.Millisecond)
	speed := math.Max(0, (5000-ms)/100)
	attemptBonus := float64(entities.OTPMaxAttempts-attemptsUsed+1) * 20
	return int(math.Round(float64(settings.Length*10) + speed + attemptBonus + float64(level*5)))
}

func (g *OTPGame) Snapshot() Snapshot {
	s := g.snapshot()
	if g.timer.running {
		s.Remaining = g.timer.remaining
	}

	v := &OTPView{
		Length:       g.settings.Length,
		Attempts:     g.attempts,
		AttemptsLeft: entities.OTPMaxAttempts - g.attempts,
		Streak:       g.streak,
		Level:        g.level,
		Points:       g.points,
		Reason:       g.reason,
	}
	switch g.phase {
	case entities.PhaseMemorizing, entities.PhaseSuccess, entities.PhaseFailure:
		v.Code = g.code
	case entities.PhaseAwaitingInput:
		v.Hurry = g.timer.remaining <= entities.OTPHurryThreshold
	}
	s.OTP = v
	return s
}
