// Package game implements the memory game state machines.
//
// Every game is driven by three kinds of input: player answers (Submit),
// player navigation (Advance) and elapsed time (Tick). Tick never reads a
// clock; the caller decides how often to call it and with which delta, which
// keeps the transitions deterministic under test. A transition that arrives
// in a phase that no longer expects it is ignored (Tick) or rejected with
// ErrWrongPhase (Submit, Advance) without mutating state.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

var (
	ErrWrongPhase         = errors.New("action not allowed in the current phase")
	ErrInvalidAnswer      = errors.New("invalid answer")
	ErrNotEnoughContacts  = errors.New("not enough contacts")
	ErrUnknownDifficulty  = errors.New("unknown difficulty")
	ErrInvalidOTPSettings = errors.New("invalid otp settings")
)

// Minimum number of saved contacts per mode.
const (
	MinContactsRecall        = 3
	MinContactsMissingDigits = 1
	MinContactsCompleteInput = 3
)

// Game is the contract shared by every mode.
type Game interface {
	ID() string
	Mode() entities.Mode
	Phase() entities.Phase
	Score() int
	Submit(value string) (Result, error)
	Advance() error
	Tick(delta time.Duration) []Event
	IsTerminal() bool
	Snapshot() Snapshot
}

// Result describes the outcome of a single submission.
type Result struct {
	Correct      bool           `json:"correct"`
	ScoreDelta   int            `json:"score_delta"`
	Terminal     bool           `json:"terminal"`
	Phase        entities.Phase `json:"phase"`
	Expected     string         `json:"expected,omitempty"`      // revealed correct answer
	Matched      int            `json:"matched,omitempty"`       // sequence: elements typed correctly
	AttemptsLeft int            `json:"attempts_left,omitempty"` // otp: attempts remaining
	LevelUp      bool           `json:"level_up,omitempty"`      // otp: streak raised the level
}

// EventKind classifies what a tick changed.
type EventKind string

const (
	EventPhaseChanged    EventKind = "phase_changed"
	EventElementRevealed EventKind = "element_revealed"
	EventTimedOut        EventKind = "timed_out"
)

// Event is an effect emitted by Tick.
type Event struct {
	Kind  EventKind      `json:"kind"`
	Phase entities.Phase `json:"phase"`
}

// base holds the state every game shares.
type base struct {
	id    string
	mode  entities.Mode
	phase entities.Phase
	score int
	rng   *rand.Rand
	last  *Result
}

func newBase(mode entities.Mode, rng *rand.Rand) base {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return base{
		id:   uuid.NewString(),
		mode: mode,
		rng:  rng,
	}
}

func (b *base) ID() string            { return b.id }
func (b *base) Mode() entities.Mode   { return b.mode }
func (b *base) Phase() entities.Phase { return b.phase }
func (b *base) Score() int            { return b.score }
func (b *base) IsTerminal() bool      { return b.phase.IsTerminal() }

func (b *base) expect(p entities.Phase) error {
	if b.phase != p {
		return ErrWrongPhase
	}
	return nil
}

// setPhase switches phase and returns the matching event.
func (b *base) setPhase(p entities.Phase) Event {
	b.phase = p
	return Event{Kind: EventPhaseChanged, Phase: p}
}

// award adds a non-negative delta to the score.
func (b *base) award(delta int) int {
	if delta < 0 {
		delta = 0
	}
	b.score += delta
	return delta
}

func (b *base) remember(r Result) Result {
	r.Phase = b.phase
	r.Terminal = b.phase.IsTerminal()
	b.last = &r
	return r
}

func (b *base) snapshot() Snapshot {
	s := Snapshot{
		ID:    b.id,
		Mode:  b.mode,
		Phase: b.phase,
		Score: b.score,
	}
	if b.last != nil {
		last := *b.last
		s.Last = &last
	}
	return s
}
