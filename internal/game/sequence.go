package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// SequenceGame is mode 3: memorize a growing list of numbers and type it back.
type SequenceGame struct {
	base
	contacts []entities.Contact
	level    int
	lives    int
	sequence []string
	shown    int
	pausing  bool
	timer    countdown
}

// NewSequenceGame starts at level 1 with full lives. Contacts are optional.
func NewSequenceGame(contacts []entities.Contact, rng *rand.Rand) *SequenceGame {
	g := &SequenceGame{
		base:     newBase(entities.ModeSequence, rng),
		contacts: append([]entities.Contact(nil), contacts...),
		level:    1,
		lives:    entities.SequenceStartLives,
	}
	g.startLevel()
	return g
}

// GenerateSequence draws level+2 numbers, each a saved contact number with
// probability SequenceContactChance when contacts exist, otherwise random.
func GenerateSequence(rng *rand.Rand, contacts []entities.Contact, level int) []string {
	n := entities.SequenceLength(level)
	seq := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if len(contacts) > 0 && rng.Float64() < entities.SequenceContactChance {
			seq = append(seq, pickContact(rng, contacts).Number)
			continue
		}
		seq = append(seq, RandomNumber(rng))
	}
	return seq
}

func (g *SequenceGame) startLevel() {
	g.sequence = GenerateSequence(g.rng, g.contacts, g.level)
	g.shown = 1
	g.pausing = false
	g.phase = entities.PhaseRevealing
	g.timer.start(entities.SequenceRevealInterval)
}

// Sequence returns a copy of the current sequence.
func (g *SequenceGame) Sequence() []string {
	return append([]string(nil), g.sequence...)
}

func (g *SequenceGame) Level() int { return g.level }
func (g *SequenceGame) Lives() int { return g.lives }

// Tick drives the reveal, the countdown and the automatic retry.
func (g *SequenceGame) Tick(delta time.Duration) []Event {
	var events []Event
	for delta > 0 {
		fired, leftover := g.timer.advance(delta)
		if !fired {
			break
		}
		delta = leftover
		if ev, ok := g.onTimer(); ok {
			events = append(events, ev)
		}
	}
	return events
}

func (g *SequenceGame) onTimer() (Event, bool) {
	switch g.phase {
	case entities.PhaseRevealing:
		if g.shown < len(g.sequence) {
			g.shown++
			g.timer.start(entities.SequenceRevealInterval)
			return Event{Kind: EventElementRevealed, Phase: g.phase}, true
		}
		if !g.pausing {
			g.pausing = true
			g.timer.start(entities.SequenceRevealPause)
			return Event{}, false
		}
		g.pausing = false
		g.timer.start(entities.SequenceCountdown)
		return g.setPhase(entities.PhaseCountdown), true
	case entities.PhaseCountdown:
		return g.setPhase(entities.PhaseAwaitingInput), true
	case entities.PhaseFeedback:
		// Next level, or a retry after a lost life.
		g.startLevel()
		return Event{Kind: EventPhaseChanged, Phase: g.phase}, true
	}
	return Event{}, false
}

// Submit checks every element of the typed sequence, in order.
// Elements may be separated by whitespace, commas or semicolons.
func (g *SequenceGame) Submit(value string) (Result, error) {
	if err := g.expect(entities.PhaseAwaitingInput); err != nil {
		return Result{}, err
	}

	parts := strings.FieldsFunc(value, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n' || r == '\t' || r == '\r'
	})
	if len(parts) == 0 {
		return Result{}, ErrInvalidAnswer
	}

	matched := 0
	for i, want := range g.sequence {
		if i < len(parts) && parts[i] == want {
			matched++
		}
	}

	r := Result{
		Correct:  matched == len(g.sequence) && len(parts) == len(g.sequence),
		Matched:  matched,
		Expected: strings.Join(g.sequence, " "),
	}

	if r.Correct {
		r.ScoreDelta = g.award(entities.SequenceBaseScore * g.level)
		if g.level >= entities.SequenceMaxLevel {
			g.phase = entities.PhaseWon
		} else {
			g.level++
			g.phase = entities.PhaseFeedback
			g.timer.start(entities.SequenceRetryDelay)
		}
		return g.remember(r), nil
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = entities.PhaseLost
		return g.remember(r), nil
	}
	g.phase = entities.PhaseFeedback
	g.timer.start(entities.SequenceRetryDelay)

	return g.remember(r), nil
}

// Advance starts the next level after a success, or retries the same level
// with a fresh sequence after a failure.
func (g *SequenceGame) Advance() error {
	if err := g.expect(entities.PhaseFeedback); err != nil {
		return err
	}
	g.timer.stop()
	g.startLevel()
	return nil
}

func (g *SequenceGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Step = g.level
	s.Total = entities.SequenceMaxLevel
	s.Remaining = g.timer.remaining

	view := &SequenceView{
		Level:    g.level,
		MaxLevel: entities.SequenceMaxLevel,
		Lives:    g.lives,
		Length:   len(g.sequence),
	}
	if g.phase == entities.PhaseRevealing {
		view.Shown = append([]string(nil), g.sequence[:g.shown]...)
	}
	s.Sequence = view

	if g.IsTerminal() {
		s.Summary = &Summary{
			Score:     g.score,
			Level:     g.level,
			MaxLevel:  entities.SequenceMaxLevel,
			LivesUsed: entities.SequenceStartLives - g.lives,
		}
	}

	return s
}
