package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// CompleteInputGame is mode 4: type a contact's full number from memory.
type CompleteInputGame struct {
	base
	difficulty entities.Difficulty
	preset     entities.InputPreset
	questions  []entities.InputQuestion
	current    int
	answered   int
	correct    int
}

// NewCompleteInputGame starts a complete input game.
func NewCompleteInputGame(contacts []entities.Contact, difficulty entities.Difficulty, rng *rand.Rand) (*CompleteInputGame, error) {
	preset, ok := entities.InputPresets[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if len(contacts) < MinContactsCompleteInput {
		return nil, ErrNotEnoughContacts
	}

	g := &CompleteInputGame{
		base:       newBase(entities.ModeCompleteInput, rng),
		difficulty: difficulty,
		preset:     preset,
	}
	g.questions = make([]entities.InputQuestion, 0, preset.Questions)
	for i := 0; i < preset.Questions; i++ {
		c := pickContact(g.rng, contacts)
		g.questions = append(g.questions, entities.InputQuestion{Contact: c, CorrectAnswer: c.Number})
	}
	g.phase = entities.PhaseAwaitingInput

	return g, nil
}

// Question returns the current question.
func (g *CompleteInputGame) Question() entities.InputQuestion {
	return g.questions[g.current]
}

// Accuracy is round(100*correct/answered) over the questions answered so far.
func (g *CompleteInputGame) Accuracy() int {
	return percent(g.correct, g.answered)
}

// Submit requires a full 10-digit number; anything else is rejected without
// consuming the question.
func (g *CompleteInputGame) Submit(value string) (Result, error) {
	if err := g.expect(entities.PhaseAwaitingInput); err != nil {
		return Result{}, err
	}

	value = strings.TrimSpace(value)
	if !entities.IsPhoneNumber(value) {
		return Result{}, ErrInvalidAnswer
	}

	q := g.Question()
	r := Result{Correct: value == q.CorrectAnswer, Expected: q.CorrectAnswer}
	g.answered++
	if r.Correct {
		g.correct++
		r.ScoreDelta = g.award(g.preset.Points)
	}
	g.phase = entities.PhaseFeedback

	return g.remember(r), nil
}

// Advance moves to the next question, or finishes after the last one.
func (g *CompleteInputGame) Advance() error {
	if err := g.expect(entities.PhaseFeedback); err != nil {
		return err
	}
	if g.current+1 >= len(g.questions) {
		g.phase = entities.PhaseFinished
		return nil
	}
	g.current++
	g.phase = entities.PhaseAwaitingInput
	return nil
}

// Tick is a no-op: complete input mode has no timers.
func (g *CompleteInputGame) Tick(time.Duration) []Event { return nil }

func (g *CompleteInputGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Step = g.current + 1
	s.Total = len(g.questions)

	s.CompleteInput = &CompleteInputView{
		Difficulty:  g.difficulty,
		ContactName: g.Question().Contact.Name,
		Points:      g.preset.Points,
		Correct:     g.correct,
		Answered:    g.answered,
		Accuracy:    g.Accuracy(),
	}

	if g.IsTerminal() {
		s.Summary = &Summary{
			Score:             g.score,
			Correct:           g.correct,
			Total:             len(g.questions),
			Accuracy:          percent(g.correct, len(g.questions)),
			Difficulty:        g.difficulty,
			PointsPerQuestion: g.preset.Points,
		}
	}

	return s
}
