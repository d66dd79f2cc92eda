package game

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

const (
	RecallQuestions = 10
	RecallPoints    = 10
)

// RecallGame is mode 1: pick the right number out of four.
type RecallGame struct {
	base
	questions []entities.RecallQuestion
	current   int
	selected  string
	correct   int
}

// NewRecallGame starts a recall game over contacts.
func NewRecallGame(contacts []entities.Contact, rng *rand.Rand) (*RecallGame, error) {
	if len(contacts) < MinContactsRecall {
		return nil, ErrNotEnoughContacts
	}

	g := &RecallGame{base: newBase(entities.ModeRecall, rng)}
	g.questions = GenerateRecallQuestions(contacts, RecallQuestions, g.rng)
	g.phase = entities.PhaseAwaitingInput

	return g, nil
}

// GenerateRecallQuestions builds total questions with a random contact as the answer of each.
func GenerateRecallQuestions(contacts []entities.Contact, total int, rng *rand.Rand) []entities.RecallQuestion {
	gen := NewOptionGenerator(contacts, rng)
	questions := make([]entities.RecallQuestion, 0, total)
	for i := 0; i < total; i++ {
		answer := pickContact(rng, contacts)
		questions = append(questions, entities.RecallQuestion{
			Contact:       answer,
			Options:       gen.Generate(answer),
			CorrectAnswer: answer.Number,
		})
	}
	return questions
}

// Question returns the current question.
func (g *RecallGame) Question() entities.RecallQuestion {
	return g.questions[g.current]
}

// Submit accepts either the chosen number or a 1-based option index.
func (g *RecallGame) Submit(value string) (Result, error) {
	if err := g.expect(entities.PhaseAwaitingInput); err != nil {
		return Result{}, err
	}

	q := g.Question()
	choice, ok := resolveOption(q, strings.TrimSpace(value))
	if !ok {
		return Result{}, ErrInvalidAnswer
	}

	r := Result{Correct: choice == q.CorrectAnswer, Expected: q.CorrectAnswer}
	if r.Correct {
		g.correct++
		r.ScoreDelta = g.award(RecallPoints)
	}
	g.selected = choice
	g.phase = entities.PhaseFeedback

	return g.remember(r), nil
}

func resolveOption(q entities.RecallQuestion, value string) (string, bool) {
	if idx, err := strconv.Atoi(value); err == nil && len(value) == 1 {
		if idx < 1 || idx > len(q.Options) {
			return "", false
		}
		return q.Options[idx-1].Number, true
	}
	for _, o := range q.Options {
		if o.Number == value {
			return value, true
		}
	}
	return "", false
}

// Advance moves to the next question, or finishes after the last one.
func (g *RecallGame) Advance() error {
	if err := g.expect(entities.PhaseFeedback); err != nil {
		return err
	}

	g.selected = ""
	if g.current+1 >= len(g.questions) {
		g.phase = entities.PhaseFinished
		return nil
	}
	g.current++
	g.phase = entities.PhaseAwaitingInput

	return nil
}

// Tick is a no-op: recall mode has no timers.
func (g *RecallGame) Tick(time.Duration) []Event { return nil }

func (g *RecallGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Step = g.current + 1
	s.Total = len(g.questions)

	q := g.Question()
	view := &RecallView{
		ContactName: q.Contact.Name,
		Options:     append([]entities.Contact(nil), q.Options...),
		Selected:    g.selected,
	}
	if g.phase != entities.PhaseAwaitingInput {
		view.Correct = q.CorrectAnswer
	}
	s.Recall = view

	if g.IsTerminal() {
		s.Summary = &Summary{
			Score:    g.score,
			Correct:  g.score / RecallPoints,
			Total:    len(g.questions),
			Accuracy: percent(g.score, len(g.questions)*RecallPoints),
		}
	}

	return s
}

// percent returns round(100*part/whole), or 0 for an empty whole.
func percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(100*part) / float64(whole)))
}

// roundDiv returns round(a/b), or 0 when b is zero.
func roundDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return int(math.Round(float64(a) / float64(b)))
}
