package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

const (
	MissingDigitsRounds    = 5
	missingDigitsBase      = 100
	missingDigitsTimeBonus = 50
)

// MissingDigitsGame is mode 2: memorize a number, then fill in hidden digits.
type MissingDigitsGame struct {
	base
	contacts   []entities.Contact
	difficulty entities.Difficulty
	preset     entities.MissingDigitsPreset
	roundNum   int
	round      entities.MissingDigitsRound
	timer      countdown
	elapsed    time.Duration
	correct    int
}

// NewMissingDigitsGame starts a missing digits game; the first round opens in the memorizing phase.
func NewMissingDigitsGame(contacts []entities.Contact, difficulty entities.Difficulty, rng *rand.Rand) (*MissingDigitsGame, error) {
	preset, ok := entities.MissingDigitsPresets[difficulty]
	if !ok {
		return nil, ErrUnknownDifficulty
	}
	if len(contacts) < MinContactsMissingDigits {
		return nil, ErrNotEnoughContacts
	}

	g := &MissingDigitsGame{
		base:       newBase(entities.ModeMissingDigits, rng),
		contacts:   append([]entities.Contact(nil), contacts...),
		difficulty: difficulty,
		preset:     preset,
	}
	g.startRound()

	return g, nil
}

func (g *MissingDigitsGame) startRound() {
	g.roundNum++
	number := pickContact(g.rng, g.contacts).Number
	g.round = entities.MissingDigitsRound{
		Number:           number,
		MissingPositions: RandomPositions(g.rng, len(number), g.preset.Missing),
		Difficulty:       g.difficulty,
	}
	g.elapsed = 0
	g.phase = entities.PhaseMemorizing
	g.timer.start(g.preset.ViewTime)
}

// Round returns the current round.
func (g *MissingDigitsGame) Round() entities.MissingDigitsRound {
	return g.round
}

// Tick runs the memorization countdown and measures answering time.
func (g *MissingDigitsGame) Tick(delta time.Duration) []Event {
	switch g.phase {
	case entities.PhaseMemorizing:
		fired, leftover := g.timer.advance(delta)
		if !fired {
			return nil
		}
		g.elapsed = leftover
		return []Event{g.setPhase(entities.PhaseAwaitingInput)}
	case entities.PhaseAwaitingInput:
		if delta > 0 {
			g.elapsed += delta
		}
	}
	return nil
}

// ElapsedSeconds is the whole number of seconds spent in the input phase.
func (g *MissingDigitsGame) ElapsedSeconds() int {
	return int(g.elapsed / time.Second)
}

// Submit accepts one digit per blank in ascending position order, or the full number.
func (g *MissingDigitsGame) Submit(value string) (Result, error) {
	if err := g.expect(entities.PhaseAwaitingInput); err != nil {
		return Result{}, err
	}

	digits, err := g.blankDigits(value)
	if err != nil {
		return Result{}, err
	}

	r := Result{Correct: g.round.Check(digits), Expected: g.round.Number}
	if r.Correct {
		g.correct++
		r.ScoreDelta = g.award(RoundScore(g.difficulty, g.ElapsedSeconds()))
	}
	g.phase = entities.PhaseFeedback

	return g.remember(r), nil
}

func (g *MissingDigitsGame) blankDigits(value string) (string, error) {
	value = strings.Join(strings.Fields(value), "")
	if !entities.IsDigits(value) {
		return "", ErrInvalidAnswer
	}

	switch len(value) {
	case len(g.round.MissingPositions):
		return value, nil
	case len(g.round.Number):
		b := make([]byte, 0, len(g.round.MissingPositions))
		for _, p := range g.round.MissingPositions {
			b = append(b, value[p])
		}
		return string(b), nil
	default:
		return "", ErrInvalidAnswer
	}
}

// RoundScore is the reward of a correct round answered after elapsed seconds.
func RoundScore(d entities.Difficulty, elapsed int) int {
	return (missingDigitsBase + max(0, missingDigitsTimeBonus-elapsed)) * d.Multiplier()
}

// Advance starts the next round or finishes the game.
func (g *MissingDigitsGame) Advance() error {
	if err := g.expect(entities.PhaseFeedback); err != nil {
		return err
	}
	if g.roundNum >= MissingDigitsRounds {
		g.timer.stop()
		g.phase = entities.PhaseFinished
		return nil
	}
	g.startRound()
	return nil
}

func (g *MissingDigitsGame) Snapshot() Snapshot {
	s := g.snapshot()
	s.Step = g.roundNum
	s.Total = MissingDigitsRounds
	s.Remaining = g.timer.remaining

	view := &MissingDigitsView{
		Difficulty: g.difficulty,
		Blanks:     len(g.round.MissingPositions),
		Elapsed:    g.ElapsedSeconds(),
	}
	switch g.phase {
	case entities.PhaseMemorizing:
		view.Number = g.round.Number
	default:
		view.Masked = g.round.Masked()
	}
	s.MissingDigits = view

	if g.IsTerminal() {
		s.Summary = &Summary{
			Score:        g.score,
			Correct:      g.correct,
			Total:        MissingDigitsRounds,
			Difficulty:   g.difficulty,
			AverageScore: roundDiv(g.score, MissingDigitsRounds),
		}
	}

	return s
}
