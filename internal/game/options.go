package game

import (
	"math/rand"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

const (
	distractorCount   = entities.OptionsPerQuestion - 1
	mutatedDigits     = 3
	variationName     = "Variation"
	maxVariationTries = 100
)

// OptionGenerator builds multiple choice options for recall questions.
type OptionGenerator struct {
	contacts []entities.Contact
	rng      *rand.Rand
}

// NewOptionGenerator creates a new option generator.
func NewOptionGenerator(contacts []entities.Contact, rng *rand.Rand) *OptionGenerator {
	return &OptionGenerator{
		contacts: contacts,
		rng:      rng,
	}
}

// Generate returns 4 shuffled options, exactly one of which carries the
// number of correct.
func (g *OptionGenerator) Generate(correct entities.Contact) []entities.Contact {
	options := make([]entities.Contact, 0, entities.OptionsPerQuestion)
	options = append(options, correct)

	used := map[string]bool{correct.Number: true}
	options = append(options, g.distractors(used)...)

	// Not enough other contacts: synthesize look-alike numbers.
	for tries := 0; len(options) < entities.OptionsPerQuestion; tries++ {
		var number string
		if len(g.contacts) > 0 {
			number = MutateNumber(g.rng, pickContact(g.rng, g.contacts).Number, mutatedDigits)
		} else {
			number = RandomNumber(g.rng)
		}
		if used[number] && tries < maxVariationTries {
			continue
		}
		if used[number] {
			// Give up on look-alikes for pathological inputs.
			number = RandomNumber(g.rng)
			if used[number] {
				continue
			}
		}
		used[number] = true
		options = append(options, entities.Contact{Name: variationName, Number: number})
	}

	g.rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	return options
}

// distractors picks up to 3 other contacts whose numbers are not in used.
func (g *OptionGenerator) distractors(used map[string]bool) []entities.Contact {
	candidates := make([]entities.Contact, 0, len(g.contacts))
	for _, c := range g.contacts {
		if !used[c.Number] {
			candidates = append(candidates, c)
		}
	}

	g.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	out := make([]entities.Contact, 0, distractorCount)
	for _, c := range candidates {
		if len(out) == distractorCount {
			break
		}
		if used[c.Number] {
			continue
		}
		used[c.Number] = true
		out = append(out, c)
	}

	return out
}
