package entities

import "time"

// Blank marks a hidden digit in a missing digits round.
const Blank = '_'

// MissingDigitsPreset configures one missing digits difficulty.
type MissingDigitsPreset struct {
	Missing  int           // number of hidden digits
	ViewTime time.Duration // memorization time
}

// MissingDigitsPresets are the missing digits difficulty settings.
var MissingDigitsPresets = map[Difficulty]MissingDigitsPreset{
	DifficultyEasy:   {Missing: 3, ViewTime: 5 * time.Second},
	DifficultyMedium: {Missing: 5, ViewTime: 3 * time.Second},
	DifficultyHard:   {Missing: 7, ViewTime: 2 * time.Second},
}

// Multiplier returns the score multiplier of a missing digits difficulty.
func (d Difficulty) Multiplier() int {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	default:
		return 1
	}
}

// MissingDigitsRound is a single round of the missing digits mode.
type MissingDigitsRound struct {
	Number           string     `json:"number"`
	MissingPositions []int      `json:"missing_positions"` // sorted ascending, distinct, within [0, len(Number))
	Difficulty       Difficulty `json:"difficulty"`
}

// Masked returns Number with every missing position replaced by Blank.
func (r MissingDigitsRound) Masked() string {
	b := []byte(r.Number)
	for _, p := range r.MissingPositions {
		if p >= 0 && p < len(b) {
			b[p] = Blank
		}
	}
	return string(b)
}

// Check reports whether digits fill every blank correctly.
// digits holds one digit per missing position, in ascending position order.
func (r MissingDigitsRound) Check(digits string) bool {
	if len(digits) != len(r.MissingPositions) {
		return false
	}
	for i, p := range r.MissingPositions {
		if digits[i] != r.Number[p] {
			return false
		}
	}
	return true
}

// Fill restores a full number from the masked form and the given digits.
func (r MissingDigitsRound) Fill(digits string) string {
	b := []byte(r.Masked())
	for i, p := range r.MissingPositions {
		if i < len(digits) {
			b[p] = digits[i]
		}
	}
	return string(b)
}
