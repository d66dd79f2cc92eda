package entities

import "fmt"

// Mode identifies one of the memory game rule-sets.
type Mode string

const (
	ModeRecall        Mode = "recall"         // mode 1: multiple choice
	ModeMissingDigits Mode = "missing_digits" // mode 2: fill the blanks
	ModeSequence      Mode = "sequence"       // mode 3: growing sequence
	ModeCompleteInput Mode = "complete_input" // mode 4: type the full number
	ModeOTP           Mode = "otp"            // one-time code memorization
)

// ScoredModes lists the modes that keep a best score.
var ScoredModes = []Mode{ModeRecall, ModeMissingDigits, ModeSequence, ModeCompleteInput}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeRecall, ModeMissingDigits, ModeSequence, ModeCompleteInput, ModeOTP:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode: %q", s)
	}
}

// Title returns a human readable mode name.
func (m Mode) Title() string {
	switch m {
	case ModeRecall:
		return "Recall"
	case ModeMissingDigits:
		return "Missing Digits"
	case ModeSequence:
		return "Sequence Recall"
	case ModeCompleteInput:
		return "Complete Input"
	case ModeOTP:
		return "OTP Memory"
	default:
		return string(m)
	}
}

// Difficulty is a preset selector shared by the missing digits and complete input modes.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert" // OTP only
)

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(s); d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert:
		return d, nil
	default:
		return "", fmt.Errorf("unknown difficulty: %q", s)
	}
}
