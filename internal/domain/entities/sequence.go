package entities

import "time"

// Sequence recall rules.
const (
	SequenceStartLives    = 3
	SequenceMaxLevel      = 10
	SequenceBaseScore     = 100
	SequenceContactChance = 0.7 // probability an element is a saved contact number

	SequenceRevealInterval = 1500 * time.Millisecond // time each element stays alone on screen
	SequenceRevealPause    = time.Second             // pause after the last element
	SequenceCountdown      = 3 * time.Second         // countdown before input opens
	SequenceRetryDelay     = 2 * time.Second         // delay before retrying a failed level
)

// SequenceLength returns the number of elements shown at level.
func SequenceLength(level int) int {
	return level + 2
}
