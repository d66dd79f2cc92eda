package game

import (
	"time"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// Snapshot is a read-only copy of a game used for rendering.
// Exactly one of the mode views is set.
type Snapshot struct {
	ID        string         `json:"id"`
	Mode      entities.Mode  `json:"mode"`
	Phase     entities.Phase `json:"phase"`
	Score     int            `json:"score"`
	Remaining time.Duration  `json:"remaining"` // time left on the running countdown
	Step      int            `json:"step"`      // 1-based question or round number
	Total     int            `json:"total"`

	Recall        *RecallView        `json:"recall,omitempty"`
	MissingDigits *MissingDigitsView `json:"missing_digits,omitempty"`
	Sequence      *SequenceView      `json:"sequence,omitempty"`
	CompleteInput *CompleteInputView `json:"complete_input,omitempty"`
	OTP           *OTPView           `json:"otp,omitempty"`

	Last    *Result  `json:"last,omitempty"`    // outcome of the latest submission
	Summary *Summary `json:"summary,omitempty"` // set once the game is terminal
}

// RemainingSeconds rounds Remaining up to whole seconds.
func (s Snapshot) RemainingSeconds() int {
	return ceilSeconds(s.Remaining)
}

type RecallView struct {
	ContactName string             `json:"contact_name"`
	Options     []entities.Contact `json:"options"`
	Selected    string             `json:"selected,omitempty"`
	Correct     string             `json:"correct,omitempty"` // set after answering
}

type MissingDigitsView struct {
	Difficulty entities.Difficulty `json:"difficulty"`
	Number     string              `json:"number,omitempty"` // visible only while memorizing
	Masked     string              `json:"masked,omitempty"` // visible once input opens
	Blanks     int                 `json:"blanks"`
	Elapsed    int                 `json:"elapsed"` // whole seconds spent answering
}

type SequenceView struct {
	Level    int      `json:"level"`
	MaxLevel int      `json:"max_level"`
	Lives    int      `json:"lives"`
	Length   int      `json:"length"`
	Shown    []string `json:"shown,omitempty"` // elements revealed so far
}

type CompleteInputView struct {
	Difficulty  entities.Difficulty `json:"difficulty"`
	ContactName string              `json:"contact_name"`
	Points      int                 `json:"points"`
	Correct     int                 `json:"correct"`
	Answered    int                 `json:"answered"`
	Accuracy    int                 `json:"accuracy"` // percent over answered questions
}

type OTPView struct {
	Code         string `json:"code,omitempty"` // visible while memorizing and after the round
	Length       int    `json:"length"`
	Attempts     int    `json:"attempts"`
	AttemptsLeft int    `json:"attempts_left"`
	Streak       int    `json:"streak"`
	Level        int    `json:"level"`
	Hurry        bool   `json:"hurry"`
	Points       int    `json:"points,omitempty"` // points of the last won round
	Reason       string `json:"reason,omitempty"` // why the last round failed
}

// Summary is the final report of a finished game.
type Summary struct {
	Score             int                 `json:"score"`
	Correct           int                 `json:"correct,omitempty"`
	Total             int                 `json:"total,omitempty"`
	Accuracy          int                 `json:"accuracy,omitempty"`
	AverageScore      int                 `json:"average_score,omitempty"`
	Difficulty        entities.Difficulty `json:"difficulty,omitempty"`
	PointsPerQuestion int                 `json:"points_per_question,omitempty"`
	Level             int                 `json:"level,omitempty"`
	MaxLevel          int                 `json:"max_level,omitempty"`
	LivesUsed         int                 `json:"lives_used,omitempty"`
}

func ceilSeconds(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int((d + time.Second - 1) / time.Second)
}
