package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

func recallSnapshot(phase entities.Phase) game.Snapshot {
	return game.Snapshot{
		ID:    "session-1",
		Mode:  entities.ModeRecall,
		Phase: phase,
		Step:  2,
		Total: 10,
		Score: 10,
		Recall: &game.RecallView{
			ContactName: "Alice",
			Options: []entities.Contact{
				{Name: "Bob", Number: "2345678901"},
				{Name: "Alice", Number: "1234567890"},
				{Name: "Carol", Number: "3456789012"},
				{Name: "Dave", Number: "4567890123"},
			},
		},
	}
}

func TestRenderRecallAwaitingInput(t *testing.T) {
	text, kb := renderBoard(recallSnapshot(entities.PhaseAwaitingInput), false)

	assert.Contains(t, text, "*Alice*")
	assert.Contains(t, text, "2/10")
	require.NotNil(t, kb)
	require.Len(t, kb.InlineKeyboard, 4)

	btn := kb.InlineKeyboard[1][0]
	assert.Equal(t, "1234567890", btn.Text)
	require.NotNil(t, btn.CallbackData)
	assert.Equal(t, buildAnswerCallback("session-1", 2), *btn.CallbackData)
}

func TestRenderRecallFeedback(t *testing.T) {
	snap := recallSnapshot(entities.PhaseFeedback)
	snap.Last = &game.Result{Correct: false, Expected: "1234567890"}

	text, kb := renderBoard(snap, false)

	assert.Contains(t, text, "Wrong")
	assert.Contains(t, text, "`1234567890`")
	require.NotNil(t, kb)
	assert.Equal(t, buildNextCallback("session-1"), *kb.InlineKeyboard[0][0].CallbackData)
}

func TestRenderSummaryNewBest(t *testing.T) {
	snap := recallSnapshot(entities.PhaseFinished)
	snap.Summary = &game.Summary{Score: 50, Correct: 5, Total: 10, Accuracy: 50}

	text, kb := renderBoard(snap, true)

	assert.Contains(t, text, "Game over")
	assert.Contains(t, text, "Accuracy: 50%")
	assert.Contains(t, text, "New best score")
	require.NotNil(t, kb)
	assert.Equal(t, buildPlayCallback(entities.ModeRecall), *kb.InlineKeyboard[0][0].CallbackData)
}

func TestRenderMissingDigits(t *testing.T) {
	snap := game.Snapshot{
		ID:        "s",
		Mode:      entities.ModeMissingDigits,
		Phase:     entities.PhaseMemorizing,
		Remaining: 2500 * time.Millisecond,
		MissingDigits: &game.MissingDigitsView{
			Number: "9876543210",
			Blanks: 5,
		},
	}

	text, kb := renderBoard(snap, false)
	assert.Contains(t, text, "`9876543210`")
	assert.Contains(t, text, "3s")
	assert.Nil(t, kb)

	snap.Phase = entities.PhaseAwaitingInput
	snap.MissingDigits.Number = ""
	snap.MissingDigits.Masked = "9_7_5_3_1_"

	text, _ = renderBoard(snap, false)
	assert.Contains(t, text, "`9_7_5_3_1_`")
	assert.NotContains(t, text, "9876543210")
}

func TestRenderOTPFailureRevealsCode(t *testing.T) {
	snap := game.Snapshot{
		ID:    "s",
		Mode:  entities.ModeOTP,
		Phase: entities.PhaseFailure,
		OTP: &game.OTPView{
			Code:   "482913",
			Length: 6,
			Level:  1,
			Reason: "no attempts left",
		},
	}

	text, kb := renderBoard(snap, false)

	assert.Contains(t, text, "No attempts left")
	assert.Contains(t, text, "`482913`")
	require.NotNil(t, kb)
	assert.Equal(t, buildOTPAgainCallback(), *kb.InlineKeyboard[0][0].CallbackData)
}

func TestRenderOTPHurry(t *testing.T) {
	snap := game.Snapshot{
		Mode:      entities.ModeOTP,
		Phase:     entities.PhaseAwaitingInput,
		Remaining: 4 * time.Second,
		OTP:       &game.OTPView{Length: 6, AttemptsLeft: 2, Hurry: true},
	}

	text, _ := renderBoard(snap, false)
	assert.Contains(t, text, "Hurry")
	assert.Contains(t, text, "Attempts left: 2")
}

func TestBoardKey(t *testing.T) {
	snap := game.Snapshot{
		ID:        "s",
		Mode:      entities.ModeOTP,
		Phase:     entities.PhaseAwaitingInput,
		Remaining: 10 * time.Second,
		OTP:       &game.OTPView{AttemptsLeft: 3},
	}
	key := boardKey(snap)

	snap.Remaining = 9900 * time.Millisecond
	assert.Equal(t, key, boardKey(snap), "same whole second")

	snap.Remaining = 9 * time.Second
	assert.NotEqual(t, key, boardKey(snap))
}

func TestMarkdownHelpers(t *testing.T) {
	assert.Equal(t, `a\-b\.`, md("a-b."))
	assert.Equal(t, `*x\_y*`, bold("x_y"))
	assert.Equal(t, "`9_7`", code("9_7"))
	assert.Equal(t, "1 2 3", spaced("123"))
}

func TestRenderContacts(t *testing.T) {
	text := renderContacts([]entities.Contact{{Name: "Mom", Number: "1234567890"}})
	assert.Contains(t, text, "1\\. Mom: `1234567890`")

	assert.Equal(t, md(msgNoContacts), renderContacts(nil))
}

func TestRenderBackupInfoUnknownDate(t *testing.T) {
	text := renderBackupInfo(&entities.Backup{Contacts: make([]entities.Contact, 2)})
	assert.Contains(t, text, "unknown date")
	assert.Contains(t, text, "2 contacts")
}
