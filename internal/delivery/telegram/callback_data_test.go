package telegram

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

func TestCallbackDataRoundTrip(t *testing.T) {
	sessionID := uuid.NewString()

	tests := []struct {
		name   string
		data   string
		action string
		params []string
	}{
		{"answer", buildAnswerCallback(sessionID, 3), actionAnswer, []string{sessionID, "3"}},
		{"next", buildNextCallback(sessionID), actionNext, []string{sessionID}},
		{"difficulty", buildDifficultyCallback(entities.ModeMissingDigits, entities.DifficultyHard), actionDifficulty, []string{"missing_digits", "hard"}},
		{"otp start", buildOTPStartCallback(entities.DifficultyExpert), actionOTP, []string{otpStart, "expert"}},
		{"otp again", buildOTPAgainCallback(), actionOTP, []string{otpAgain}},
		{"contact delete", buildContactDeleteCallback(7), actionContact, []string{contactDelete, "7"}},
		{"reset", buildResetConfirmCallback(), actionReset, []string{resetConfirm}},
		{"play", buildPlayCallback(entities.ModeOTP), actionPlay, []string{"otp"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Telegram rejects callback data longer than 64 bytes.
			require.LessOrEqual(t, len(tt.data), 64)

			cd := decodeCallback(tt.data)
			assert.Equal(t, tt.action, cd.Action)
			assert.Equal(t, tt.params, cd.Params)
			assert.Equal(t, tt.data, cd.encode())
		})
	}
}

func TestCallbackDataParam(t *testing.T) {
	cd := decodeCallback("next")

	assert.Equal(t, actionNext, cd.Action)
	assert.Empty(t, cd.Params)
	assert.Equal(t, "", cd.param(0))
	assert.Equal(t, "", cd.param(-1))
}
