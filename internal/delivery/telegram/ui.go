package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

// buildMenuKeyboard builds the game picker shown after /start and /help.
func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧠 Recall", buildPlayCallback(entities.ModeRecall)),
			tgbotapi.NewInlineKeyboardButtonData("🔢 Missing digits", buildPlayCallback(entities.ModeMissingDigits)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Sequence", buildPlayCallback(entities.ModeSequence)),
			tgbotapi.NewInlineKeyboardButtonData("⌨️ Complete input", buildPlayCallback(entities.ModeCompleteInput)),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔐 OTP memory", buildPlayCallback(entities.ModeOTP)),
		),
	)
}

// buildDifficultyKeyboard builds the preset picker of a mode.
func buildDifficultyKeyboard(mode entities.Mode) tgbotapi.InlineKeyboardMarkup {
	if mode == entities.ModeOTP {
		return tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				otpPresetButton(entities.DifficultyEasy),
				otpPresetButton(entities.DifficultyMedium),
			),
			tgbotapi.NewInlineKeyboardRow(
				otpPresetButton(entities.DifficultyHard),
				otpPresetButton(entities.DifficultyExpert),
			),
		)
	}

	var row []tgbotapi.InlineKeyboardButton
	for _, d := range []entities.Difficulty{entities.DifficultyEasy, entities.DifficultyMedium, entities.DifficultyHard} {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			difficultyLabel(mode, d),
			buildDifficultyCallback(mode, d),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

func otpPresetButton(d entities.Difficulty) tgbotapi.InlineKeyboardButton {
	p := entities.OTPPresets[d]
	label := fmt.Sprintf("%s (%d digits, %.1fs)", capitalize(string(d)), p.Length, p.DisplayTime.Seconds())
	return tgbotapi.NewInlineKeyboardButtonData(label, buildOTPStartCallback(d))
}

func difficultyLabel(mode entities.Mode, d entities.Difficulty) string {
	switch mode {
	case entities.ModeMissingDigits:
		p := entities.MissingDigitsPresets[d]
		return fmt.Sprintf("%s (%d missing)", capitalize(string(d)), p.Missing)
	case entities.ModeCompleteInput:
		p := entities.InputPresets[d]
		return fmt.Sprintf("%s (%d q)", capitalize(string(d)), p.Questions)
	default:
		return capitalize(string(d))
	}
}

// buildOptionsKeyboard builds one button per recall option.
func buildOptionsKeyboard(sessionID string, options []entities.Contact) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(options))
	for i, o := range options {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(o.Number, buildAnswerCallback(sessionID, i+1)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildNextKeyboard builds the button that advances past feedback.
func buildNextKeyboard(snap game.Snapshot) tgbotapi.InlineKeyboardMarkup {
	label := "Next ▶️"
	if snap.Mode == entities.ModeSequence && snap.Last != nil {
		if snap.Last.Correct {
			label = "Next level ▶️"
		} else {
			label = "Try again 🔁"
		}
	}
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, buildNextCallback(snap.ID)),
		),
	)
}

// buildOTPRoundKeyboard offers another round or a stats reset after an OTP round.
func buildOTPRoundKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 New code", buildOTPAgainCallback()),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⚙️ Difficulty", buildPlayCallback(entities.ModeOTP)),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Reset stats", buildOTPResetCallback()),
		),
	)
}

// buildPlayAgainKeyboard is attached to the summary of a finished game.
func buildPlayAgainKeyboard(mode entities.Mode) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔁 Play again", buildPlayCallback(mode)),
		),
	)
}

// buildContactsKeyboard builds one delete button per contact.
func buildContactsKeyboard(contacts []entities.Contact) *tgbotapi.InlineKeyboardMarkup {
	if len(contacts) == 0 {
		return nil
	}

	const perRow = 5

	var (
		rows [][]tgbotapi.InlineKeyboardButton
		row  []tgbotapi.InlineKeyboardButton
	)
	for i := range contacts {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(
			fmt.Sprintf("🗑 %d", i+1),
			buildContactDeleteCallback(i),
		))
		if len(row) == perRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	kb := tgbotapi.NewInlineKeyboardMarkup(rows...)
	return &kb
}

// buildAutoRestoreKeyboard asks whether to restore the auto-backup.
func buildAutoRestoreKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("✅ Restore", buildBackupCallback(backupRestoreLast)),
			tgbotapi.NewInlineKeyboardButtonData("❌ No thanks", buildBackupCallback(backupDismiss)),
		),
	)
}

func buildResetKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🧹 Delete everything", buildResetConfirmCallback()),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", buildResetCancelCallback()),
		),
	)
}
