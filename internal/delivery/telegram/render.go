package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

// renderBoard renders the game board for a snapshot. newBest marks a finished
// game that beat the stored best score.
func renderBoard(snap game.Snapshot, newBest bool) (string, *tgbotapi.InlineKeyboardMarkup) {
	var (
		body string
		kb   *tgbotapi.InlineKeyboardMarkup
	)

	switch snap.Mode {
	case entities.ModeRecall:
		body, kb = renderRecall(snap)
	case entities.ModeMissingDigits:
		body, kb = renderMissingDigits(snap)
	case entities.ModeSequence:
		body, kb = renderSequence(snap)
	case entities.ModeCompleteInput:
		body, kb = renderCompleteInput(snap)
	case entities.ModeOTP:
		return renderOTP(snap)
	}

	if snap.Summary != nil {
		body += "\n\n" + renderSummary(snap.Mode, *snap.Summary, newBest)
		again := buildPlayAgainKeyboard(snap.Mode)
		kb = &again
	}

	return renderHeader(snap) + "\n\n" + body, kb
}

func renderHeader(snap game.Snapshot) string {
	progress := fmt.Sprintf("%d/%d", snap.Step, snap.Total)
	if snap.Mode == entities.ModeSequence {
		progress = fmt.Sprintf("level %d/%d", snap.Step, snap.Total)
	}
	return fmt.Sprintf("%s\n%s",
		bold(snap.Mode.Title()),
		md(fmt.Sprintf("📍 %s · 🏆 %d", progress, snap.Score)),
	)
}

// renderFeedback describes the latest answer.
func renderFeedback(r *game.Result) string {
	if r == nil {
		return ""
	}
	if r.Correct {
		return md(fmt.Sprintf("✅ Correct! +%d", r.ScoreDelta))
	}
	if r.Expected == "" {
		return md("❌ Wrong.")
	}
	return md("❌ Wrong. Correct answer: ") + code(r.Expected)
}

func withNext(snap game.Snapshot) *tgbotapi.InlineKeyboardMarkup {
	kb := buildNextKeyboard(snap)
	return &kb
}

func renderRecall(snap game.Snapshot) (string, *tgbotapi.InlineKeyboardMarkup) {
	v := snap.Recall
	question := md("Whose number is it? Pick the number of ") + bold(v.ContactName)

	switch snap.Phase {
	case entities.PhaseAwaitingInput:
		kb := buildOptionsKeyboard(snap.ID, v.Options)
		return question, &kb
	case entities.PhaseFeedback:
		return question + "\n\n" + renderFeedback(snap.Last), withNext(snap)
	default:
		return question + "\n\n" + renderFeedback(snap.Last), nil
	}
}

func renderMissingDigits(snap game.Snapshot) (string, *tgbotapi.InlineKeyboardMarkup) {
	v := snap.MissingDigits

	switch snap.Phase {
	case entities.PhaseMemorizing:
		return fmt.Sprintf("%s\n\n%s\n\n%s",
			md("👀 Memorize this number:"),
			code(v.Number),
			md(fmt.Sprintf("⏳ %ds", snap.RemainingSeconds())),
		), nil
	case entities.PhaseAwaitingInput:
		return fmt.Sprintf("%s\n\n%s\n\n%s",
			md("✍️ Fill in the blanks:"),
			code(v.Masked),
			md(fmt.Sprintf("Send the %d missing digits in order, or the full number.", v.Blanks)),
		), nil
	case entities.PhaseFeedback:
		return fmt.Sprintf("%s\n\n%s\n%s",
			code(v.Masked),
			renderFeedback(snap.Last),
			md(fmt.Sprintf("⏱ %ds", v.Elapsed)),
		), withNext(snap)
	default:
		return renderFeedback(snap.Last), nil
	}
}

func renderSequence(snap game.Snapshot) (string, *tgbotapi.InlineKeyboardMarkup) {
	v := snap.Sequence
	status := md(fmt.Sprintf("❤️ %d · 📏 %d numbers", v.Lives, v.Length))

	switch snap.Phase {
	case entities.PhaseRevealing:
		if len(v.Shown) == 0 {
			return status, nil
		}
		return fmt.Sprintf("%s\n\n%s\n\n%s",
			status,
			md(fmt.Sprintf("Number %d of %d:", len(v.Shown), v.Length)),
			code(v.Shown[len(v.Shown)-1]),
		), nil
	case entities.PhaseCountdown:
		return fmt.Sprintf("%s\n\n%s", status, md(fmt.Sprintf("Get ready… %d", snap.RemainingSeconds()))), nil
	case entities.PhaseAwaitingInput:
		return fmt.Sprintf("%s\n\n%s", status,
			md(fmt.Sprintf("✍️ Type all %d numbers in order, separated by spaces, commas or new lines.", v.Length)),
		), nil
	case entities.PhaseFeedback:
		return fmt.Sprintf("%s\n\n%s", status, renderSequenceFeedback(snap.Last)), withNext(snap)
	default:
		return fmt.Sprintf("%s\n\n%s", status, renderSequenceFeedback(snap.Last)), nil
	}
}

func renderSequenceFeedback(r *game.Result) string {
	if r == nil {
		return ""
	}
	if r.Correct {
		return md(fmt.Sprintf("✅ Perfect! +%d", r.ScoreDelta))
	}
	return fmt.Sprintf("%s\n%s",
		md(fmt.Sprintf("❌ %d correct. The sequence was:", r.Matched)),
		code(r.Expected),
	)
}

func renderCompleteInput(snap game.Snapshot) (string, *tgbotapi.InlineKeyboardMarkup) {
	v := snap.CompleteInput
	question := md("📞 Type the full number of ") + bold(v.ContactName)
	stats := md(fmt.Sprintf("🎯 Accuracy %d%% (%d/%d)", v.Accuracy, v.Correct, v.Answered))

	switch snap.Phase {
	case entities.PhaseAwaitingInput:
		return question + "\n\n" + stats, nil
	case entities.PhaseFeedback:
		return fmt.Sprintf("%s\n\n%s\n%s", question, renderFeedback(snap.Last), stats), withNext(snap)
	default:
		return renderFeedback(snap.Last), nil
	}
}

func renderOTP(snap game.Snapshot) (string, *tgbotapi.InlineKeyboardMarkup) {
	v := snap.OTP
	header := fmt.Sprintf("%s\n%s",
		bold(snap.Mode.Title()),
		md(fmt.Sprintf("🏆 %d · 🔥 %d · ⭐ level %d", snap.Score, v.Streak, v.Level)),
	)

	var sb strings.Builder
	sb.WriteString(header)
	sb.WriteString("\n\n")

	var kb *tgbotapi.InlineKeyboardMarkup
	switch snap.Phase {
	case entities.PhaseIdle:
		sb.WriteString(md(msgChooseLevel))
		k := buildDifficultyKeyboard(entities.ModeOTP)
		kb = &k
	case entities.PhaseMemorizing:
		sb.WriteString(md("🔐 Your code:"))
		sb.WriteString("\n\n")
		sb.WriteString(code(spaced(v.Code)))
		sb.WriteString("\n\n")
		sb.WriteString(md(fmt.Sprintf("⏳ %ds", snap.RemainingSeconds())))
	case entities.PhaseAwaitingInput:
		sb.WriteString(md(fmt.Sprintf("✍️ Enter the %d-digit code.", v.Length)))
		sb.WriteString("\n")
		if r := snap.Last; r != nil && !r.Correct && r.AttemptsLeft > 0 {
			sb.WriteString(md("❌ Wrong code. "))
		}
		sb.WriteString(md(fmt.Sprintf("Attempts left: %d", v.AttemptsLeft)))
		sb.WriteString("\n")
		timer := fmt.Sprintf("⏳ %ds", snap.RemainingSeconds())
		if v.Hurry {
			timer = "⚠️ Hurry! " + timer
		}
		sb.WriteString(md(timer))
	case entities.PhaseSuccess:
		sb.WriteString(md(fmt.Sprintf("✅ Correct! +%d points", v.Points)))
		if snap.Last != nil && snap.Last.LevelUp {
			sb.WriteString("\n")
			sb.WriteString(md(fmt.Sprintf("🎉 Level up! You are now level %d.", v.Level)))
		}
		k := buildOTPRoundKeyboard()
		kb = &k
	case entities.PhaseFailure:
		sb.WriteString(md(fmt.Sprintf("❌ %s. The code was ", capitalize(v.Reason))))
		sb.WriteString(code(v.Code))
		k := buildOTPRoundKeyboard()
		kb = &k
	}

	return sb.String(), kb
}

func renderSummary(mode entities.Mode, s game.Summary, newBest bool) string {
	lines := []string{bold("🏁 Game over")}

	switch mode {
	case entities.ModeRecall:
		lines = append(lines, md(fmt.Sprintf("Score: %d · Correct: %d/%d · Accuracy: %d%%", s.Score, s.Correct, s.Total, s.Accuracy)))
	case entities.ModeMissingDigits:
		lines = append(lines, md(fmt.Sprintf("Score: %d · Correct: %d/%d · Average: %d per round", s.Score, s.Correct, s.Total, s.AverageScore)))
	case entities.ModeSequence:
		result := "💔 Out of lives"
		if s.LivesUsed < entities.SequenceStartLives {
			result = "🏆 All levels cleared"
		}
		lines = append(lines,
			md(result),
			md(fmt.Sprintf("Score: %d · Level: %d/%d · Lives used: %d", s.Score, s.Level, s.MaxLevel, s.LivesUsed)),
		)
	case entities.ModeCompleteInput:
		lines = append(lines, md(fmt.Sprintf("Score: %d · Correct: %d/%d · Accuracy: %d%% · %s (%d pts each)",
			s.Score, s.Correct, s.Total, s.Accuracy, capitalize(string(s.Difficulty)), s.PointsPerQuestion)))
	}

	if newBest {
		lines = append(lines, md("🎉 New best score!"))
	}
	return strings.Join(lines, "\n")
}

// renderScores renders the best scores and OTP stats.
func renderScores(best entities.BestScores, otp entities.OTPStats) string {
	lines := []string{bold("🏆 Best scores")}
	for _, m := range entities.ScoredModes {
		lines = append(lines, md(fmt.Sprintf("%s: %d", m.Title(), best[m])))
	}
	lines = append(lines,
		"",
		bold("🔐 OTP"),
		md(fmt.Sprintf("Score: %d · Streak: %d · Level: %d", otp.Score, otp.Streak, otp.Level)),
	)
	return strings.Join(lines, "\n")
}

// renderContacts renders the numbered contact list.
func renderContacts(contacts []entities.Contact) string {
	if len(contacts) == 0 {
		return md(msgNoContacts)
	}

	lines := []string{bold(fmt.Sprintf("📱 Contacts (%d)", len(contacts)))}
	for i, c := range contacts {
		lines = append(lines, md(fmt.Sprintf("%d. %s: ", i+1, c.Name))+code(c.Number))
	}
	return strings.Join(lines, "\n")
}

// renderBackupInfo describes a stored backup.
func renderBackupInfo(b *entities.Backup) string {
	when := "unknown date"
	if !b.Timestamp.IsZero() {
		when = b.Timestamp.Local().Format("2006-01-02 15:04")
	}
	return fmt.Sprintf("%s\n%s",
		bold("📦 Last auto-backup"),
		md(fmt.Sprintf("%s · %d contacts", when, len(b.Contacts))),
	)
}

// spaced separates digits to make long codes easier to read.
func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
