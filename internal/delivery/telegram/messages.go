// messages.go contains message templates and formatting helpers for Telegram.

package telegram

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Error messages.
const (
	msgInternalError      = "Something went wrong. Please try again later."
	msgUnknownCommand     = "Unknown command. Send /help to see what I can do."
	msgNoActiveGame       = "No game is running. Pick one from /help."
	msgWrongPhase         = "Hold on, the game is not waiting for an answer right now."
	msgInvalidAnswer      = "That answer does not fit this question. Try again."
	msgGameOver           = "This game is already over."
	msgFewContacts        = "Not enough contacts for this mode. Add some with /add, /paste or /random_contacts."
	msgNotEnoughContacts  = "You need at least %d contacts for this mode. Add some with /add, /paste or /random_contacts."
	msgEmptyName          = "Please enter both name and number!"
	msgInvalidNumber      = "Please enter a valid 10-digit mobile number!"
	msgDuplicateName      = "Contact name already exists!"
	msgDuplicateNumber    = "This number already exists!"
	msgContactNotFound    = "No such contact."
	msgInvalidCount       = "Please enter a number between 1 and 10."
	msgNoContactsParsed   = "❌ No valid contacts found.\n\nSupported formats:\n• Name: Number\n• Name - Number\n• Name | Number\n• Name,Number\n• 1234567890 (auto-generates name)\n\nNumbers must be exactly 10 digits."
	msgInvalidBackup      = "❌ Invalid backup file format!"
	msgFileTooLarge       = "❌ The file is too large for a backup."
	msgUnexpectedFile     = "Send /restore first, then the backup .json file."
	msgInvalidOTPSettings = "Usage: /otp <length 4-10> [seconds to show the code]"
	msgNoBackup           = "📦 No auto-backup found. Export your contacts to create one!"
	msgNoContacts         = "📱 You have no saved contacts yet.\n\nUse /add Name 0123456789, /paste or /random_contacts."
)

// Prompts and notices.
const (
	msgAddPrompt     = "Send the contact as \"Name: 0123456789\"."
	msgPastePrompt   = "Paste your contacts here (one per line). Supported formats:\n\n• Name: Number\n• Name - Number\n• Name | Number\n• Name,Number\n• Number (will generate name)\n• Number Name"
	msgRestorePrompt = "Send the backup .json file, or paste its contents. This will replace your current contacts."
	msgCancelled     = "Cancelled."
	msgStopped       = "🏠 Game stopped."
	msgOTPReset      = "🔄 OTP stats reset."
	msgResetConfirm  = "⚠️ This deletes your contacts, best scores and OTP stats. The auto-backup is kept. Continue?"
	msgResetDone     = "🧹 All data cleared. Use /restore to bring the auto-backup back."
	msgChooseLevel   = "Choose a difficulty:"
)

func msgWelcome() string {
	var sb strings.Builder

	sb.WriteString(bold("📱 Mobile Memory Game"))
	sb.WriteString("\n\n")
	sb.WriteString(md("Train your memory with the phone numbers you actually need."))
	sb.WriteString("\n\n")
	sb.WriteString(msgHelp())

	return sb.String()
}

func msgHelp() string {
	lines := []string{
		bold("Contacts"),
		md("/contacts - list and delete contacts"),
		md("/add Name: 0123456789 - add a contact"),
		md("/paste - import many contacts at once"),
		md("/random_contacts N - add N practice contacts (1-10)"),
		md("/export - copy contacts and download a backup"),
		md("/backup - last auto-backup info"),
		md("/restore - restore from a backup file"),
		"",
		bold("Games"),
		md("/recall - pick the right number (mode 1)"),
		md("/missing - fill in the missing digits (mode 2)"),
		md("/sequence - remember a growing sequence (mode 3)"),
		md("/input - type full numbers (mode 4)"),
		md("/otp - one-time code memory"),
		md("/stop - stop the current game"),
		"",
		bold("Progress"),
		md("/scores - best scores and OTP stats"),
		md("/reset_otp - reset OTP stats"),
		md("/reset - delete all data"),
	}
	return strings.Join(lines, "\n")
}

// md escapes plain text for MarkdownV2.
func md(s string) string {
	return tgbotapi.EscapeText(tgbotapi.ModeMarkdownV2, s)
}

func bold(s string) string {
	return "*" + md(s) + "*"
}

// code renders s as inline monospace.
func code(s string) string {
	r := strings.NewReplacer("\\", "\\\\", "`", "\\`")
	return "`" + r.Replace(s) + "`"
}
