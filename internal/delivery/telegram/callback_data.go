package telegram

import (
	"strconv"
	"strings"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// Callback action constants.
const (
	actionAnswer     = "ans"     // ans:<session>:<option>
	actionNext       = "next"    // next:<session>
	actionDifficulty = "diff"    // diff:<mode>:<difficulty>
	actionOTP        = "otp"     // otp:<sub>[:<difficulty>]
	actionContact    = "contact" // contact:del:<index>
	actionBackup     = "backup"  // backup:<sub>
	actionReset      = "reset"   // reset:<sub>
	actionPlay       = "play"    // play:<mode>
)

// OTP sub-actions.
const (
	otpStart = "start"
	otpAgain = "again"
	otpReset = "reset"
)

// Backup sub-actions.
const (
	backupRestoreLast = "restore_last"
	backupDismiss     = "dismiss"
)

const contactDelete = "del"

const (
	resetConfirm = "confirm"
	resetCancel  = "cancel"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// param returns the i-th parameter or an empty string.
func (cd callbackData) param(i int) string {
	if i < 0 || i >= len(cd.Params) {
		return ""
	}
	return cd.Params[i]
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// buildAnswerCallback builds callback data for a 1-based option of a recall question.
func buildAnswerCallback(sessionID string, option int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{sessionID, strconv.Itoa(option)},
	}.encode()
}

func buildNextCallback(sessionID string) string {
	return callbackData{Action: actionNext, Params: []string{sessionID}}.encode()
}

func buildDifficultyCallback(mode entities.Mode, d entities.Difficulty) string {
	return callbackData{
		Action: actionDifficulty,
		Params: []string{string(mode), string(d)},
	}.encode()
}

func buildOTPStartCallback(d entities.Difficulty) string {
	return callbackData{Action: actionOTP, Params: []string{otpStart, string(d)}}.encode()
}

func buildOTPAgainCallback() string {
	return callbackData{Action: actionOTP, Params: []string{otpAgain}}.encode()
}

func buildOTPResetCallback() string {
	return callbackData{Action: actionOTP, Params: []string{otpReset}}.encode()
}

func buildContactDeleteCallback(index int) string {
	return callbackData{
		Action: actionContact,
		Params: []string{contactDelete, strconv.Itoa(index)},
	}.encode()
}

func buildBackupCallback(sub string) string {
	return callbackData{Action: actionBackup, Params: []string{sub}}.encode()
}

func buildResetConfirmCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetConfirm}}.encode()
}

func buildResetCancelCallback() string {
	return callbackData{Action: actionReset, Params: []string{resetCancel}}.encode()
}

func buildPlayCallback(mode entities.Mode) string {
	return callbackData{Action: actionPlay, Params: []string{string(mode)}}.encode()
}
