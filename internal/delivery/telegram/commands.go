package telegram

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
	"github.com/aliskhannn/memory-game-bot/internal/service"
)

const defaultRandomContacts = 5

func (h *Handler) startHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, msgWelcome())
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)

		b, ok, err := h.backups.CheckAutoRestore(ctx, playerID)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		offer := newMessage(chatID, fmt.Sprintf("%s\n\n%s",
			renderBackupInfo(b),
			md("Your contact list is empty. Restore the auto-backup?"),
		))
		offer.ReplyMarkup = buildAutoRestoreKeyboard()
		h.send(offer)
		return nil
	}
}

func (h *Handler) helpHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, msgHelp())
		msg.ReplyMarkup = buildMenuKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) contactsHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		contacts, err := h.contacts.List(ctx, playerID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, renderContacts(contacts))
		if kb := buildContactsKeyboard(contacts); kb != nil {
			msg.ReplyMarkup = kb
		}
		h.send(msg)
		return nil
	}
}

func (h *Handler) addHandler(st *chatState, args string, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if strings.TrimSpace(args) == "" {
			st.pending = pendingAdd
			h.send(newPlainMessage(chatID, msgAddPrompt))
			return nil
		}
		return h.addContact(ctx, chatID, playerID, args)
	}
}

func (h *Handler) addContact(ctx context.Context, chatID, playerID int64, line string) error {
	parsed, ok := service.ParseLine(line, "")
	if !ok {
		return service.ErrInvalidNumber
	}

	c, err := h.contacts.Add(ctx, playerID, parsed.Name, parsed.Number)
	if err != nil {
		return err
	}

	h.send(newMessage(chatID, md("✅ Contact added: ")+bold(c.Name)))
	return nil
}

func (h *Handler) pasteHandler(st *chatState, args string, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if strings.TrimSpace(args) == "" {
			st.pending = pendingPaste
			h.send(newPlainMessage(chatID, msgPastePrompt))
			return nil
		}
		return h.importContacts(ctx, chatID, playerID, args)
	}
}

func (h *Handler) importContacts(ctx context.Context, chatID, playerID int64, text string) error {
	res, err := h.contacts.Import(ctx, playerID, text)
	if err != nil {
		return err
	}

	out := fmt.Sprintf("✅ Successfully added %d contacts!", res.Added)
	if res.Failed > 0 {
		out += fmt.Sprintf("\n⚠️ %d lines were skipped.", res.Failed)
	}
	h.send(newPlainMessage(chatID, out))
	return nil
}

func (h *Handler) randomContactsHandler(args string, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		count := defaultRandomContacts
		if args = strings.TrimSpace(args); args != "" {
			n, err := strconv.Atoi(args)
			if err != nil {
				return service.ErrInvalidCount
			}
			count = n
		}

		added, err := h.contacts.AddRandom(ctx, playerID, count)
		if err != nil {
			return err
		}

		h.send(newPlainMessage(chatID, fmt.Sprintf("✅ Added %d random contacts!", added)))
		return nil
	}
}

func (h *Handler) exportHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		text, err := h.contacts.Export(ctx, playerID)
		if errors.Is(err, service.ErrContactNotFound) {
			h.send(newPlainMessage(chatID, msgNoContacts))
			return nil
		}
		if err != nil {
			return err
		}
		h.send(newPlainMessage(chatID, text))

		data, err := h.backups.Export(ctx, playerID)
		if err != nil {
			return err
		}

		doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
			Name:  h.backups.ExportFileName(),
			Bytes: data,
		})
		doc.Caption = "📁 Backup file. Send it back with /restore."
		h.send(doc)
		return nil
	}
}

func (h *Handler) backupHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		b, err := h.backups.LastBackup(ctx, playerID)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, renderBackupInfo(b))
		msg.ReplyMarkup = buildAutoRestoreKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) restoreHandler(st *chatState) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		st.pending = pendingRestore

		msg := newPlainMessage(chatID, msgRestorePrompt)
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📦 Use last auto-backup", buildBackupCallback(backupRestoreLast)),
			),
		)
		h.send(msg)
		return nil
	}
}

func (h *Handler) restoreBackup(ctx context.Context, chatID, playerID int64, data []byte) error {
	b, err := h.backups.Restore(ctx, playerID, data)
	if err != nil {
		return err
	}
	h.send(newPlainMessage(chatID, fmt.Sprintf("✅ Restored %d contacts from backup.", len(b.Contacts))))
	return nil
}

func (h *Handler) scoresHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		best, err := h.scores.Get(ctx, playerID)
		if err != nil {
			return err
		}
		stats, err := h.games.OTPStats(ctx, playerID)
		if err != nil {
			return err
		}

		h.send(newMessage(chatID, renderScores(best, stats)))
		return nil
	}
}

// playHandler opens a mode: modes with presets ask for a difficulty first.
func (h *Handler) playHandler(st *chatState, mode entities.Mode, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch mode {
		case entities.ModeMissingDigits, entities.ModeCompleteInput, entities.ModeOTP:
			msg := newMessage(chatID, bold(mode.Title())+"\n\n"+md(msgChooseLevel))
			msg.ReplyMarkup = buildDifficultyKeyboard(mode)
			h.send(msg)
			return nil
		default:
			return h.startGame(ctx, st, chatID, playerID, mode, "")
		}
	}
}

func (h *Handler) otpHandler(st *chatState, args string, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		fields := strings.Fields(args)
		if len(fields) == 0 {
			return h.playHandler(st, entities.ModeOTP, playerID)(ctx, chatID)
		}

		settings, err := h.parseOTPArgs(fields)
		if err != nil {
			return err
		}
		return h.startOTP(ctx, st, chatID, playerID, settings)
	}
}

// parseOTPArgs reads "/otp <length> [seconds]".
func (h *Handler) parseOTPArgs(fields []string) (entities.OTPSettings, error) {
	settings := entities.OTPSettings{
		Length:      h.cfg.OTPLength,
		DisplayTime: h.cfg.OTPDisplayTime,
	}

	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return settings, game.ErrInvalidOTPSettings
	}
	settings.Length = n

	if len(fields) > 1 {
		secs, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return settings, game.ErrInvalidOTPSettings
		}
		settings.DisplayTime = time.Duration(secs * float64(time.Second))
	}
	return settings, nil
}

func (h *Handler) resetOTPHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if err := h.games.ResetOTP(ctx, playerID); err != nil {
			return err
		}
		h.send(newPlainMessage(chatID, msgOTPReset))
		return nil
	}
}

func (h *Handler) stopHandler(playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.tickers.stop(chatID)
		if board, ok := h.boards.Get(chatID); ok {
			h.clearKeyboard(chatID, board.MessageID)
			h.boards.Delete(chatID)
		}

		if !h.games.Abandon(playerID) {
			h.send(newPlainMessage(chatID, msgNoActiveGame))
			return nil
		}
		h.send(newPlainMessage(chatID, msgStopped))
		return nil
	}
}

func (h *Handler) resetHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newPlainMessage(chatID, msgResetConfirm)
		msg.ReplyMarkup = buildResetKeyboard()
		h.send(msg)
		return nil
	}
}

func (h *Handler) cancelHandler() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		h.send(newPlainMessage(chatID, msgCancelled))
		return nil
	}
}

// textHandler routes free text to the pending prompt or to the running game.
func (h *Handler) textHandler(st *chatState, text string, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		pending := st.pending
		st.pending = pendingNone

		switch pending {
		case pendingAdd:
			return h.addContact(ctx, chatID, playerID, text)
		case pendingPaste:
			return h.importContacts(ctx, chatID, playerID, text)
		case pendingRestore:
			return h.restoreBackup(ctx, chatID, playerID, []byte(text))
		}

		return h.submit(ctx, st, chatID, playerID, text)
	}
}

func (h *Handler) documentHandler(st *chatState, doc *tgbotapi.Document, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		isJSON := strings.HasSuffix(strings.ToLower(doc.FileName), ".json")
		if st.pending != pendingRestore && !isJSON {
			h.send(newPlainMessage(chatID, msgUnexpectedFile))
			return nil
		}
		st.pending = pendingNone

		if doc.FileSize > maxBackupFileSize {
			return errFileTooLarge
		}

		data, err := h.files.fetch(ctx, doc.FileID)
		if err != nil {
			return err
		}
		return h.restoreBackup(ctx, chatID, playerID, data)
	}
}

// submit forwards a typed answer to the running game.
func (h *Handler) submit(ctx context.Context, st *chatState, chatID, playerID int64, text string) error {
	snap, err := h.games.Snapshot(playerID)
	if err != nil {
		return err
	}
	if snap.Phase != entities.PhaseAwaitingInput {
		return game.ErrWrongPhase
	}

	out, err := h.games.Submit(ctx, playerID, text)
	if err != nil {
		return err
	}

	h.sendBoard(st, chatID, out)
	return nil
}

// startGame starts mode for the player, posts its board and starts its timers.
func (h *Handler) startGame(ctx context.Context, st *chatState, chatID, playerID int64, mode entities.Mode, d entities.Difficulty) error {
	var (
		out service.Outcome
		err error
	)

	switch mode {
	case entities.ModeRecall:
		out, err = h.games.StartRecall(ctx, playerID)
	case entities.ModeMissingDigits:
		out, err = h.games.StartMissingDigits(ctx, playerID, d)
	case entities.ModeSequence:
		out, err = h.games.StartSequence(ctx, playerID)
	case entities.ModeCompleteInput:
		out, err = h.games.StartCompleteInput(ctx, playerID, d)
	default:
		return fmt.Errorf("start game: unsupported mode %q", mode)
	}

	if errors.Is(err, game.ErrNotEnoughContacts) {
		h.send(newPlainMessage(chatID, fmt.Sprintf(msgNotEnoughContacts, minContacts(mode))))
		return nil
	}
	if err != nil {
		return err
	}

	h.sendBoard(st, chatID, out)
	h.startTicker(ctx, chatID, playerID, out.Snapshot)
	return nil
}

func (h *Handler) startOTP(ctx context.Context, st *chatState, chatID, playerID int64, settings entities.OTPSettings) error {
	out, err := h.games.StartOTP(ctx, playerID, settings)
	if err != nil {
		return err
	}
	st.otp = settings

	h.sendBoard(st, chatID, out)
	h.startTicker(ctx, chatID, playerID, out.Snapshot)
	return nil
}

func minContacts(mode entities.Mode) int {
	switch mode {
	case entities.ModeMissingDigits:
		return game.MinContactsMissingDigits
	case entities.ModeCompleteInput:
		return game.MinContactsCompleteInput
	default:
		return game.MinContactsRecall
	}
}
