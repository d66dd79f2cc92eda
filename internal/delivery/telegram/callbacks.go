package telegram

import (
	"context"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

// handleCallback dispatches an inline button press. notice is shown to the
// user as a toast when the press could not be applied.
func (h *Handler) handleCallback(ctx context.Context, st *chatState, cb *tgbotapi.CallbackQuery) {
	data := decodeCallback(cb.Data)
	chatID := cb.Message.Chat.ID
	playerID := cb.From.ID

	var (
		fn     HandlerFunc
		notice string
	)

	switch data.Action {
	case actionAnswer:
		fn, notice = h.answerCallback(st, data, cb.Message.MessageID, playerID)
	case actionNext:
		fn, notice = h.nextCallback(st, data, playerID)
	case actionDifficulty:
		fn = h.difficultyCallback(st, data, playerID)
	case actionPlay:
		fn = h.playCallback(st, data, playerID)
	case actionOTP:
		fn = h.otpCallback(st, data, playerID)
	case actionContact:
		fn = h.contactCallback(data, cb.Message.MessageID, playerID)
	case actionBackup:
		fn = h.backupCallback(data, cb.Message.MessageID, playerID)
	case actionReset:
		fn = h.resetCallback(data, cb.Message.MessageID, playerID)
	default:
		h.logger.Debug("unknown callback", zap.String("data", cb.Data))
	}

	if fn != nil {
		st.pending = pendingNone
		_ = h.withErrorHandling(fn)(ctx, chatID)
	}

	// Remove the user's "clock".
	answer := tgbotapi.NewCallback(cb.ID, notice)
	if _, err := h.bot.Request(answer); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

// sameSession reports whether sessionID addresses the player's running game.
func (h *Handler) sameSession(playerID int64, sessionID string) bool {
	snap, err := h.games.Snapshot(playerID)
	return err == nil && snap.ID == sessionID
}

func (h *Handler) answerCallback(st *chatState, data callbackData, messageID int, playerID int64) (HandlerFunc, string) {
	if !h.sameSession(playerID, data.param(0)) {
		return nil, msgGameOver
	}

	return func(ctx context.Context, chatID int64) error {
		out, err := h.games.Submit(ctx, playerID, data.param(1))
		if err != nil {
			return err
		}

		text, kb := renderBoard(out.Snapshot, out.NewBest)
		h.send(newEdit(chatID, messageID, text, kb))
		st.boardKey = boardKey(out.Snapshot)
		st.boardPhase = out.Snapshot.Phase
		return nil
	}, ""
}

func (h *Handler) nextCallback(st *chatState, data callbackData, playerID int64) (HandlerFunc, string) {
	if !h.sameSession(playerID, data.param(0)) {
		return nil, msgGameOver
	}

	return func(ctx context.Context, chatID int64) error {
		out, err := h.games.Advance(ctx, playerID)
		if err != nil {
			return err
		}
		h.sendBoard(st, chatID, out)
		return nil
	}, ""
}

func (h *Handler) difficultyCallback(st *chatState, data callbackData, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		mode, err := entities.ParseMode(data.param(0))
		if err != nil {
			return err
		}
		d, err := entities.ParseDifficulty(data.param(1))
		if err != nil {
			return err
		}
		return h.startGame(ctx, st, chatID, playerID, mode, d)
	}
}

func (h *Handler) playCallback(st *chatState, data callbackData, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		mode, err := entities.ParseMode(data.param(0))
		if err != nil {
			return err
		}
		return h.playHandler(st, mode, playerID)(ctx, chatID)
	}
}

func (h *Handler) otpCallback(st *chatState, data callbackData, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.param(0) {
		case otpStart:
			d, err := entities.ParseDifficulty(data.param(1))
			if err != nil {
				return err
			}
			p, ok := entities.OTPPresets[d]
			if !ok {
				return h.playHandler(st, entities.ModeOTP, playerID)(ctx, chatID)
			}
			return h.startOTP(ctx, st, chatID, playerID, entities.OTPSettings{
				Length:      p.Length,
				DisplayTime: p.DisplayTime,
			})
		case otpAgain:
			settings := st.otp
			if settings.Length == 0 {
				settings = entities.OTPSettings{Length: h.cfg.OTPLength, DisplayTime: h.cfg.OTPDisplayTime}
			}
			return h.startOTP(ctx, st, chatID, playerID, settings)
		case otpReset:
			return h.resetOTPHandler(playerID)(ctx, chatID)
		}
		return nil
	}
}

func (h *Handler) contactCallback(data callbackData, messageID int, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if data.param(0) != contactDelete {
			return nil
		}
		index, err := strconv.Atoi(data.param(1))
		if err != nil {
			return err
		}

		if _, err := h.contacts.Delete(ctx, playerID, index); err != nil {
			return err
		}

		contacts, err := h.contacts.List(ctx, playerID)
		if err != nil {
			return err
		}
		h.send(newEdit(chatID, messageID, renderContacts(contacts), buildContactsKeyboard(contacts)))
		return nil
	}
}

func (h *Handler) backupCallback(data callbackData, messageID int, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		switch data.param(0) {
		case backupRestoreLast:
			b, err := h.backups.RestoreLast(ctx, playerID)
			if err != nil {
				return err
			}
			text := md("✅ Restored " + strconv.Itoa(len(b.Contacts)) + " contacts from the auto-backup.")
			h.send(newEdit(chatID, messageID, text, nil))
		case backupDismiss:
			h.clearKeyboard(chatID, messageID)
		}
		return nil
	}
}

func (h *Handler) resetCallback(data callbackData, messageID int, playerID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		if data.param(0) != resetConfirm {
			h.send(newEdit(chatID, messageID, md(msgCancelled), nil))
			return nil
		}

		h.tickers.stop(chatID)
		h.boards.Delete(chatID)
		if err := h.resets.ResetPlayer(ctx, playerID); err != nil {
			return err
		}
		h.send(newEdit(chatID, messageID, md(msgResetDone), nil))
		return nil
	}
}
