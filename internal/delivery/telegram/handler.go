package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/config"
	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/service"
	"github.com/aliskhannn/memory-game-bot/internal/storage"
)

type Handler struct {
	bot      Bot
	logger   *zap.Logger
	cfg      config.Game
	games    GameService
	contacts ContactService
	backups  BackupService
	scores   ScoreService
	resets   ResetService
	boards   *storage.BoardStorage
	chats    *chatStates
	tickers  *tickers
	files    *fileFetcher
}

func NewHandler(
	bot Bot,
	logger *zap.Logger,
	cfg config.Game,
	games GameService,
	contacts ContactService,
	backups BackupService,
	scores ScoreService,
	resets ResetService,
	boards *storage.BoardStorage,
) *Handler {
	return &Handler{
		bot:      bot,
		logger:   logger,
		cfg:      cfg,
		games:    games,
		contacts: contacts,
		backups:  backups,
		scores:   scores,
		resets:   resets,
		boards:   boards,
		chats:    newChatStates(),
		tickers:  newTickers(),
		files:    newFileFetcher(bot),
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil {
			return
		}
		h.logger.Debug("callback received",
			zap.Int64("user_id", cb.From.ID),
			zap.String("data", cb.Data),
		)

		st := h.chats.get(cb.Message.Chat.ID)
		st.mu.Lock()
		defer st.mu.Unlock()

		h.handleCallback(ctx, st, cb)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	m := update.Message
	chatID := m.Chat.ID
	playerID := m.From.ID

	h.logger.Debug("update received",
		zap.Int64("chat_id", chatID),
		zap.String("text", m.Text),
	)

	st := h.chats.get(chatID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if m.IsCommand() {
		st.pending = pendingNone
		h.handleCommand(ctx, st, m.Command(), m.CommandArguments(), chatID, playerID)
		return
	}

	if m.Document != nil {
		_ = h.withErrorHandling(h.documentHandler(st, m.Document, playerID))(ctx, chatID)
		return
	}

	_ = h.withErrorHandling(h.textHandler(st, m.Text, playerID))(ctx, chatID)
}

func (h *Handler) handleCommand(ctx context.Context, st *chatState, command, args string, chatID, playerID int64) {
	var fn HandlerFunc

	switch command {
	case "start":
		fn = h.startHandler(playerID)
	case "help":
		fn = h.helpHandler()
	case "contacts":
		fn = h.contactsHandler(playerID)
	case "add":
		fn = h.addHandler(st, args, playerID)
	case "paste":
		fn = h.pasteHandler(st, args, playerID)
	case "random_contacts":
		fn = h.randomContactsHandler(args, playerID)
	case "export":
		fn = h.exportHandler(playerID)
	case "backup":
		fn = h.backupHandler(playerID)
	case "restore":
		fn = h.restoreHandler(st)
	case "scores":
		fn = h.scoresHandler(playerID)
	case "recall":
		fn = h.playHandler(st, entities.ModeRecall, playerID)
	case "missing":
		fn = h.playHandler(st, entities.ModeMissingDigits, playerID)
	case "sequence":
		fn = h.playHandler(st, entities.ModeSequence, playerID)
	case "input":
		fn = h.playHandler(st, entities.ModeCompleteInput, playerID)
	case "otp":
		fn = h.otpHandler(st, args, playerID)
	case "reset_otp":
		fn = h.resetOTPHandler(playerID)
	case "stop":
		fn = h.stopHandler(playerID)
	case "reset":
		fn = h.resetHandler()
	case "cancel":
		fn = h.cancelHandler()
	default:
		h.send(newPlainMessage(chatID, msgUnknownCommand))
		return
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, err string) {
	h.send(newPlainMessage(chatID, err))
}

func (h *Handler) send(c tgbotapi.Chattable) {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message",
			zap.Error(err),
		)
	}
}

// sendBoard posts a new board message and makes it the one timer ticks edit.
func (h *Handler) sendBoard(st *chatState, chatID int64, out service.Outcome) {
	snap := out.Snapshot
	text, kb := renderBoard(snap, out.NewBest)

	msg := newMessage(chatID, text)
	if kb != nil {
		msg.ReplyMarkup = kb
	}

	sent, err := h.bot.Send(msg)
	if err != nil {
		h.logger.Error("failed to send board",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		return
	}

	prev, hadPrev := h.boards.UpsertAndGetPrev(chatID, sent.MessageID, snap.ID)
	if hadPrev && prev.MessageID != sent.MessageID {
		h.clearKeyboard(chatID, prev.MessageID)
	}

	st.boardKey = boardKey(snap)
	st.boardPhase = snap.Phase
}

// editBoard redraws the board message of the running game in place.
func (h *Handler) editBoard(st *chatState, chatID int64, out service.Outcome) {
	snap := out.Snapshot

	board, ok := h.boards.Get(chatID)
	if !ok || board.SessionID != snap.ID {
		h.sendBoard(st, chatID, out)
		return
	}

	text, kb := renderBoard(snap, out.NewBest)
	h.send(newEdit(chatID, board.MessageID, text, kb))

	st.boardKey = boardKey(snap)
	st.boardPhase = snap.Phase
}

// clearKeyboard removes the buttons of an outdated board.
func (h *Handler) clearKeyboard(chatID int64, messageID int) {
	edit := tgbotapi.NewEditMessageReplyMarkup(chatID, messageID, tgbotapi.InlineKeyboardMarkup{
		InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
	})
	if _, err := h.bot.Request(edit); err != nil {
		h.logger.Debug("failed to clear keyboard",
			zap.Int64("chat_id", chatID),
			zap.Int("message_id", messageID),
			zap.Error(err),
		)
	}
}
