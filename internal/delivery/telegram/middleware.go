package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/game"
	"github.com/aliskhannn/memory-game-bot/internal/repository"
	"github.com/aliskhannn/memory-game-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs unexpected errors and replies with a user-facing
// message. Known domain errors are answered without logging.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		if err == nil {
			return nil
		}

		if text, ok := userMessage(err); ok {
			h.sendError(chatID, text)
			return nil
		}

		h.logger.Error("handle error",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
		h.sendError(chatID, msgInternalError)
		return nil
	}
}

// userMessage maps domain errors to the text shown to the player.
func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrNoActiveGame), errors.Is(err, service.ErrStaleSession):
		return msgNoActiveGame, true
	case errors.Is(err, game.ErrWrongPhase):
		return msgWrongPhase, true
	case errors.Is(err, game.ErrInvalidOTPSettings):
		return msgInvalidOTPSettings, true
	case errors.Is(err, game.ErrInvalidAnswer):
		return msgInvalidAnswer, true
	case errors.Is(err, game.ErrNotEnoughContacts):
		return msgFewContacts, true
	case errors.Is(err, service.ErrEmptyName):
		return msgEmptyName, true
	case errors.Is(err, service.ErrInvalidNumber):
		return msgInvalidNumber, true
	case errors.Is(err, service.ErrDuplicateName):
		return msgDuplicateName, true
	case errors.Is(err, service.ErrDuplicateNumber):
		return msgDuplicateNumber, true
	case errors.Is(err, service.ErrContactNotFound):
		return msgContactNotFound, true
	case errors.Is(err, service.ErrInvalidCount):
		return msgInvalidCount, true
	case errors.Is(err, service.ErrNoContactsParsed):
		return msgNoContactsParsed, true
	case errors.Is(err, service.ErrInvalidBackup):
		return msgInvalidBackup, true
	case errors.Is(err, errFileTooLarge):
		return msgFileTooLarge, true
	case errors.Is(err, repository.ErrBackupNotFound):
		return msgNoBackup, true
	default:
		return "", false
	}
}
