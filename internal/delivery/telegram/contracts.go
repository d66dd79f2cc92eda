package telegram

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
	"github.com/aliskhannn/memory-game-bot/internal/service"
)

// Bot is the part of the Telegram client the handler uses.
type Bot interface {
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type GameService interface {
	StartRecall(ctx context.Context, playerID int64) (service.Outcome, error)
	StartMissingDigits(ctx context.Context, playerID int64, d entities.Difficulty) (service.Outcome, error)
	StartSequence(ctx context.Context, playerID int64) (service.Outcome, error)
	StartCompleteInput(ctx context.Context, playerID int64, d entities.Difficulty) (service.Outcome, error)
	StartOTP(ctx context.Context, playerID int64, settings entities.OTPSettings) (service.Outcome, error)
	ResetOTP(ctx context.Context, playerID int64) error
	OTPStats(ctx context.Context, playerID int64) (entities.OTPStats, error)
	Submit(ctx context.Context, playerID int64, value string) (service.Outcome, error)
	Advance(ctx context.Context, playerID int64) (service.Outcome, error)
	Tick(ctx context.Context, playerID int64, sessionID string, delta time.Duration) (service.Outcome, error)
	Snapshot(playerID int64) (game.Snapshot, error)
	Abandon(playerID int64) bool
}

type ContactService interface {
	List(ctx context.Context, playerID int64) ([]entities.Contact, error)
	Add(ctx context.Context, playerID int64, name, number string) (entities.Contact, error)
	Delete(ctx context.Context, playerID int64, index int) (entities.Contact, error)
	Import(ctx context.Context, playerID int64, text string) (service.ImportResult, error)
	AddRandom(ctx context.Context, playerID int64, count int) (int, error)
	Export(ctx context.Context, playerID int64) (string, error)
}

type BackupService interface {
	Export(ctx context.Context, playerID int64) ([]byte, error)
	ExportFileName() string
	LastBackup(ctx context.Context, playerID int64) (*entities.Backup, error)
	Restore(ctx context.Context, playerID int64, data []byte) (*entities.Backup, error)
	RestoreLast(ctx context.Context, playerID int64) (*entities.Backup, error)
	CheckAutoRestore(ctx context.Context, playerID int64) (*entities.Backup, bool, error)
}

type ScoreService interface {
	Get(ctx context.Context, playerID int64) (entities.BestScores, error)
}

type ResetService interface {
	ResetPlayer(ctx context.Context, playerID int64) error
}
