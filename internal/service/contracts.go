package service

import (
	"context"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

type ContactRepository interface {
	GetAll(ctx context.Context, playerID int64) ([]entities.Contact, error)
	SaveAll(ctx context.Context, playerID int64, contacts []entities.Contact) error
}

type ScoreRepository interface {
	Get(ctx context.Context, playerID int64) (entities.BestScores, error)
	Save(ctx context.Context, playerID int64, scores entities.BestScores) error
}

type BackupRepository interface {
	Get(ctx context.Context, playerID int64) (*entities.Backup, error)
	Save(ctx context.Context, playerID int64, b *entities.Backup) error
	ReplaceProfile(ctx context.Context, playerID int64, contacts []entities.Contact, scores entities.BestScores) error
}

type OTPRepository interface {
	Get(ctx context.Context, playerID int64) (entities.OTPStats, error)
	Save(ctx context.Context, playerID int64, stats entities.OTPStats) error
}

type ResetRepository interface {
	ResetPlayer(ctx context.Context, playerID int64) error
}
