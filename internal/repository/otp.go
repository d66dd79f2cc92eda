package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

// OTPRepository stores OTP progress per player.
type OTPRepository struct {
	store  kv.Store
	logger *zap.Logger
}

func NewOTPRepository(store kv.Store, logger *zap.Logger) *OTPRepository {
	return &OTPRepository{store: store, logger: logger}
}

// Get returns the saved stats or fresh ones.
func (r *OTPRepository) Get(ctx context.Context, playerID int64) (entities.OTPStats, error) {
	stats := entities.NewOTPStats()
	ok, err := load(ctx, r.store, r.logger, kv.Key(playerID, kv.RecordOTP), &stats)
	if err != nil {
		return entities.OTPStats{}, err
	}
	if !ok {
		return entities.NewOTPStats(), nil
	}
	if stats.Level < 1 {
		stats.Level = 1
	}
	return stats, nil
}

func (r *OTPRepository) Save(ctx context.Context, playerID int64, stats entities.OTPStats) error {
	return save(ctx, r.store, kv.Key(playerID, kv.RecordOTP), stats)
}
