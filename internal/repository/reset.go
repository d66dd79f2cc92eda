package repository

import (
	"context"

	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

type ResetRepository struct {
	store kv.Store
}

func NewResetRepository(store kv.Store) *ResetRepository {
	return &ResetRepository{
		store: store,
	}
}

// ResetPlayer wipes contacts, best scores and OTP progress in one atomic
// delete. The backup is kept so the player can restore from it.
func (r *ResetRepository) ResetPlayer(ctx context.Context, playerID int64) error {
	return r.store.DeleteMany(ctx,
		kv.Key(playerID, kv.RecordContacts),
		kv.Key(playerID, kv.RecordBestScores),
		kv.Key(playerID, kv.RecordOTP),
	)
}
