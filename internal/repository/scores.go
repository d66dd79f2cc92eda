package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

// ScoreRepository stores best scores per player.
type ScoreRepository struct {
	store  kv.Store
	logger *zap.Logger
}

func NewScoreRepository(store kv.Store, logger *zap.Logger) *ScoreRepository {
	return &ScoreRepository{store: store, logger: logger}
}

// Get returns the player's best scores with every scored mode present.
func (r *ScoreRepository) Get(ctx context.Context, playerID int64) (entities.BestScores, error) {
	stored := entities.BestScores{}
	ok, err := load(ctx, r.store, r.logger, kv.Key(playerID, kv.RecordBestScores), &stored)
	if err != nil {
		return nil, err
	}

	scores := entities.NewBestScores()
	if !ok {
		return scores, nil
	}
	for m, v := range stored {
		scores[m] = v
	}
	return scores, nil
}

func (r *ScoreRepository) Save(ctx context.Context, playerID int64, scores entities.BestScores) error {
	return save(ctx, r.store, kv.Key(playerID, kv.RecordBestScores), scores)
}
