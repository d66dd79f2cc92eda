package service

import (
	"context"
	"slices"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

type ScoreService struct {
	repo   ScoreRepository
	logger *zap.Logger
}

func NewScoreService(repo ScoreRepository, logger *zap.Logger) *ScoreService {
	return &ScoreService{repo: repo, logger: logger}
}

// Get returns the player's best scores.
func (s *ScoreService) Get(ctx context.Context, playerID int64) (entities.BestScores, error) {
	return s.repo.Get(ctx, playerID)
}

// RecordBest stores score when it strictly beats the current best for mode.
// It reports whether a new best was set. Modes without a best score are ignored.
func (s *ScoreService) RecordBest(ctx context.Context, playerID int64, mode entities.Mode, score int) (bool, error) {
	if !slices.Contains(entities.ScoredModes, mode) {
		return false, nil
	}

	scores, err := s.repo.Get(ctx, playerID)
	if err != nil {
		return false, err
	}
	if !scores.Record(mode, score) {
		return false, nil
	}

	if err := s.repo.Save(ctx, playerID, scores); err != nil {
		return false, err
	}

	s.logger.Info("new best score",
		zap.Int64("player_id", playerID),
		zap.String("mode", string(mode)),
		zap.Int("score", score),
	)

	return true, nil
}
