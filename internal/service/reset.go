package service

import (
	"context"

	"go.uber.org/zap"
)

type ResetService struct {
	repo   ResetRepository
	games  *GameService
	logger *zap.Logger
}

func NewResetService(repo ResetRepository, games *GameService, logger *zap.Logger) *ResetService {
	return &ResetService{
		repo:   repo,
		games:  games,
		logger: logger,
	}
}

// ResetPlayer stops the active game and wipes the player's data. The
// auto-backup survives.
func (s *ResetService) ResetPlayer(ctx context.Context, playerID int64) error {
	s.games.Abandon(playerID)

	if err := s.repo.ResetPlayer(ctx, playerID); err != nil {
		return err
	}

	s.logger.Info("player reset", zap.Int64("player_id", playerID))
	return nil
}
