package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// IdleSweeper periodically drops abandoned games.
type IdleSweeper struct {
	games    *GameService
	schedule string
	maxIdle  time.Duration
	logger   *zap.Logger
}

// NewIdleSweeper creates a sweeper running on a cron schedule such as "@every 10m".
func NewIdleSweeper(games *GameService, schedule string, maxIdle time.Duration, logger *zap.Logger) *IdleSweeper {
	return &IdleSweeper{
		games:    games,
		schedule: schedule,
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

// Start runs the sweep loop until ctx is cancelled. An invalid schedule is
// returned as an error.
func (s *IdleSweeper) Start(ctx context.Context) error {
	s.logger.Info("idle sweeper started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(time.UTC))

	_, err := c.AddFunc(s.schedule, func() {
		if removed := s.games.SweepIdle(s.maxIdle); removed > 0 {
			s.logger.Info("idle games removed",
				zap.Int("removed", removed),
				zap.Int("active", s.games.Active()),
			)
		}
	})
	if err != nil {
		return fmt.Errorf("add sweep job %q: %w", s.schedule, err)
	}

	c.Start()

	<-ctx.Done()

	<-c.Stop().Done()
	s.logger.Info("idle sweeper stopped")
	return nil
}
