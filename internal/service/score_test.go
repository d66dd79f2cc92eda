package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

func TestScoreServiceRecordBest(t *testing.T) {
	ctx := context.Background()

	t.Run("strictly greater updates", func(t *testing.T) {
		repo := new(MockScoreRepository)
		current := entities.NewBestScores()
		current[entities.ModeRecall] = 50
		repo.On("Get", ctx, testPlayer).Return(current, nil)
		repo.On("Save", ctx, testPlayer, mock.MatchedBy(func(s entities.BestScores) bool {
			return s[entities.ModeRecall] == 60
		})).Return(nil)

		ok, err := NewScoreService(repo, zap.NewNop()).RecordBest(ctx, testPlayer, entities.ModeRecall, 60)
		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertExpectations(t)
	})

	t.Run("equal does not update", func(t *testing.T) {
		repo := new(MockScoreRepository)
		current := entities.NewBestScores()
		current[entities.ModeRecall] = 50
		repo.On("Get", ctx, testPlayer).Return(current, nil)

		ok, err := NewScoreService(repo, zap.NewNop()).RecordBest(ctx, testPlayer, entities.ModeRecall, 50)
		require.NoError(t, err)
		assert.False(t, ok)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("otp has no best score", func(t *testing.T) {
		repo := new(MockScoreRepository)

		ok, err := NewScoreService(repo, zap.NewNop()).RecordBest(ctx, testPlayer, entities.ModeOTP, 1000)
		require.NoError(t, err)
		assert.False(t, ok)
		repo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := new(MockScoreRepository)
		repo.On("Get", ctx, testPlayer).Return(entities.BestScores(nil), errors.New("boom"))

		_, err := NewScoreService(repo, zap.NewNop()).RecordBest(ctx, testPlayer, entities.ModeSequence, 100)
		require.Error(t, err)
	})
}
