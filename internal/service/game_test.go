package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

func TestGameServiceRequiresContacts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.gameSvc.StartRecall(ctx, testPlayer)
	require.ErrorIs(t, err, game.ErrNotEnoughContacts)

	_, err = env.gameSvc.StartMissingDigits(ctx, testPlayer, entities.DifficultyEasy)
	require.ErrorIs(t, err, game.ErrNotEnoughContacts)

	_, err = env.gameSvc.StartCompleteInput(ctx, testPlayer, entities.DifficultyEasy)
	require.ErrorIs(t, err, game.ErrNotEnoughContacts)

	out, err := env.gameSvc.StartSequence(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, entities.ModeSequence, out.Snapshot.Mode)
}

func TestGameServiceRecallRecordsBest(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()))

	out, err := env.gameSvc.StartRecall(ctx, testPlayer)
	require.NoError(t, err)
	require.NotNil(t, out.Snapshot.Recall)

	_, err = env.gameSvc.Advance(ctx, testPlayer)
	require.ErrorIs(t, err, game.ErrWrongPhase)

	var last Outcome
	for i := 0; i < game.RecallQuestions; i++ {
		snap, err := env.gameSvc.Snapshot(testPlayer)
		require.NoError(t, err)

		// Answer the contact's own number.
		var answer string
		for _, c := range sampleContacts() {
			if c.Name == snap.Recall.ContactName {
				answer = c.Number
			}
		}
		res, err := env.gameSvc.Submit(ctx, testPlayer, answer)
		require.NoError(t, err)
		require.NotNil(t, res.Result)
		assert.True(t, res.Result.Correct)

		last, err = env.gameSvc.Advance(ctx, testPlayer)
		require.NoError(t, err)
	}

	assert.True(t, last.NewBest)
	assert.Equal(t, entities.PhaseFinished, last.Snapshot.Phase)

	best, err := env.scoreSvc.Get(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 100, best[entities.ModeRecall])
}

func TestGameServiceStaleTick(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.gameSvc.StartSequence(ctx, testPlayer)
	require.NoError(t, err)
	second, err := env.gameSvc.StartSequence(ctx, testPlayer)
	require.NoError(t, err)
	require.NotEqual(t, first.Snapshot.ID, second.Snapshot.ID)

	_, err = env.gameSvc.Tick(ctx, testPlayer, first.Snapshot.ID, time.Second)
	require.ErrorIs(t, err, ErrStaleSession)

	out, err := env.gameSvc.Tick(ctx, testPlayer, second.Snapshot.ID, 1500*time.Millisecond)
	require.NoError(t, err)
	assert.NotEmpty(t, out.Events)
}

func TestGameServiceNoActiveGame(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.gameSvc.Submit(context.Background(), testPlayer, "1")
	require.ErrorIs(t, err, ErrNoActiveGame)
	_, err = env.gameSvc.Snapshot(testPlayer)
	require.ErrorIs(t, err, ErrNoActiveGame)
	assert.False(t, env.gameSvc.Abandon(testPlayer))
}

func TestGameServiceOTPSavesStatsOnFailure(t *testing.T) {
	ctx := context.Background()
	otpRepo := new(MockOTPRepository)
	otpRepo.On("Get", ctx, testPlayer).Return(entities.OTPStats{Score: 100, Streak: 2, Level: 3, SoundEnabled: true}, nil)
	otpRepo.On("Save", ctx, testPlayer, mock.MatchedBy(func(s entities.OTPStats) bool {
		return s.Streak == 0 && s.Level == 3 && s.Score == 100
	})).Return(nil).Once()

	contactRepo := new(MockContactRepository)
	svc := NewGameService(contactRepo, nil, otpRepo, zap.NewNop())

	out, err := svc.StartOTP(ctx, testPlayer, entities.DefaultOTPSettings())
	require.NoError(t, err)
	assert.Equal(t, entities.PhaseMemorizing, out.Snapshot.Phase)

	out, err = svc.Tick(ctx, testPlayer, out.Snapshot.ID, 3*time.Second)
	require.NoError(t, err)
	require.Equal(t, entities.PhaseAwaitingInput, out.Snapshot.Phase)

	out, err = svc.Tick(ctx, testPlayer, out.Snapshot.ID, entities.OTPInputWindow)
	require.NoError(t, err)
	assert.Equal(t, entities.PhaseFailure, out.Snapshot.Phase)
	require.Len(t, out.Events, 1)
	assert.Equal(t, game.EventTimedOut, out.Events[0].Kind)

	// The next round reuses the session.
	next, err := svc.StartOTP(ctx, testPlayer, entities.DefaultOTPSettings())
	require.NoError(t, err)
	assert.Equal(t, out.Snapshot.ID, next.Snapshot.ID)

	otpRepo.AssertExpectations(t)
	contactRepo.AssertNotCalled(t, "GetAll", mock.Anything, mock.Anything)
}

func TestGameServiceResetOTP(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.otp.Save(ctx, testPlayer, entities.OTPStats{Score: 500, Streak: 1, Level: 4}))

	_, err := env.gameSvc.StartOTP(ctx, testPlayer, entities.DefaultOTPSettings())
	require.NoError(t, err)

	require.NoError(t, env.gameSvc.ResetOTP(ctx, testPlayer))

	stats, err := env.gameSvc.OTPStats(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Score)
	assert.Equal(t, 1, stats.Level)

	saved, err := env.otp.Get(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, entities.NewOTPStats(), saved)
}

func TestGameServiceSweepIdle(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	env.gameSvc.now = func() time.Time { return now }

	_, err := env.gameSvc.StartSequence(ctx, testPlayer)
	require.NoError(t, err)
	_, err = env.gameSvc.StartSequence(ctx, testPlayer+1)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	_, err = env.gameSvc.StartSequence(ctx, testPlayer+1)
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, env.gameSvc.SweepIdle(30*time.Minute))
	assert.Equal(t, 1, env.gameSvc.Active())

	_, err = env.gameSvc.Snapshot(testPlayer)
	require.ErrorIs(t, err, ErrNoActiveGame)
}

func TestGameServiceSweepIdleIgnoresTicks(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	env.gameSvc.now = func() time.Time { return now }

	out, err := env.gameSvc.StartSequence(ctx, testPlayer)
	require.NoError(t, err)
	sessionID := out.Snapshot.ID

	for i := 0; i < 36000; i++ {
		now = now.Add(100 * time.Millisecond)
		if _, err := env.gameSvc.Tick(ctx, testPlayer, sessionID, 100*time.Millisecond); err != nil {
			break
		}
	}

	assert.Equal(t, 1, env.gameSvc.SweepIdle(30*time.Minute))
	assert.Equal(t, 0, env.gameSvc.Active())

	_, err = env.gameSvc.Tick(ctx, testPlayer, sessionID, 100*time.Millisecond)
	require.ErrorIs(t, err, ErrNoActiveGame)
}

func TestResetService(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()))
	_, err := env.gameSvc.StartRecall(ctx, testPlayer)
	require.NoError(t, err)

	reset := NewResetService(newResetRepo(env), env.gameSvc, zap.NewNop())
	require.NoError(t, reset.ResetPlayer(ctx, testPlayer))

	contacts, err := env.contacts.GetAll(ctx, testPlayer)
	require.NoError(t, err)
	assert.Empty(t, contacts)
	assert.Equal(t, 0, env.gameSvc.Active())
}
