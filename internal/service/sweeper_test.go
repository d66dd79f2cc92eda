package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestIdleSweeperRemovesIdleGames(t *testing.T) {
	env := newTestEnv(t)
	start := time.Now()
	env.gameSvc.now = func() time.Time { return start }

	_, err := env.gameSvc.StartSequence(testContext(t), testPlayer)
	require.NoError(t, err)
	require.Equal(t, 1, env.gameSvc.Active())

	later := start.Add(time.Hour)
	env.gameSvc.now = func() time.Time { return later }

	ctx, cancel := context.WithCancel(testContext(t))
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, NewIdleSweeper(env.gameSvc, "@every 1s", 30*time.Minute, zap.NewNop()).Start(ctx))
	}()

	assert.Eventually(t, func() bool { return env.gameSvc.Active() == 0 }, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestIdleSweeperInvalidSchedule(t *testing.T) {
	env := newTestEnv(t)

	errc := make(chan error, 1)
	go func() {
		errc <- NewIdleSweeper(env.gameSvc, "not a schedule", time.Minute, zap.NewNop()).Start(testContext(t))
	}()

	select {
	case err := <-errc:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a schedule")
	case <-time.After(time.Second):
		t.Fatal("sweeper with an invalid schedule should return")
	}
}
