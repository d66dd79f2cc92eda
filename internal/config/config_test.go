package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	testChdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, 20, cfg.Storage.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.Storage.MaxConnLifetime)
	assert.Equal(t, time.Second, cfg.Game.TickInterval)
	assert.Equal(t, 100*time.Millisecond, cfg.Game.OTPTickInterval)
	assert.Equal(t, 6, cfg.Game.OTPLength)
	assert.Equal(t, 3*time.Second, cfg.Game.OTPDisplayTime)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "")
	testChdir(t, t.TempDir())

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
}

func TestLoadPostgresRequiresURL(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_URL", "")
	testChdir(t, t.TempDir())

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/memory")
	cfg, err := Load()
	require.NoError(t, err)

	dsn, err := cfg.Storage.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost:5432/memory", dsn)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("STORAGE_DRIVER", "mongo")
	testChdir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsInvalidSweepSchedule(t *testing.T) {
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("GAME_SWEEP_SCHEDULE", "every ten minutes")
	testChdir(t, t.TempDir())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sweep_schedule")

	t.Setenv("GAME_SWEEP_SCHEDULE", "*/5 * * * *")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "*/5 * * * *", cfg.Game.SweepSchedule)
}
