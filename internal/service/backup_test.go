package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
)

func TestBackupExportAndRestore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()))
	scores := entities.NewBestScores()
	scores[entities.ModeRecall] = 70
	require.NoError(t, env.scoreRep.Save(ctx, testPlayer, scores))

	data, err := env.backupSvc.Export(ctx, testPlayer)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"contacts\"")
	assert.Equal(t, "mobile-memory-game-backup-2024-03-01.json", env.backupSvc.ExportFileName())

	var decoded entities.Backup
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, entities.BackupVersion, decoded.Version)
	assert.Len(t, decoded.Contacts, 4)

	// Restore into another player.
	other := testPlayer + 1
	b, err := env.backupSvc.Restore(ctx, other, data)
	require.NoError(t, err)
	assert.Len(t, b.Contacts, 4)

	contacts, err := env.contacts.GetAll(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, sampleContacts(), contacts)

	best, err := env.scoreRep.Get(ctx, other)
	require.NoError(t, err)
	assert.Equal(t, 70, best[entities.ModeRecall])
}

func TestBackupRestoreRequiresContacts(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.backupSvc.Restore(context.Background(), testPlayer, []byte(`{"bestScores":{}}`))
	require.ErrorIs(t, err, ErrInvalidBackup)

	_, err = env.backupSvc.Restore(context.Background(), testPlayer, []byte(`not json`))
	require.ErrorIs(t, err, ErrInvalidBackup)
}

func TestBackupRestoreLenientTimestamp(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name string
		data string
		want time.Time
	}{
		{"empty", `{"contacts":[{"name":"A","number":"0123456789"}],"timestamp":""}`, time.Time{}},
		{"garbage", `{"contacts":[{"name":"A","number":"0123456789"}],"timestamp":"yesterday"}`, time.Time{}},
		{"number", `{"contacts":[{"name":"A","number":"0123456789"}],"timestamp":1700000000}`, time.Time{}},
		{"missing", `{"contacts":[{"name":"A","number":"0123456789"}]}`, time.Time{}},
		{"iso", `{"contacts":[{"name":"A","number":"0123456789"}],"timestamp":"2024-03-01T12:30:00.000Z"}`, time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := env.backupSvc.ParseBackup([]byte(tt.data))
			require.NoError(t, err)
			assert.Len(t, b.Contacts, 1)
			assert.True(t, tt.want.Equal(b.Timestamp), "got %v", b.Timestamp)
		})
	}
}

func TestBackupRestoreLegacyScoresAndBadContacts(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	data := []byte(`{
		"contacts": [
			{"name": "Alice", "number": "1234567890"},
			{"name": "Broken", "number": "12"},
			{"name": "alice", "number": "9999999999"}
		],
		"bestScores": {"mode1": 90, "mode3": 400, "unknown": 5},
		"timestamp": "2024-01-01T00:00:00Z",
		"version": "1.0"
	}`)

	b, err := env.backupSvc.Restore(ctx, testPlayer, data)
	require.NoError(t, err)
	require.Len(t, b.Contacts, 1)

	best, err := env.scoreRep.Get(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 90, best[entities.ModeRecall])
	assert.Equal(t, 400, best[entities.ModeSequence])
	assert.Equal(t, 0, best[entities.ModeCompleteInput])
}

func TestBackupRestoreKeepsScoresWhenAbsent(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	scores := entities.NewBestScores()
	scores[entities.ModeSequence] = 500
	require.NoError(t, env.scoreRep.Save(ctx, testPlayer, scores))

	_, err := env.backupSvc.Restore(ctx, testPlayer, []byte(`{"contacts":[]}`))
	require.NoError(t, err)

	best, err := env.scoreRep.Get(ctx, testPlayer)
	require.NoError(t, err)
	assert.Equal(t, 500, best[entities.ModeSequence])
}

func TestCheckAutoRestore(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, ok, err := env.backupSvc.CheckAutoRestore(ctx, testPlayer)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, sampleContacts()))
	_, err = env.backupSvc.CreateAutoBackup(ctx, testPlayer)
	require.NoError(t, err)

	_, ok, err = env.backupSvc.CheckAutoRestore(ctx, testPlayer)
	require.NoError(t, err)
	assert.False(t, ok, "contacts still present")

	require.NoError(t, env.contacts.SaveAll(ctx, testPlayer, nil))
	b, ok, err := env.backupSvc.CheckAutoRestore(ctx, testPlayer)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, b.Contacts, 4)

	_, err = env.backupSvc.RestoreLast(ctx, testPlayer)
	require.NoError(t, err)
	contacts, err := env.contacts.GetAll(ctx, testPlayer)
	require.NoError(t, err)
	assert.Len(t, contacts, 4)
}
