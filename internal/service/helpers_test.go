package service

import (
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/repository"
	"github.com/aliskhannn/memory-game-bot/internal/storage"
)

const testPlayer int64 = 100

type testEnv struct {
	store    *storage.MemoryStore
	contacts *repository.ContactRepository
	scoreRep *repository.ScoreRepository
	backups  *repository.BackupRepository
	otp      *repository.OTPRepository

	scoreSvc   *ScoreService
	backupSvc  *BackupService
	contactSvc *ContactService
	gameSvc    *GameService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := zap.NewNop()
	store := storage.NewMemoryStore()

	env := &testEnv{
		store:    store,
		contacts: repository.NewContactRepository(store, logger),
		scoreRep: repository.NewScoreRepository(store, logger),
		backups:  repository.NewBackupRepository(store, logger),
		otp:      repository.NewOTPRepository(store, logger),
	}

	v := NewContactValidator()
	env.scoreSvc = NewScoreService(env.scoreRep, logger)
	env.backupSvc = NewBackupService(env.contacts, env.scoreRep, env.backups, v, logger)
	env.backupSvc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC) }
	env.contactSvc = NewContactService(env.contacts, env.backupSvc, v, logger)
	env.gameSvc = NewGameService(env.contacts, env.scoreSvc, env.otp, logger)

	return env
}

func newResetRepo(env *testEnv) *repository.ResetRepository {
	return repository.NewResetRepository(env.store)
}

func sampleContacts() []entities.Contact {
	return []entities.Contact{
		{Name: "Alice", Number: "1234567890"},
		{Name: "Bob", Number: "2345678901"},
		{Name: "Carol", Number: "3456789012"},
		{Name: "Dave", Number: "4567890123"},
	}
}
