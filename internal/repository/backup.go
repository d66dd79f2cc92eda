package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

var ErrBackupNotFound = errors.New("backup not found")

// BackupRepository stores the automatic backup of each player.
type BackupRepository struct {
	store  kv.Store
	logger *zap.Logger
}

func NewBackupRepository(store kv.Store, logger *zap.Logger) *BackupRepository {
	return &BackupRepository{store: store, logger: logger}
}

// Get returns the last backup or ErrBackupNotFound.
func (r *BackupRepository) Get(ctx context.Context, playerID int64) (*entities.Backup, error) {
	var b entities.Backup
	ok, err := load(ctx, r.store, r.logger, kv.Key(playerID, kv.RecordBackup), &b)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrBackupNotFound
	}
	return &b, nil
}

func (r *BackupRepository) Save(ctx context.Context, playerID int64, b *entities.Backup) error {
	return save(ctx, r.store, kv.Key(playerID, kv.RecordBackup), b)
}

// ReplaceProfile atomically overwrites the player's contacts and best scores.
func (r *BackupRepository) ReplaceProfile(ctx context.Context, playerID int64, contacts []entities.Contact, scores entities.BestScores) error {
	if contacts == nil {
		contacts = []entities.Contact{}
	}
	rawContacts, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	rawScores, err := json.Marshal(scores)
	if err != nil {
		return fmt.Errorf("encode best scores: %w", err)
	}

	err = r.store.SetMany(ctx, map[string][]byte{
		kv.Key(playerID, kv.RecordContacts):   rawContacts,
		kv.Key(playerID, kv.RecordBestScores): rawScores,
	})
	if err != nil {
		return fmt.Errorf("replace profile: %w", err)
	}
	return nil
}
