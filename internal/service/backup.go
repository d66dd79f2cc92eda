package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/repository"
)

var ErrInvalidBackup = errors.New("invalid backup file format")

// legacyScoreKeys maps the numbered mode keys of older backups.
var legacyScoreKeys = map[string]entities.Mode{
	"mode1": entities.ModeRecall,
	"mode2": entities.ModeMissingDigits,
	"mode3": entities.ModeSequence,
	"mode4": entities.ModeCompleteInput,
}

// BackupService creates and restores player backups.
type BackupService struct {
	contacts  ContactRepository
	scores    ScoreRepository
	backups   BackupRepository
	validator *ContactValidator
	logger    *zap.Logger
	now       func() time.Time
}

func NewBackupService(
	contacts ContactRepository,
	scores ScoreRepository,
	backups BackupRepository,
	validator *ContactValidator,
	logger *zap.Logger,
) *BackupService {
	return &BackupService{
		contacts:  contacts,
		scores:    scores,
		backups:   backups,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// build snapshots the current contacts and best scores.
func (s *BackupService) build(ctx context.Context, playerID int64) (*entities.Backup, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return nil, err
	}
	scores, err := s.scores.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return entities.NewBackup(contacts, scores, s.now()), nil
}

// CreateAutoBackup overwrites the stored backup with the current state.
func (s *BackupService) CreateAutoBackup(ctx context.Context, playerID int64) (*entities.Backup, error) {
	b, err := s.build(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := s.backups.Save(ctx, playerID, b); err != nil {
		return nil, fmt.Errorf("auto backup: %w", err)
	}
	return b, nil
}

// Export returns an indented JSON backup and refreshes the auto-backup.
func (s *BackupService) Export(ctx context.Context, playerID int64) ([]byte, error) {
	b, err := s.CreateAutoBackup(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(b, "", "  ")
}

// ExportFileName is the suggested name of an exported backup.
func (s *BackupService) ExportFileName() string {
	return fmt.Sprintf("mobile-memory-game-backup-%s.json", s.now().UTC().Format(time.DateOnly))
}

// LastBackup returns the stored auto-backup.
func (s *BackupService) LastBackup(ctx context.Context, playerID int64) (*entities.Backup, error) {
	return s.backups.Get(ctx, playerID)
}

// ParseBackup decodes a backup file. The contacts array is required; invalid
// or duplicate contacts are skipped.
func (s *BackupService) ParseBackup(data []byte) (*entities.Backup, error) {
	var raw struct {
		Contacts   *[]entities.Contact `json:"contacts"`
		BestScores map[string]int      `json:"bestScores"`
		Timestamp  json.RawMessage     `json:"timestamp"`
		Version    string              `json:"version"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBackup, err)
	}
	if raw.Contacts == nil {
		return nil, ErrInvalidBackup
	}

	b := &entities.Backup{
		Contacts:  make([]entities.Contact, 0, len(*raw.Contacts)),
		Timestamp: parseBackupTime(raw.Timestamp),
		Version:   raw.Version,
	}

	names := make(map[string]bool)
	numbers := make(map[string]bool)
	for _, c := range *raw.Contacts {
		c = entities.NewContact(c.Name, c.Number)
		if s.validator.Validate(c) != nil || names[normalizeName(c.Name)] || numbers[c.Number] {
			s.logger.Warn("skipping backup contact", zap.String("name", c.Name))
			continue
		}
		names[normalizeName(c.Name)] = true
		numbers[c.Number] = true
		b.Contacts = append(b.Contacts, c)
	}

	if raw.BestScores != nil {
		b.BestScores = entities.NewBestScores()
		for k, v := range raw.BestScores {
			mode, ok := legacyScoreKeys[k]
			if !ok {
				m, err := entities.ParseMode(k)
				if err != nil {
					continue
				}
				mode = m
			}
			if v > 0 {
				b.BestScores[mode] = v
			}
		}
	}

	return b, nil
}

// Restore replaces contacts, and best scores when present, from a backup file.
func (s *BackupService) Restore(ctx context.Context, playerID int64, data []byte) (*entities.Backup, error) {
	b, err := s.ParseBackup(data)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, playerID, b); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreLast restores the stored auto-backup.
func (s *BackupService) RestoreLast(ctx context.Context, playerID int64) (*entities.Backup, error) {
	b, err := s.backups.Get(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := s.apply(ctx, playerID, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BackupService) apply(ctx context.Context, playerID int64, b *entities.Backup) error {
	scores := b.BestScores
	if scores == nil {
		current, err := s.scores.Get(ctx, playerID)
		if err != nil {
			return err
		}
		scores = current
	}

	if err := s.backups.ReplaceProfile(ctx, playerID, b.Contacts, scores); err != nil {
		return err
	}

	s.logger.Info("backup restored",
		zap.Int64("player_id", playerID),
		zap.Int("contacts", len(b.Contacts)),
	)
	return nil
}

// CheckAutoRestore returns the stored backup when the player has no contacts
// but the backup has some.
func (s *BackupService) CheckAutoRestore(ctx context.Context, playerID int64) (*entities.Backup, bool, error) {
	contacts, err := s.contacts.GetAll(ctx, playerID)
	if err != nil {
		return nil, false, err
	}
	if len(contacts) > 0 {
		return nil, false, nil
	}

	b, err := s.backups.Get(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrBackupNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}

	return b, len(b.Contacts) > 0, nil
}

// parseBackupTime reads the backup timestamp leniently. Anything that is not
// an RFC 3339 string yields the zero time.
func parseBackupTime(raw json.RawMessage) time.Time {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
