package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/game"
)

var (
	ErrDuplicateName    = errors.New("contact name already exists")
	ErrDuplicateNumber  = errors.New("this number already exists")
	ErrContactNotFound  = errors.New("contact not found")
	ErrInvalidCount     = errors.New("count must be between 1 and 10")
	ErrNoContactsParsed = errors.New("no valid contacts found")
)

const (
	MinRandomContacts = 1
	MaxRandomContacts = 10
	autoNamePrefix    = "Contact"
)

var sampleNames = []string{
	"Alice", "Bob", "Charlie", "Diana", "Eva", "Frank", "Grace", "Henry",
	"Ivy", "Jack", "Kelly", "Leo", "Maya", "Nick", "Olivia", "Paul",
	"Quinn", "Rachel", "Sam", "Tina", "Uma", "Victor", "Wendy", "Xander",
}

// Paste line formats, tried in order.
var (
	reSeparated  = regexp.MustCompile(`^(.+?)[:|\-]\s*(\d+)$`) // Name: N, Name - N, Name | N
	reComma      = regexp.MustCompile(`^(.+?),\s*(\d+)$`)      // Name,N
	reBareNumber = regexp.MustCompile(`^(\d{10})$`)            // N
	reNumberName = regexp.MustCompile(`^(\d{10})\s+(.+)$`)     // N Name
)

// ImportResult summarizes a paste import.
type ImportResult struct {
	Added  int
	Failed int // unparsable, invalid or duplicate lines
}

// ContactService manages a player's saved contacts.
type ContactService struct {
	repo      ContactRepository
	backups   *BackupService
	validator *ContactValidator
	logger    *zap.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

func NewContactService(
	repo ContactRepository,
	backups *BackupService,
	validator *ContactValidator,
	logger *zap.Logger,
) *ContactService {
	return &ContactService{
		repo:      repo,
		backups:   backups,
		validator: validator,
		logger:    logger,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *ContactService) List(ctx context.Context, playerID int64) ([]entities.Contact, error) {
	return s.repo.GetAll(ctx, playerID)
}

// Add validates and saves a single contact.
func (s *ContactService) Add(ctx context.Context, playerID int64, name, number string) (entities.Contact, error) {
	c := entities.NewContact(name, number)
	if err := s.validator.Validate(c); err != nil {
		return entities.Contact{}, err
	}

	contacts, err := s.repo.GetAll(ctx, playerID)
	if err != nil {
		return entities.Contact{}, err
	}
	if err := checkDuplicate(contacts, c); err != nil {
		return entities.Contact{}, err
	}

	if err := s.repo.SaveAll(ctx, playerID, append(contacts, c)); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func checkDuplicate(contacts []entities.Contact, c entities.Contact) error {
	for _, existing := range contacts {
		if normalizeName(existing.Name) == normalizeName(c.Name) {
			return ErrDuplicateName
		}
		if existing.Number == c.Number {
			return ErrDuplicateNumber
		}
	}
	return nil
}

// Delete removes the contact at a 0-based index.
func (s *ContactService) Delete(ctx context.Context, playerID int64, index int) (entities.Contact, error) {
	contacts, err := s.repo.GetAll(ctx, playerID)
	if err != nil {
		return entities.Contact{}, err
	}
	if index < 0 || index >= len(contacts) {
		return entities.Contact{}, ErrContactNotFound
	}

	removed := contacts[index]
	contacts = append(contacts[:index], contacts[index+1:]...)
	if err := s.repo.SaveAll(ctx, playerID, contacts); err != nil {
		return entities.Contact{}, err
	}
	return removed, nil
}

// ParseLine extracts a contact from one pasted line. autoName is used for
// lines holding only a number.
func ParseLine(line, autoName string) (entities.Contact, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return entities.Contact{}, false
	}

	if m := reSeparated.FindStringSubmatch(line); m != nil {
		return entities.NewContact(m[1], m[2]), true
	}
	if m := reComma.FindStringSubmatch(line); m != nil {
		return entities.NewContact(m[1], m[2]), true
	}
	if m := reBareNumber.FindStringSubmatch(line); m != nil {
		return entities.NewContact(autoName, m[1]), true
	}
	if m := reNumberName.FindStringSubmatch(line); m != nil {
		return entities.NewContact(m[2], m[1]), true
	}
	return entities.Contact{}, false
}

// Import adds every valid, non-duplicate contact found in text, one per line.
// An auto-backup is written when anything was added.
func (s *ContactService) Import(ctx context.Context, playerID int64, text string) (ImportResult, error) {
	contacts, err := s.repo.GetAll(ctx, playerID)
	if err != nil {
		return ImportResult{}, err
	}

	var res ImportResult
	autoNames := 1
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		c, ok := ParseLine(line, fmt.Sprintf("%s %d", autoNamePrefix, autoNames))
		if ok && reBareNumber.MatchString(strings.TrimSpace(line)) {
			autoNames++
		}
		if !ok || s.validator.Validate(c) != nil || checkDuplicate(contacts, c) != nil {
			res.Failed++
			continue
		}

		contacts = append(contacts, c)
		res.Added++
	}

	if res.Added == 0 {
		return res, ErrNoContactsParsed
	}
	if err := s.repo.SaveAll(ctx, playerID, contacts); err != nil {
		return ImportResult{}, err
	}
	if _, err := s.backups.CreateAutoBackup(ctx, playerID); err != nil {
		s.logger.Warn("auto backup after import failed", zap.Int64("player_id", playerID), zap.Error(err))
	}

	return res, nil
}

// AddRandom generates count practice contacts and returns how many were added.
func (s *ContactService) AddRandom(ctx context.Context, playerID int64, count int) (int, error) {
	if count < MinRandomContacts || count > MaxRandomContacts {
		return 0, ErrInvalidCount
	}

	contacts, err := s.repo.GetAll(ctx, playerID)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	added := 0
	for i := 0; i < count; i++ {
		c := entities.Contact{
			Name:   fmt.Sprintf("%s%d", sampleNames[s.rng.Intn(len(sampleNames))], s.rng.Intn(100)),
			Number: game.RandomNumber(s.rng),
		}
		if checkDuplicate(contacts, c) != nil {
			continue
		}
		contacts = append(contacts, c)
		added++
	}
	s.mu.Unlock()

	if added == 0 {
		return 0, nil
	}
	if err := s.repo.SaveAll(ctx, playerID, contacts); err != nil {
		return 0, err
	}
	return added, nil
}

// Export renders every contact as a "Name: Number" line and writes an
// auto-backup.
func (s *ContactService) Export(ctx context.Context, playerID int64) (string, error) {
	contacts, err := s.repo.GetAll(ctx, playerID)
	if err != nil {
		return "", err
	}
	if len(contacts) == 0 {
		return "", ErrContactNotFound
	}

	lines := make([]string, 0, len(contacts))
	for _, c := range contacts {
		lines = append(lines, c.Name+": "+c.Number)
	}

	if _, err := s.backups.CreateAutoBackup(ctx, playerID); err != nil {
		s.logger.Warn("auto backup after export failed", zap.Int64("player_id", playerID), zap.Error(err))
	}

	return strings.Join(lines, "\n"), nil
}
