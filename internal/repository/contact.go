package repository

import (
	"context"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/domain/entities"
	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

// ContactRepository stores the contact list of each player.
type ContactRepository struct {
	store  kv.Store
	logger *zap.Logger
}

// NewContactRepository creates a new ContactRepository.
func NewContactRepository(store kv.Store, logger *zap.Logger) *ContactRepository {
	return &ContactRepository{store: store, logger: logger}
}

// GetAll returns the player's contacts, or an empty list if none are saved.
func (r *ContactRepository) GetAll(ctx context.Context, playerID int64) ([]entities.Contact, error) {
	var contacts []entities.Contact
	ok, err := load(ctx, r.store, r.logger, kv.Key(playerID, kv.RecordContacts), &contacts)
	if err != nil {
		return nil, err
	}
	if !ok || contacts == nil {
		contacts = []entities.Contact{}
	}
	return contacts, nil
}

// SaveAll replaces the player's contacts.
func (r *ContactRepository) SaveAll(ctx context.Context, playerID int64, contacts []entities.Contact) error {
	if contacts == nil {
		contacts = []entities.Contact{}
	}
	return save(ctx, r.store, kv.Key(playerID, kv.RecordContacts), contacts)
}
