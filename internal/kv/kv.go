// Package kv defines the key-value persistence contract shared by every
// storage backend.
package kv

import (
	"context"
	"errors"
	"fmt"
)

var ErrKeyNotFound = errors.New("key not found")

// Store is a flat key-value store holding opaque blobs.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetMany writes all entries atomically.
	SetMany(ctx context.Context, entries map[string][]byte) error
	Delete(ctx context.Context, key string) error
	// DeleteMany removes all keys atomically.
	DeleteMany(ctx context.Context, keys ...string) error
	Close() error
}

// Per-player record names.
const (
	RecordContacts   = "contacts"
	RecordBestScores = "best_scores"
	RecordBackup     = "backup"
	RecordOTP        = "otp"
)

// Key returns the namespaced key of a player's record.
func Key(playerID int64, record string) string {
	return fmt.Sprintf("player:%d:%s", playerID, record)
}
