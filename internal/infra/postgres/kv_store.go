package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

const schema = `
	CREATE TABLE IF NOT EXISTS kv_store (
		key        TEXT PRIMARY KEY,
		value      BYTEA NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

const upsertQuery = `
	INSERT INTO kv_store (key, value, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (key) DO UPDATE SET
		value = EXCLUDED.value,
		updated_at = EXCLUDED.updated_at
`

// KVStore is a kv.Store backed by a single PostgreSQL table.
type KVStore struct {
	pool *pgxpool.Pool
	tx   *Transactor
}

// NewKVStore creates the table if needed and returns the store.
func NewKVStore(ctx context.Context, pool *pgxpool.Pool) (*KVStore, error) {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	return &KVStore{pool: pool, tx: NewTransactor(pool)}, nil
}

func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, kv.ErrKeyNotFound
		}
		return nil, fmt.Errorf("get %s: %w", key, err)
	}

	return value, nil
}

func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	return set(ctx, s.pool, key, value)
}

// SetMany writes all entries within one transaction.
func (s *KVStore) SetMany(ctx context.Context, entries map[string][]byte) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context, db DBTX) error {
		for k, v := range entries {
			if err := set(ctx, db, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// DeleteMany removes all keys in a single statement.
func (s *KVStore) DeleteMany(ctx context.Context, keys ...string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = ANY($1)`, keys); err != nil {
		return fmt.Errorf("delete many: %w", err)
	}
	return nil
}

func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}

func set(ctx context.Context, db DBTX, key string, value []byte) error {
	if _, err := db.Exec(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}
