package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/kv"
)

// load decodes the record stored under key into dst. A missing record leaves
// dst untouched and reports false. A corrupt record is logged and treated as
// missing so callers fall back to defaults.
func load(ctx context.Context, store kv.Store, logger *zap.Logger, key string, dst any) (bool, error) {
	raw, err := store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("load %s: %w", key, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		logger.Warn("corrupt record, using defaults", zap.String("key", key), zap.Error(err))
		return false, nil
	}

	return true, nil
}

func save(ctx context.Context, store kv.Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
