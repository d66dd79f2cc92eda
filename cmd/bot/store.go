package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/memory-game-bot/internal/config"
	"github.com/aliskhannn/memory-game-bot/internal/infra/postgres"
	"github.com/aliskhannn/memory-game-bot/internal/infra/redis"
	"github.com/aliskhannn/memory-game-bot/internal/infra/sqlite"
	"github.com/aliskhannn/memory-game-bot/internal/kv"
	"github.com/aliskhannn/memory-game-bot/internal/storage"
)

// openStore connects the key-value backend selected by cfg.Driver.
func openStore(ctx context.Context, cfg config.Storage, logger *zap.Logger) (kv.Store, error) {
	logger.Info("opening storage", zap.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverMemory:
		return storage.NewMemoryStore(), nil

	case config.DriverSQLite:
		return sqlite.Open(ctx, cfg.SQLitePath)

	case config.DriverPostgres:
		dsn, err := cfg.DSN()
		if err != nil {
			return nil, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.MaxConnections),
			MaxConnLifetime: cfg.MaxConnLifetime,
		})
		if err != nil {
			return nil, err
		}
		store, err := postgres.NewKVStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return store, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.RedisURL, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		return redis.NewStore(client), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
