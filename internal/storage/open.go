package storage

import (
	"context"
	"fmt"

	"github.com/keisuke-0617/couple-loan-app/internal/config"
	"github.com/keisuke-0617/couple-loan-app/internal/interfaces"
	"github.com/keisuke-0617/couple-loan-app/internal/storage/jsonfile"
	"github.com/keisuke-0617/couple-loan-app/internal/storage/postgres"
	"github.com/keisuke-0617/couple-loan-app/internal/storage/redis"
	"github.com/keisuke-0617/couple-loan-app/internal/storage/remote"
)

// Open builds the record store selected by the configuration. The returned
// close function releases whatever the backend holds; for backends without
// resources it is a no-op.
func Open(ctx context.Context, cfg config.Config) (interfaces.RecordStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StoreBackend {
	case config.BackendJSON:
		return jsonfile.New(cfg.DataFile), noop, nil

	case config.BackendPostgres:
		store, err := postgres.Open(cfg.DBConnStr)
		if err != nil {
			return nil, nil, err
		}
		if err := store.EnsureSchema(ctx); err != nil {
			store.Close()
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.BackendRedis:
		store, err := redis.New(redis.Config{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			Key:      cfg.RedisKey,
		})
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case config.BackendRemote:
		if cfg.APIBase == "" {
			return nil, nil, fmt.Errorf("remote backend requires API_BASE")
		}
		client := remote.New(remote.Config{
			BaseURL: cfg.APIBase,
			Timeout: cfg.APITimeout,
			PartyA:  cfg.PartyAWire,
			PartyB:  cfg.PartyBWire,
		})
		return client, noop, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
