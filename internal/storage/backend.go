package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/kv"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
	"github.com/carson-networks/budget-tracker/internal/storage/redisstore"
	"github.com/carson-networks/budget-tracker/internal/storage/sqlconfig"
)

// NewStorage opens the configured backend and loads the ledger from it.
func NewStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	store, err := OpenKeyValueStore(ctx, env, logger)
	if err != nil {
		return nil, err
	}

	s := New(store, env.StorageKeyPrefix, logger)
	if err = s.Load(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}
	return s, nil
}

// OpenKeyValueStore connects to the backend named by env.StorageBackend,
// applying schema migrations for the SQL backends first.
func OpenKeyValueStore(ctx context.Context, env *config.Config, logger *logrus.Logger) (kv.IKeyValueStore, error) {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	switch env.StorageBackend {
	case config.BackendMemory:
		return memory.NewStore(), nil

	case config.BackendRedis:
		return redisstore.NewStore(ctx, redisstore.Options{
			Address:  env.RedisAddress,
			Password: env.RedisPassword,
			DB:       env.RedisDB,
		})

	case config.BackendPostgres:
		connStr := env.PostgresConnectionString()
		if err := migrateAndLog(logger, sqlconfig.DialectPostgres, connStr); err != nil {
			return nil, err
		}
		db, err := sqlconfig.OpenPostgres(ctx, connStr)
		if err != nil {
			return nil, err
		}
		return sqlconfig.NewKeyValueTable(db, sqlconfig.DialectPostgres)

	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(env.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
		if err := migrateAndLog(logger, sqlconfig.DialectSQLite, env.SQLitePath); err != nil {
			return nil, err
		}
		db, err := sqlconfig.OpenSQLite(ctx, env.SQLitePath)
		if err != nil {
			return nil, err
		}
		return sqlconfig.NewKeyValueTable(db, sqlconfig.DialectSQLite)
	}

	return nil, fmt.Errorf("unknown storage backend %q", env.StorageBackend)
}

func migrateAndLog(logger *logrus.Logger, dialect sqlconfig.Dialect, dsn string) error {
	result, err := sqlconfig.Migrate(dialect, dsn)
	if err != nil {
		return fmt.Errorf("migrate %s: %w", dialect, err)
	}
	logger.WithFields(logrus.Fields{
		"dialect":              dialect,
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Storage.Migrate.complete")
	return nil
}
