package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/sqlite"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/budget-tracker/internal/storage/kv"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const (
	selectValueQuery = `SELECT store_value FROM kv_store WHERE store_key = ?`
	upsertValueQuery = `INSERT INTO kv_store (store_key, store_value, updated_at)
VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT (store_key) DO UPDATE SET store_value = excluded.store_value, updated_at = excluded.updated_at`
)

var _ kv.IKeyValueStore = (*KeyValueTable)(nil)

// KeyValueTable stores documents as rows of the kv_store table. The same
// statements serve Postgres and SQLite; bob renders the placeholders.
type KeyValueTable struct {
	sqlDB    *sql.DB
	db       bob.DB
	rawQuery func(query string, args ...any) bob.Query
}

func NewKeyValueTable(db *sql.DB, dialect Dialect) (*KeyValueTable, error) {
	table := &KeyValueTable{sqlDB: db, db: bob.NewDB(db)}

	switch dialect {
	case DialectPostgres:
		table.rawQuery = func(query string, args ...any) bob.Query {
			return psql.RawQuery(query, args...)
		}
	case DialectSQLite:
		table.rawQuery = func(query string, args ...any) bob.Query {
			return sqlite.RawQuery(query, args...)
		}
	default:
		return nil, fmt.Errorf("sqlconfig: unsupported dialect %q", dialect)
	}

	return table, nil
}

func (t *KeyValueTable) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := bob.One(ctx, t.db, t.rawQuery(selectValueQuery, key), scan.SingleColumnMapper[string])
	if errors.Is(err, sql.ErrNoRows) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("kv_store select %s: %w", key, err)
	}
	return []byte(value), nil
}

func (t *KeyValueTable) Set(ctx context.Context, key string, value []byte) error {
	return t.SetMany(ctx, []kv.Entry{{Key: key, Value: value}})
}

// SetMany upserts every entry inside one database transaction.
func (t *KeyValueTable) SetMany(ctx context.Context, entries []kv.Entry) error {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("kv_store begin: %w", err)
	}

	for _, entry := range entries {
		_, err = bob.Exec(ctx, tx, t.rawQuery(upsertValueQuery, entry.Key, string(entry.Value)))
		if err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("kv_store upsert %s: %w", entry.Key, err)
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("kv_store commit: %w", err)
	}
	return nil
}

func (t *KeyValueTable) Close() error {
	return t.sqlDB.Close()
}
