package sqlconfig

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

type MigrationResult struct {
	PreVersion  uint
	PostVersion uint
}

// Migrate applies all pending embedded migrations for dialect over a
// dedicated connection to dsn, which is closed before returning.
func Migrate(dialect Dialect, dsn string) (MigrationResult, error) {
	var driverName string
	switch dialect {
	case DialectPostgres:
		driverName = "postgres"
	case DialectSQLite:
		driverName = "sqlite"
	default:
		return MigrationResult{}, fmt.Errorf("sqlconfig: unsupported dialect %q", dialect)
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("sql.Open %s: %w", driverName, err)
	}

	var driver database.Driver
	if dialect == DialectPostgres {
		driver, err = postgres.WithInstance(db, &postgres.Config{})
	} else {
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}
	if err != nil {
		_ = db.Close()
		return MigrationResult{}, fmt.Errorf("%s.WithInstance: %w", dialect, err)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+string(dialect))
	if err != nil {
		_ = driver.Close()
		return MigrationResult{}, fmt.Errorf("iofs.New: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(dialect), driver)
	if err != nil {
		_ = source.Close()
		_ = driver.Close()
		return MigrationResult{}, fmt.Errorf("migrate.NewWithInstance: %w", err)
	}
	defer m.Close()

	var result MigrationResult
	result.PreVersion, err = version(m)
	if err != nil {
		return result, fmt.Errorf("m.Version.preMigrationVersion: %w", err)
	}

	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("m.Up: %w", err)
	}

	result.PostVersion, err = version(m)
	if err != nil {
		return result, fmt.Errorf("m.Version.postMigrationVersion: %w", err)
	}

	return result, nil
}

func version(m *migrate.Migrate) (uint, error) {
	v, _, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	return v, err
}
