package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/sqlconfig"
)

// Applies the kv_store migrations for the configured SQL backend. The server
// does the same on startup; this is for provisioning ahead of a deploy.
func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	var (
		dialect sqlconfig.Dialect
		dsn     string
	)
	switch env.StorageBackend {
	case server_config.BackendPostgres:
		dialect, dsn = sqlconfig.DialectPostgres, env.PostgresConnectionString()
	case server_config.BackendSQLite:
		dialect, dsn = sqlconfig.DialectSQLite, env.SQLitePath
	default:
		logrus.WithField("backend", env.StorageBackend).Fatal("storage backend has no migrations")
		return
	}

	result, err := sqlconfig.Migrate(dialect, dsn)
	if err != nil {
		logrus.WithError(err).Fatal("sqlconfig.Migrate")
		return
	}

	logrus.WithFields(logrus.Fields{
		"dialect":              dialect,
		"preMigrationVersion":  result.PreVersion,
		"postMigrationVersion": result.PostVersion,
	}).Info("Migration status")
}
