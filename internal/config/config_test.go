package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessEnvironmentVariables_Defaults(t *testing.T) {
	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "9446", env.Port)
	assert.Equal(t, BackendSQLite, env.StorageBackend)
	assert.Equal(t, "budget_", env.StorageKeyPrefix)
	assert.Equal(t, logrus.InfoLevel, env.LogLevel)
	assert.Equal(t, time.UTC, env.Location)
	assert.Equal(t, 1, env.OperatorWorkers)
	assert.Equal(t, []string{"*"}, env.CORSAllowedOrigins)
	assert.Empty(t, env.AMQPURL)
}

func TestProcessEnvironmentVariables_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LEDGER_TIMEZONE", "Europe/Berlin")
	t.Setenv("OPERATOR_WORKERS", "4")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("POSTGRES_ADDRESS", "db")

	env, err := ProcessEnvironmentVariables()
	require.NoError(t, err)

	assert.Equal(t, "8080", env.Port)
	assert.Equal(t, BackendRedis, env.StorageBackend)
	assert.Equal(t, 3, env.RedisDB)
	assert.Equal(t, logrus.DebugLevel, env.LogLevel)
	assert.Equal(t, "Europe/Berlin", env.Location.String())
	assert.Equal(t, 4, env.OperatorWorkers)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, env.CORSAllowedOrigins)
	assert.Equal(t, "postgres://postgres:testpassword@db:5433/postgres?sslmode=disable", env.PostgresConnectionString())
}

func TestProcessEnvironmentVariables_InvalidValues(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "floppy")
	t.Setenv("OPERATOR_WORKERS", "0")
	t.Setenv("LOG_LEVEL", "loud")

	env, err := ProcessEnvironmentVariables()
	assert.Nil(t, env)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BACKEND")
	assert.Contains(t, err.Error(), "OPERATOR_WORKERS")
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}
