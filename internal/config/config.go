package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port     string
	LogLevel logrus.Level

	StorageBackend   string
	StorageKeyPrefix string

	SQLitePath string

	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	RedisAddress  string
	RedisPassword string
	RedisDB       int

	AMQPURL        string
	AMQPExchange   string
	AMQPRoutingKey string

	CORSAllowedOrigins []string
	Location           *time.Location
	OperatorWorkers    int
}

func ProcessEnvironmentVariables() (*Config, error) {
	// A missing .env file is fine, the process environment still applies.
	_ = godotenv.Load()

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		Port:     "9446",
		LogLevel: logrus.InfoLevel,

		StorageBackend:   BackendSQLite,
		StorageKeyPrefix: "budget_",

		SQLitePath: "budget.db",

		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",

		RedisAddress: "localhost:6379",

		AMQPExchange:   "budget",
		AMQPRoutingKey: "budget.warning",

		CORSAllowedOrigins: []string{"*"},
		Location:           time.UTC,
		OperatorWorkers:    1,
	}

	var errs []error

	setString(&env.Port, "PORT")
	setString(&env.StorageBackend, "STORAGE_BACKEND")
	setString(&env.StorageKeyPrefix, "STORAGE_KEY_PREFIX")
	setString(&env.SQLitePath, "SQLITE_PATH")
	setString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&env.PostgresPort, "POSTGRES_PORT")
	setString(&env.PostgresDB, "POSTGRES_DB")
	setString(&env.PostgresUsername, "POSTGRES_USERNAME")
	setString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&env.RedisAddress, "REDIS_ADDRESS")
	setString(&env.RedisPassword, "REDIS_PASSWORD")
	setString(&env.AMQPURL, "AMQP_URL")
	setString(&env.AMQPExchange, "AMQP_EXCHANGE")
	setString(&env.AMQPRoutingKey, "AMQP_ROUTING_KEY")

	if v := os.Getenv("LOG_LEVEL"); len(v) != 0 {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: %w", err))
		} else {
			env.LogLevel = level
		}
	}

	if v := os.Getenv("REDIS_DB"); len(v) != 0 {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			errs = append(errs, fmt.Errorf("REDIS_DB: must be a non-negative integer, got %q", v))
		} else {
			env.RedisDB = db
		}
	}

	if v := os.Getenv("OPERATOR_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil || workers < 1 {
			errs = append(errs, fmt.Errorf("OPERATOR_WORKERS: must be a positive integer, got %q", v))
		} else {
			env.OperatorWorkers = workers
		}
	}

	if v := os.Getenv("LEDGER_TIMEZONE"); len(v) != 0 {
		loc, err := time.LoadLocation(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("LEDGER_TIMEZONE: %w", err))
		} else {
			env.Location = loc
		}
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); len(v) != 0 {
		env.CORSAllowedOrigins = splitList(v)
	}

	switch env.StorageBackend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		errs = append(errs, fmt.Errorf("STORAGE_BACKEND: unknown backend %q", env.StorageBackend))
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration validation failed: %w", errors.Join(errs...))
	}

	return &env, nil
}

// PostgresConnectionString builds the lib/pq URL for the configured database.
func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}

func setString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
