package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/carson-networks/budget-tracker/internal/storage/kv"
)

var _ kv.IKeyValueStore = (*Store)(nil)

// Store keeps each document as a plain Redis string with no expiry.
type Store struct {
	client *redis.Client
}

type Options struct {
	Address  string
	Password string
	DB       int
}

// NewStore connects and pings the server so misconfiguration fails at startup.
func NewStore(ctx context.Context, opts Options) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Address, err)
	}

	return &Store{client: client}, nil
}

func NewStoreFromClient(client *redis.Client) *Store {
	return &Store{client: client}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, kv.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// SetMany writes the entries in a single MULTI/EXEC block.
func (s *Store) SetMany(ctx context.Context, entries []kv.Entry) error {
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, entry := range entries {
			pipe.Set(ctx, entry.Key, entry.Value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis multi set: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
