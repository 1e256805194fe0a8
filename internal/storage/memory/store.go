package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/carson-networks/budget-tracker/internal/storage/kv"
)

var _ kv.IKeyValueStore = (*Store)(nil)

// Store is a process-local key-value store. Contents are lost on exit.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return slices.Clone(value), nil
}

func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, []kv.Entry{{Key: key, Value: value}})
}

func (s *Store) SetMany(ctx context.Context, entries []kv.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		s.data[entry.Key] = slices.Clone(entry.Value)
	}
	return nil
}

func (s *Store) Close() error {
	return nil
}
