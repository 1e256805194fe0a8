package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when nothing is stored under the key.
var ErrKeyNotFound = errors.New("kv: key not found")

type Entry struct {
	Key   string
	Value []byte
}

// IKeyValueStore persists opaque JSON documents by key. SetMany writes all
// entries or none of them.
//
//go:generate mockery --name IKeyValueStore --inpackage --with-expecter
type IKeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, entries []Entry) error
	Close() error
}
