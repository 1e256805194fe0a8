package storage

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/kv"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

// Document keys, before the configured prefix is applied.
const (
	KeyTransactions = "transactions"
	KeyWallet       = "wallet"
	KeyCategories   = "categories"
	KeySettings     = "settings"
)

// documentKeys fixes the order documents are written in.
var documentKeys = []string{KeyTransactions, KeyWallet, KeyCategories, KeySettings}

// State is the full ledger. Values handed out by Reader and Writer share
// backing arrays, so nothing may modify a State's slices in place.
type State struct {
	Transactions transaction.List
	Wallet       wallet.Wallet
	Categories   category.List
	Settings     settings.Settings
}

func DefaultState() State {
	return State{
		Transactions: transaction.List{},
		Wallet:       wallet.Default(),
		Categories:   category.Defaults(),
		Settings:     settings.Default(),
	}
}

// Storage owns the committed ledger state and its key-value backend.
type Storage struct {
	store     kv.IKeyValueStore
	keyPrefix string
	logger    *logrus.Logger

	stateMu sync.RWMutex
	state   State

	// writeSem admits one Writer at a time.
	writeSem chan struct{}
}

// New returns a Storage holding the default state. Call Load to read the
// persisted documents.
func New(store kv.IKeyValueStore, keyPrefix string, logger *logrus.Logger) *Storage {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Storage{
		store:     store,
		keyPrefix: keyPrefix,
		logger:    logger,
		state:     DefaultState(),
		writeSem:  make(chan struct{}, 1),
	}
}

func (s *Storage) key(name string) string {
	return s.keyPrefix + name
}

// Load reads the four documents concurrently. A document that is absent,
// unreadable or malformed falls back to its default; only cancellation of
// ctx is returned as an error.
func (s *Storage) Load(ctx context.Context) error {
	loaded := DefaultState()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		loaded.Transactions, err = loadDocument(gctx, s, KeyTransactions, transaction.List{})
		return err
	})
	g.Go(func() (err error) {
		loaded.Wallet, err = loadDocument(gctx, s, KeyWallet, wallet.Default())
		return err
	})
	g.Go(func() (err error) {
		loaded.Categories, err = loadDocument(gctx, s, KeyCategories, category.Defaults())
		return err
	})
	g.Go(func() (err error) {
		loaded.Settings, err = loadDocument(gctx, s, KeySettings, settings.Default())
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if loaded.Transactions == nil {
		loaded.Transactions = transaction.List{}
	}
	if len(loaded.Categories) == 0 {
		loaded.Categories = category.Defaults()
	}
	loaded.Categories = loaded.Categories.Normalize()
	if loaded.Wallet.Currency == "" {
		loaded.Wallet.Currency = wallet.DefaultCurrency
	}

	s.stateMu.Lock()
	s.state = loaded
	s.stateMu.Unlock()

	s.logger.WithField("transactions", len(loaded.Transactions)).Info("Storage.Load.complete")
	if s.logger.IsLevelEnabled(logrus.DebugLevel) {
		s.logger.Debug(spew.Sdump(loaded))
	}
	return nil
}

func loadDocument[T any](ctx context.Context, s *Storage, name string, fallback T) (T, error) {
	log := s.logger.WithField("key", s.key(name))

	raw, err := s.store.Get(ctx, s.key(name))
	if errors.Is(err, kv.ErrKeyNotFound) {
		log.Info("Storage.Load.default")
		return fallback, nil
	}
	if err != nil {
		if ctx.Err() != nil {
			return fallback, ctx.Err()
		}
		log.WithError(err).Error("Storage.Load.readFailed")
		return fallback, nil
	}

	var value T
	if err = json.Unmarshal(raw, &value); err != nil {
		log.WithError(err).Warn("Storage.Load.parseFailed")
		return fallback, nil
	}
	return value, nil
}

func (s *Storage) snapshot() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *Storage) Close() error {
	return s.store.Close()
}
