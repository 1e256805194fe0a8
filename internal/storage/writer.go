package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/kv"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

var ErrWriterClosed = errors.New("storage: writer already committed or rolled back")

// Writer stages changes on a copy of the committed state. Commit persists
// every changed document in one SetMany call and only then publishes the
// staged state; Rollback discards it. Either call releases the write slot.
type Writer struct {
	storage *Storage
	state   State
	dirty   map[string]bool
	closed  bool
}

// Write waits for the single write slot and returns a Writer over the
// current committed state.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	select {
	case s.writeSem <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &Writer{
		storage: s,
		state:   s.snapshot(),
		dirty:   make(map[string]bool),
	}, nil
}

func (w *Writer) Transactions() transaction.List {
	return w.state.Transactions
}

func (w *Writer) Wallet() wallet.Wallet {
	return w.state.Wallet
}

func (w *Writer) Categories() category.List {
	return w.state.Categories
}

func (w *Writer) Settings() settings.Settings {
	return w.state.Settings
}

func (w *Writer) InsertTransaction(t transaction.Transaction) {
	w.state.Transactions = w.state.Transactions.Append(t)
	w.dirty[KeyTransactions] = true
}

// RemoveTransaction stages the removal of id. ok is false, and nothing is
// staged, when no transaction has that id.
func (w *Writer) RemoveTransaction(id string) (removed transaction.Transaction, ok bool) {
	w.state.Transactions, removed, ok = w.state.Transactions.Remove(id)
	if ok {
		w.dirty[KeyTransactions] = true
	}
	return removed, ok
}

func (w *Writer) UpdateWallet(updated wallet.Wallet) {
	w.state.Wallet = updated
	w.dirty[KeyWallet] = true
}

func (w *Writer) UpdateSettings(updated settings.Settings) {
	w.state.Settings = updated
	w.dirty[KeySettings] = true
}

func (w *Writer) Commit(ctx context.Context) error {
	if w.closed {
		return ErrWriterClosed
	}
	defer w.release()

	if len(w.dirty) == 0 {
		return nil
	}

	entries := make([]kv.Entry, 0, len(w.dirty))
	for _, name := range documentKeys {
		if !w.dirty[name] {
			continue
		}
		raw, err := w.encode(name)
		if err != nil {
			return fmt.Errorf("encode %s: %w", name, err)
		}
		entries = append(entries, kv.Entry{Key: w.storage.key(name), Value: raw})
	}

	if err := w.storage.store.SetMany(ctx, entries); err != nil {
		w.storage.logger.WithError(err).WithField("documents", len(entries)).Error("Storage.Commit.writeFailed")
		return fmt.Errorf("persist ledger: %w", err)
	}

	w.storage.stateMu.Lock()
	w.storage.state = w.state
	w.storage.stateMu.Unlock()
	return nil
}

func (w *Writer) Rollback() error {
	if w.closed {
		return ErrWriterClosed
	}
	w.release()
	return nil
}

func (w *Writer) release() {
	w.closed = true
	<-w.storage.writeSem
}

func (w *Writer) encode(name string) ([]byte, error) {
	switch name {
	case KeyTransactions:
		return json.Marshal(w.state.Transactions)
	case KeyWallet:
		return json.Marshal(w.state.Wallet)
	case KeyCategories:
		return json.Marshal(w.state.Categories)
	case KeySettings:
		return json.Marshal(w.state.Settings)
	}
	return nil, fmt.Errorf("unknown document %q", name)
}
