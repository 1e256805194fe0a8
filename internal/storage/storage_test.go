package storage

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/budget-tracker/internal/config"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/kv"
	"github.com/carson-networks/budget-tracker/internal/storage/memory"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

func newMockStorage(t *testing.T) (*Storage, *kv.MockIKeyValueStore, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	store := kv.NewMockIKeyValueStore(t)
	return New(store, "budget_", logger), store, hook
}

func sampleTransaction(id string) transaction.Transaction {
	return transaction.Transaction{
		ID:          id,
		Amount:      decimal.RequireFromString("30"),
		Category:    "1",
		Description: "Groceries",
		Date:        time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC),
		Type:        transaction.TypeExpense,
	}
}

// -- Load tests --

func TestLoad_DefaultsWhenAbsent(t *testing.T) {
	s, store, _ := newMockStorage(t)
	store.EXPECT().Get(mock.Anything, mock.Anything).Return(nil, kv.ErrKeyNotFound).Times(4)

	require.NoError(t, s.Load(context.Background()))

	r := s.Read()
	assert.Empty(t, r.Transactions())
	assert.NotNil(t, r.Transactions())
	assert.Equal(t, wallet.Default(), r.Wallet())
	assert.Equal(t, category.Defaults(), r.Categories())
	assert.Equal(t, settings.Default(), r.Settings())
}

func TestLoad_UsesPrefixedKeys(t *testing.T) {
	s, store, _ := newMockStorage(t)
	for _, key := range []string{"budget_transactions", "budget_wallet", "budget_categories", "budget_settings"} {
		store.EXPECT().Get(mock.Anything, key).Return(nil, kv.ErrKeyNotFound).Once()
	}

	require.NoError(t, s.Load(context.Background()))
}

func TestLoad_ParsesStoredDocuments(t *testing.T) {
	s, store, _ := newMockStorage(t)
	store.EXPECT().Get(mock.Anything, "budget_transactions").
		Return([]byte(`[{"id":"1717000000000","amount":12.5,"category":"1","description":"Lunch","date":"2024-05-29T12:00:00.000Z","type":"expense","isPlanned":false}]`), nil)
	store.EXPECT().Get(mock.Anything, "budget_wallet").
		Return([]byte(`{"totalBalance":987.5,"monthlyBudget":1500,"currency":"EUR"}`), nil)
	store.EXPECT().Get(mock.Anything, "budget_categories").
		Return([]byte(`[{"id":"1","name":"Food","icon":"UtensilsCrossed","color":"#FF6B6B"},{"id":"9","name":"Income","icon":"TrendingUp","color":"#00B894"}]`), nil)
	store.EXPECT().Get(mock.Anything, "budget_settings").
		Return([]byte(`{"currency":"EUR","notifications":false,"budgetWarningThreshold":90}`), nil)

	require.NoError(t, s.Load(context.Background()))

	r := s.Read()
	require.Len(t, r.Transactions(), 1)
	assert.Equal(t, "1717000000000", r.Transactions()[0].ID)
	assert.Equal(t, "987.5", r.Wallet().TotalBalance.String())
	assert.Equal(t, "EUR", r.Wallet().Currency)
	require.Len(t, r.Categories(), 2)
	assert.True(t, r.Categories()[1].IsIncomeCategory)
	assert.Equal(t, settings.Settings{Currency: "EUR", Notifications: false, BudgetWarningThreshold: 90}, r.Settings())
}

func TestLoad_FallsBackOnCorruptOrUnreadableDocuments(t *testing.T) {
	s, store, hook := newMockStorage(t)
	store.EXPECT().Get(mock.Anything, "budget_transactions").Return([]byte(`[{"id":`), nil)
	store.EXPECT().Get(mock.Anything, "budget_wallet").Return(nil, errors.New("disk on fire"))
	store.EXPECT().Get(mock.Anything, "budget_categories").Return([]byte(`null`), nil)
	store.EXPECT().Get(mock.Anything, "budget_settings").Return([]byte(`"nope"`), nil)

	require.NoError(t, s.Load(context.Background()))

	r := s.Read()
	assert.Empty(t, r.Transactions())
	assert.Equal(t, wallet.Default(), r.Wallet())
	assert.Equal(t, category.Defaults(), r.Categories())
	assert.Equal(t, settings.Default(), r.Settings())

	var warnings, errs int
	for _, entry := range hook.AllEntries() {
		switch entry.Level {
		case logrus.WarnLevel:
			warnings++
		case logrus.ErrorLevel:
			errs++
		}
	}
	assert.Equal(t, 2, warnings)
	assert.Equal(t, 1, errs)
}

func TestLoad_CancelledContext(t *testing.T) {
	s := New(memory.NewStore(), "budget_", nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Load(ctx), context.Canceled)
}

// -- Writer tests --

func TestWriter_CommitPersistsThenPublishes(t *testing.T) {
	store := memory.NewStore()
	s := New(store, "budget_", nil)
	ctx := context.Background()

	w, err := s.Write(ctx)
	require.NoError(t, err)
	w.InsertTransaction(sampleTransaction("a"))
	w.UpdateWallet(w.Wallet().Apply(decimal.NewFromInt(-30)))

	// Staged changes are invisible to readers until commit.
	assert.Empty(t, s.Read().Transactions())

	require.NoError(t, w.Commit(ctx))
	assert.Len(t, s.Read().Transactions(), 1)
	assert.Equal(t, "-30", s.Read().Wallet().TotalBalance.String())

	// A fresh Storage over the same backend sees the committed documents.
	reloaded := New(store, "budget_", nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, "a", reloaded.Read().Transactions()[0].ID)
	assert.Equal(t, "-30", reloaded.Read().Wallet().TotalBalance.String())

	_, err = store.Get(ctx, "budget_categories")
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func TestWriter_CommitWritesOnlyDirtyDocumentsInOrder(t *testing.T) {
	s, store, _ := newMockStorage(t)
	store.EXPECT().SetMany(mock.Anything, mock.MatchedBy(func(entries []kv.Entry) bool {
		return len(entries) == 2 &&
			entries[0].Key == "budget_transactions" &&
			entries[1].Key == "budget_wallet"
	})).Return(nil).Once()

	w, err := s.Write(context.Background())
	require.NoError(t, err)
	w.UpdateWallet(w.Wallet().Apply(decimal.NewFromInt(5)))
	w.InsertTransaction(sampleTransaction("a"))

	require.NoError(t, w.Commit(context.Background()))
}

func TestWriter_CommitFailureKeepsCommittedState(t *testing.T) {
	s, store, hook := newMockStorage(t)
	store.EXPECT().SetMany(mock.Anything, mock.Anything).Return(errors.New("connection reset")).Once()

	w, err := s.Write(context.Background())
	require.NoError(t, err)
	w.InsertTransaction(sampleTransaction("a"))
	w.UpdateWallet(w.Wallet().Apply(decimal.NewFromInt(-30)))

	err = w.Commit(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	assert.Empty(t, s.Read().Transactions())
	assert.True(t, s.Read().Wallet().TotalBalance.IsZero())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)

	// The write slot is released after a failed commit.
	w2, err := s.Write(context.Background())
	require.NoError(t, err)
	assert.NoError(t, w2.Rollback())
}

func TestWriter_NoChangesSkipsBackend(t *testing.T) {
	s, _, _ := newMockStorage(t)

	w, err := s.Write(context.Background())
	require.NoError(t, err)
	_, ok := w.RemoveTransaction("missing")
	assert.False(t, ok)

	assert.NoError(t, w.Commit(context.Background()))
}

func TestWriter_RollbackDiscards(t *testing.T) {
	s := New(memory.NewStore(), "budget_", nil)

	w, err := s.Write(context.Background())
	require.NoError(t, err)
	w.InsertTransaction(sampleTransaction("a"))
	require.NoError(t, w.Rollback())

	assert.Empty(t, s.Read().Transactions())
	assert.ErrorIs(t, w.Commit(context.Background()), ErrWriterClosed)
	assert.ErrorIs(t, w.Rollback(), ErrWriterClosed)
}

func TestWrite_SingleWriterAtATime(t *testing.T) {
	s := New(memory.NewStore(), "budget_", nil)

	first, err := s.Write(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = s.Write(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Rollback())

	second, err := s.Write(context.Background())
	require.NoError(t, err)
	require.NoError(t, second.Rollback())
}

func TestWriter_ConcurrentWritersDoNotLoseUpdates(t *testing.T) {
	s := New(memory.NewStore(), "budget_", nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w, err := s.Write(ctx)
			if !assert.NoError(t, err) {
				return
			}
			w.UpdateWallet(w.Wallet().Apply(decimal.RequireFromString("1.10")))
			assert.NoError(t, w.Commit(ctx))
		}()
	}
	wg.Wait()

	assert.Equal(t, "55", s.Read().Wallet().TotalBalance.String())
}

// -- Backend selection --

func TestNewStorage_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	env := &config.Config{
		StorageBackend:   config.BackendSQLite,
		StorageKeyPrefix: "budget_",
		SQLitePath:       filepath.Join(t.TempDir(), "data", "budget.db"),
	}

	s, err := NewStorage(ctx, env, nil)
	require.NoError(t, err)

	w, err := s.Write(ctx)
	require.NoError(t, err)
	w.InsertTransaction(sampleTransaction("a"))
	w.UpdateSettings(settings.Settings{Currency: "GBP", Notifications: true, BudgetWarningThreshold: 70})
	require.NoError(t, w.Commit(ctx))
	require.NoError(t, s.Close())

	reopened, err := NewStorage(ctx, env, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	assert.Len(t, reopened.Read().Transactions(), 1)
	assert.Equal(t, "GBP", reopened.Read().Settings().Currency)
}

func TestOpenKeyValueStore_Memory(t *testing.T) {
	store, err := OpenKeyValueStore(context.Background(), &config.Config{StorageBackend: config.BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &memory.Store{}, store)
}

func TestOpenKeyValueStore_Unknown(t *testing.T) {
	_, err := OpenKeyValueStore(context.Background(), &config.Config{StorageBackend: "tape"}, nil)
	assert.Error(t, err)
}
