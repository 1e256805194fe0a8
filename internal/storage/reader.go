package storage

import (
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

// Reader is an immutable snapshot of the committed state.
type Reader struct {
	state State
}

func (s *Storage) Read() *Reader {
	return &Reader{state: s.snapshot()}
}

func (r *Reader) Transactions() transaction.List {
	return r.state.Transactions
}

func (r *Reader) Wallet() wallet.Wallet {
	return r.state.Wallet
}

func (r *Reader) Categories() category.List {
	return r.state.Categories
}

func (r *Reader) Settings() settings.Settings {
	return r.state.Settings
}
