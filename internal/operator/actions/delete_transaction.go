package actions

import (
	"context"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// DeleteTransaction removes a transaction and reverses its balance effect.
// An unknown ID is a no-op and leaves Removed nil.
type DeleteTransaction struct {
	ID string

	Removed *transaction.Transaction

	IAction
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	removed, ok := writer.RemoveTransaction(d.ID)
	if !ok {
		return nil
	}

	if !removed.IsPlanned {
		writer.UpdateWallet(writer.Wallet().Apply(removed.BalanceEffect().Neg()))
	}

	d.Removed = &removed
	return nil
}
