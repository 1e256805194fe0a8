package actions

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

// SaveWallet overwrites the wallet.
type SaveWallet struct {
	Wallet wallet.Wallet

	IAction
}

func (s *SaveWallet) Perform(ctx context.Context, writer *storage.Writer) error {
	writer.UpdateWallet(s.Wallet)
	return nil
}

// UpdateWallet overwrites only the fields that are set. Result holds the
// wallet as saved.
type UpdateWallet struct {
	TotalBalance  omit.Val[decimal.Decimal]
	MonthlyBudget omit.Val[decimal.Decimal]
	Currency      omit.Val[string]

	Result wallet.Wallet

	IAction
}

func (u *UpdateWallet) Perform(ctx context.Context, writer *storage.Writer) error {
	updated := writer.Wallet()
	if v, ok := u.TotalBalance.Get(); ok {
		updated.TotalBalance = v
	}
	if v, ok := u.MonthlyBudget.Get(); ok {
		updated.MonthlyBudget = v
	}
	if v, ok := u.Currency.Get(); ok {
		updated.Currency = v
	}

	writer.UpdateWallet(updated)
	u.Result = updated
	return nil
}
