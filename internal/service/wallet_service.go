package service

import (
	"context"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/wallet"
)

// WalletUpdate changes only the fields that are set.
type WalletUpdate struct {
	TotalBalance  omit.Val[decimal.Decimal]
	MonthlyBudget omit.Val[decimal.Decimal]
	Currency      omit.Val[string]
}

// SettingsUpdate changes only the fields that are set.
type SettingsUpdate struct {
	Currency               omit.Val[string]
	Notifications          omit.Val[bool]
	BudgetWarningThreshold omit.Val[int]
}

// WalletService reads and overwrites the wallet and settings singletons.
type WalletService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewWalletService(store *storage.Storage, processor ActionProcessor) *WalletService {
	return &WalletService{storage: store, processor: processor}
}

func (s *WalletService) Wallet() wallet.Wallet {
	return s.storage.Read().Wallet()
}

func (s *WalletService) SaveWallet(ctx context.Context, w wallet.Wallet) error {
	return s.processor.Process(ctx, &actions.SaveWallet{Wallet: w})
}

func (s *WalletService) UpdateWallet(ctx context.Context, update WalletUpdate) (wallet.Wallet, error) {
	action := &actions.UpdateWallet{
		TotalBalance:  update.TotalBalance,
		MonthlyBudget: update.MonthlyBudget,
		Currency:      update.Currency,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return wallet.Wallet{}, err
	}
	return action.Result, nil
}

func (s *WalletService) Settings() settings.Settings {
	return s.storage.Read().Settings()
}

func (s *WalletService) SaveSettings(ctx context.Context, st settings.Settings) error {
	return s.processor.Process(ctx, &actions.SaveSettings{Settings: st})
}

func (s *WalletService) UpdateSettings(ctx context.Context, update SettingsUpdate) (settings.Settings, error) {
	action := &actions.UpdateSettings{
		Currency:               update.Currency,
		Notifications:          update.Notifications,
		BudgetWarningThreshold: update.BudgetWarningThreshold,
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return settings.Settings{}, err
	}
	return action.Result, nil
}
