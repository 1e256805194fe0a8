package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// TransactionDraft is the caller-supplied part of a new transaction.
type TransactionDraft struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time // defaults to now if zero
	Type        transaction.Type
	IsPlanned   bool
}

type AddTransactionResult struct {
	Transaction transaction.Transaction
	Warning     *notify.BudgetWarning
}

// TransactionService handles transaction mutations and listings.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
	notifier  notify.INotifier
	clock     clock
	logger    *logrus.Logger
}

func NewTransactionService(store *storage.Storage, processor ActionProcessor, notifier notify.INotifier, c clock, logger *logrus.Logger) *TransactionService {
	return &TransactionService{
		storage:   store,
		processor: processor,
		notifier:  notifier,
		clock:     c,
		logger:    logger,
	}
}

// AddTransaction stores a new transaction. A budget warning raised by the
// addition is sent to the notifier and returned; a failed notification is
// logged and does not fail the call.
func (s *TransactionService) AddTransaction(ctx context.Context, draft TransactionDraft) (*AddTransactionResult, error) {
	action := &actions.AddTransaction{
		Amount:      draft.Amount,
		Category:    draft.Category,
		Description: draft.Description,
		Date:        draft.Date,
		Type:        draft.Type,
		IsPlanned:   draft.IsPlanned,
		Now:         s.clock.Now(),
		Location:    s.clock.loc,
	}

	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	if action.Warning != nil && s.notifier != nil {
		if err := s.notifier.NotifyBudgetWarning(ctx, *action.Warning); err != nil {
			s.logger.WithError(err).WithField("transactionID", action.Created.ID).
				Warn("TransactionService.AddTransaction.notifyFailed")
		}
	}

	return &AddTransactionResult{
		Transaction: action.Created,
		Warning:     action.Warning,
	}, nil
}

// DeleteTransaction removes the transaction with id. Deleting an unknown id
// succeeds with removed set to false.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) (removed bool, err error) {
	action := &actions.DeleteTransaction{ID: id}
	if err = s.processor.Process(ctx, action); err != nil {
		return false, err
	}
	return action.Removed != nil, nil
}

// ListTransactions returns every transaction in insertion order.
func (s *TransactionService) ListTransactions() transaction.List {
	return s.storage.Read().Transactions()
}

func (s *TransactionService) PlannedTransactions() transaction.List {
	return s.storage.Read().Transactions().Filter(transaction.Planned)
}

func (s *TransactionService) TransactionsByCategory(categoryID string) transaction.List {
	return s.storage.Read().Transactions().
		Filter(transaction.And(transaction.Actual, transaction.InCategory(categoryID)))
}
