package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/operator/actions"
	"github.com/carson-networks/budget-tracker/internal/storage"
)

// ActionProcessor runs mutations one at a time against storage.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type Options struct {
	// Location decides which calendar month a timestamp falls in. Defaults to UTC.
	Location *time.Location
	// Now defaults to time.Now.
	Now    func() time.Time
	Logger *logrus.Logger
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Wallet      *WalletService
	Category    *CategoryService
	Report      *ReportService
}

// NewService creates a new Service. Reads come straight from store;
// mutations are submitted to processor.
func NewService(store *storage.Storage, processor ActionProcessor, notifier notify.INotifier, opts Options) *Service {
	c := newClock(opts)
	logger := opts.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Service{
		Transaction: NewTransactionService(store, processor, notifier, c, logger),
		Wallet:      NewWalletService(store, processor),
		Category:    NewCategoryService(store, c),
		Report:      NewReportService(store, c),
	}
}

type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(opts Options) clock {
	c := clock{now: opts.Now, loc: opts.Location}
	if c.now == nil {
		c.now = time.Now
	}
	if c.loc == nil {
		c.loc = time.UTC
	}
	return c
}

// Now returns the current time in the ledger's location.
func (c clock) Now() time.Time {
	return c.now().In(c.loc)
}
