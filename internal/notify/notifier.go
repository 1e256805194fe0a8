package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// BudgetWarning is raised when current-month spending reaches the
// configured share of the monthly budget.
type BudgetWarning struct {
	TransactionID string          `json:"transactionID"`
	Percent       decimal.Decimal `json:"percent"`
	Spent         decimal.Decimal `json:"spent"`
	Budget        decimal.Decimal `json:"budget"`
	Threshold     int             `json:"threshold"`
	Currency      string          `json:"currency"`
	Message       string          `json:"message"`
	OccurredAt    time.Time       `json:"occurredAt"`
}

// WarningMessage renders the user-facing text for a usage percentage.
func WarningMessage(percent decimal.Decimal) string {
	return fmt.Sprintf("You've used %s%% of your monthly budget!", percent.StringFixed(0))
}

type INotifier interface {
	NotifyBudgetWarning(ctx context.Context, warning BudgetWarning) error
}

// LogNotifier writes warnings to the application log.
type LogNotifier struct {
	logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) NotifyBudgetWarning(_ context.Context, warning BudgetWarning) error {
	n.logger.WithFields(logrus.Fields{
		"transactionID": warning.TransactionID,
		"percent":       warning.Percent.StringFixed(2),
		"spent":         warning.Spent.String(),
		"budget":        warning.Budget.String(),
		"threshold":     warning.Threshold,
	}).Warn(warning.Message)
	return nil
}

// Multi delivers each warning to every notifier, even when some fail.
type Multi []INotifier

func (m Multi) NotifyBudgetWarning(ctx context.Context, warning BudgetWarning) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyBudgetWarning(ctx, warning); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
