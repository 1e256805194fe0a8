package actions

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/apperrors"
	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// AddTransaction appends a transaction and, unless it is planned, moves the
// wallet balance by its amount. After Perform, Created holds the stored
// transaction and Warning is set when the expense pushed current-month
// spending to the warning threshold.
type AddTransaction struct {
	Amount      decimal.Decimal
	Category    string
	Description string
	Date        time.Time // defaults to Now if zero
	Type        transaction.Type
	IsPlanned   bool

	Now      time.Time
	Location *time.Location

	Created transaction.Transaction
	Warning *notify.BudgetWarning

	IAction
}

func (a *AddTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	now := a.Now
	if now.IsZero() {
		now = time.Now()
	}
	loc := a.Location
	if loc == nil {
		loc = time.UTC
	}
	date := a.Date
	if date.IsZero() {
		date = now
	}

	if err := a.validate(writer.Categories(), date, now); err != nil {
		return err
	}

	id, err := transaction.NewID()
	if err != nil {
		return err
	}

	created := transaction.Transaction{
		ID:          id,
		Amount:      a.Amount,
		Category:    a.Category,
		Description: strings.TrimSpace(a.Description),
		Date:        date,
		Type:        a.Type,
		IsPlanned:   a.IsPlanned,
	}

	writer.InsertTransaction(created)
	if !created.IsPlanned {
		writer.UpdateWallet(writer.Wallet().Apply(created.BalanceEffect()))
	}

	a.Created = created
	a.Warning = budgetWarning(writer, created, now, loc)
	return nil
}

func (a *AddTransaction) validate(categories category.List, date, now time.Time) error {
	vErr := apperrors.NewValidationError()

	if !a.Amount.IsPositive() {
		vErr.Add("amount", apperrors.ErrInvalidAmount)
	}
	if strings.TrimSpace(a.Description) == "" {
		vErr.Add("description", apperrors.ErrEmptyDescription)
	}
	if !a.Type.Valid() {
		vErr.Add("type", apperrors.ErrInvalidTransactionType)
	}

	cat, ok := categories.Find(a.Category)
	switch {
	case !ok:
		vErr.Add("category", apperrors.ErrUnknownCategory)
	case a.Type == transaction.TypeIncome && !cat.IsIncomeCategory,
		a.Type == transaction.TypeExpense && cat.IsIncomeCategory:
		vErr.Add("category", apperrors.ErrCategoryTypeMismatch)
	}

	if a.IsPlanned && !date.After(now) {
		vErr.Add("date", apperrors.ErrPlannedDateNotInFuture)
	}

	return vErr.ErrOrNil()
}

func budgetWarning(writer *storage.Writer, created transaction.Transaction, now time.Time, loc *time.Location) *notify.BudgetWarning {
	if created.Type != transaction.TypeExpense || created.IsPlanned {
		return nil
	}

	current := writer.Settings()
	w := writer.Wallet()
	if !current.Notifications || !w.HasBudget() {
		return nil
	}

	spent := writer.Transactions().
		Filter(transaction.And(transaction.Actual, transaction.OfType(transaction.TypeExpense), transaction.InMonthOf(now, loc))).
		Sum()
	percent := w.BudgetUsage(spent)
	if percent.LessThan(decimal.NewFromInt(int64(current.BudgetWarningThreshold))) {
		return nil
	}

	return &notify.BudgetWarning{
		TransactionID: created.ID,
		Percent:       percent,
		Spent:         spent,
		Budget:        w.MonthlyBudget,
		Threshold:     current.BudgetWarningThreshold,
		Currency:      current.Currency,
		Message:       notify.WarningMessage(percent),
		OccurredAt:    now,
	}
}
