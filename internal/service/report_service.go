package service

import (
	"fmt"
	"slices"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/apperrors"
	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/settings"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

const (
	topCategoryCount       = 5
	recentTransactionCount = 3
)

var hundred = decimal.NewFromInt(100)

// ReportService answers aggregate queries over a snapshot of the ledger.
type ReportService struct {
	storage *storage.Storage
	clock   clock
}

func NewReportService(store *storage.Storage, c clock) *ReportService {
	return &ReportService{storage: store, clock: c}
}

func (s *ReportService) CurrentMonthExpenses() decimal.Decimal {
	return s.currentMonthTotal(s.storage.Read().Transactions(), transaction.TypeExpense)
}

func (s *ReportService) CurrentMonthIncome() decimal.Decimal {
	return s.currentMonthTotal(s.storage.Read().Transactions(), transaction.TypeIncome)
}

func (s *ReportService) currentMonthTotal(txs transaction.List, typ transaction.Type) decimal.Decimal {
	return txs.Filter(transaction.And(
		transaction.Actual,
		transaction.OfType(typ),
		transaction.InMonthOf(s.clock.Now(), s.clock.loc),
	)).Sum()
}

// MonthlyData returns the realized transactions dated in month of year.
func (s *ReportService) MonthlyData(month time.Month, year int) (MonthlyData, error) {
	if month < time.January || month > time.December {
		return MonthlyData{}, fmt.Errorf("monthly data for %d: %w", month, apperrors.ErrInvalidMonth)
	}

	inMonth := s.storage.Read().Transactions().
		Filter(transaction.And(transaction.Actual, transaction.InMonth(year, month, s.clock.loc)))

	return MonthlyData{
		Month:         month.String(),
		Year:          year,
		TotalIncome:   inMonth.Filter(transaction.OfType(transaction.TypeIncome)).Sum(),
		TotalExpenses: inMonth.Filter(transaction.OfType(transaction.TypeExpense)).Sum(),
		Transactions:  inMonth,
	}, nil
}

func (s *ReportService) Dashboard() Dashboard {
	r := s.storage.Read()
	txs := r.Transactions()
	w := r.Wallet()
	currency := r.Settings().Currency
	expenses := s.currentMonthTotal(txs, transaction.TypeExpense)

	return Dashboard{
		TotalBalance:       w.TotalBalance,
		Currency:           currency,
		CurrencySymbol:     settings.Symbol(currency),
		MonthIncome:        s.currentMonthTotal(txs, transaction.TypeIncome),
		MonthExpenses:      expenses,
		MonthlyBudget:      w.MonthlyBudget,
		BudgetUsedPercent:  w.BudgetUsage(expenses),
		BudgetRemaining:    w.BudgetRemaining(expenses),
		PlannedCount:       len(txs.Filter(transaction.Planned)),
		TopCategories:      s.topCategories(r),
		RecentTransactions: txs.Recent(recentTransactionCount),
	}
}

// topCategories ranks categories by all-time realized expense, dropping
// categories with nothing spent. Ties keep category order.
func (s *ReportService) topCategories(r *storage.Reader) []CategoryTotal {
	expenses := r.Transactions().Filter(transaction.And(transaction.Actual, transaction.OfType(transaction.TypeExpense)))

	totals := make([]CategoryTotal, 0, len(r.Categories()))
	for _, c := range r.Categories() {
		total := expenses.Filter(transaction.InCategory(c.ID)).Sum()
		if total.IsPositive() {
			totals = append(totals, CategoryTotal{Category: c, Total: total})
		}
	}

	slices.SortStableFunc(totals, func(a, b CategoryTotal) int {
		return b.Total.Cmp(a.Total)
	})
	if len(totals) > topCategoryCount {
		totals = totals[:topCategoryCount]
	}
	return totals
}

func (s *ReportService) BudgetStatus() BudgetStatus {
	r := s.storage.Read()
	w := r.Wallet()
	threshold := r.Settings().BudgetWarningThreshold
	spent := s.currentMonthTotal(r.Transactions(), transaction.TypeExpense)
	used := w.BudgetUsage(spent)

	state := BudgetStateOnTrack
	switch {
	case !w.HasBudget():
		state = BudgetStateNoBudget
	case used.GreaterThan(hundred):
		state = BudgetStateOverBudget
	case used.GreaterThanOrEqual(decimal.NewFromInt(int64(threshold))):
		state = BudgetStateWarning
	}

	return BudgetStatus{
		State:       state,
		Spent:       spent,
		Budget:      w.MonthlyBudget,
		Remaining:   w.BudgetRemaining(spent),
		UsedPercent: used,
		Threshold:   threshold,
	}
}

func (s *ReportService) PlannedSummary() PlannedSummary {
	now := s.clock.Now()
	planned := s.storage.Read().Transactions().Filter(transaction.Planned)

	upcoming := planned.Filter(transaction.OnOrAfter(now)).SortedByDateAsc()
	income := upcoming.Filter(transaction.OfType(transaction.TypeIncome)).Sum()
	expenses := upcoming.Filter(transaction.OfType(transaction.TypeExpense)).Sum()

	return PlannedSummary{
		Upcoming:         upcoming,
		Past:             planned.Filter(transaction.Before(now)).SortedByDateDesc(),
		UpcomingIncome:   income,
		UpcomingExpenses: expenses,
		Net:              income.Sub(expenses),
	}
}
