package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// MonthlyData summarizes the realized transactions of one calendar month.
type MonthlyData struct {
	Month         string
	Year          int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Transactions  transaction.List
}

type CategoryTotal struct {
	Category category.Category
	Total    decimal.Decimal
}

type Dashboard struct {
	TotalBalance decimal.Decimal
	// Currency is the display currency from settings.
	Currency           string
	CurrencySymbol     string
	MonthIncome        decimal.Decimal
	MonthExpenses      decimal.Decimal
	MonthlyBudget      decimal.Decimal
	BudgetUsedPercent  decimal.Decimal
	BudgetRemaining    decimal.Decimal
	PlannedCount       int
	TopCategories      []CategoryTotal
	RecentTransactions transaction.List
}

type BudgetState string

const (
	BudgetStateNoBudget   BudgetState = "no_budget"
	BudgetStateOnTrack    BudgetState = "on_track"
	BudgetStateWarning    BudgetState = "warning"
	BudgetStateOverBudget BudgetState = "over_budget"
)

func (s BudgetState) Label() string {
	switch s {
	case BudgetStateOverBudget:
		return "Over Budget!"
	case BudgetStateWarning:
		return "Budget Warning"
	case BudgetStateOnTrack:
		return "On Track"
	}
	return "No Budget Set"
}

type BudgetStatus struct {
	State       BudgetState
	Spent       decimal.Decimal
	Budget      decimal.Decimal
	Remaining   decimal.Decimal
	UsedPercent decimal.Decimal
	Threshold   int
}

// PlannedSummary splits planned transactions around now. Upcoming is
// soonest first, Past is most recent first; totals cover Upcoming only.
type PlannedSummary struct {
	Upcoming         transaction.List
	Past             transaction.List
	UpcomingIncome   decimal.Decimal
	UpcomingExpenses decimal.Decimal
	Net              decimal.Decimal
}
