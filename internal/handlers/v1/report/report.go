package report

import (
	"github.com/carson-networks/budget-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/budget-tracker/internal/service"
)

type MonthlyData struct {
	Month         string                    `json:"month" doc:"Month name"`
	Year          int                       `json:"year"`
	TotalIncome   string                    `json:"totalIncome" doc:"Decimal income total"`
	TotalExpenses string                    `json:"totalExpenses" doc:"Decimal expense total"`
	Transactions  []transaction.Transaction `json:"transactions" doc:"Non-planned transactions of the month, newest first"`
}

type CategoryTotal struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	Color      string `json:"color"`
	Total      string `json:"total" doc:"Decimal all-time expense total"`
}

type Dashboard struct {
	TotalBalance       string                    `json:"totalBalance"`
	Currency           string                    `json:"currency"`
	CurrencySymbol     string                    `json:"currencySymbol"`
	MonthIncome        string                    `json:"monthIncome"`
	MonthExpenses      string                    `json:"monthExpenses"`
	MonthlyBudget      string                    `json:"monthlyBudget"`
	BudgetUsedPercent  string                    `json:"budgetUsedPercent" doc:"Zero when no budget is set"`
	BudgetRemaining    string                    `json:"budgetRemaining"`
	PlannedCount       int                       `json:"plannedCount"`
	TopCategories      []CategoryTotal           `json:"topCategories" doc:"Up to five categories by expense total"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions" doc:"Last three transactions added"`
}

type BudgetStatus struct {
	State       string `json:"state" enum:"no_budget,on_track,warning,over_budget"`
	Label       string `json:"label"`
	Spent       string `json:"spent"`
	Budget      string `json:"budget"`
	Remaining   string `json:"remaining"`
	UsedPercent string `json:"usedPercent"`
	Threshold   int    `json:"threshold"`
}

type PlannedSummary struct {
	Upcoming         []transaction.Transaction `json:"upcoming" doc:"Planned transactions dated now or later, soonest first"`
	Past             []transaction.Transaction `json:"past" doc:"Planned transactions whose date has passed, most recent first"`
	UpcomingIncome   string                    `json:"upcomingIncome"`
	UpcomingExpenses string                    `json:"upcomingExpenses"`
	Net              string                    `json:"net"`
}

func fromMonthlyData(m service.MonthlyData) MonthlyData {
	return MonthlyData{
		Month:         m.Month,
		Year:          m.Year,
		TotalIncome:   m.TotalIncome.String(),
		TotalExpenses: m.TotalExpenses.String(),
		Transactions:  transaction.FromList(m.Transactions.SortedByDateDesc()),
	}
}

func fromDashboard(d service.Dashboard) Dashboard {
	top := make([]CategoryTotal, len(d.TopCategories))
	for i, c := range d.TopCategories {
		top[i] = CategoryTotal{
			CategoryID: c.Category.ID,
			Name:       c.Category.Name,
			Icon:       c.Category.Icon,
			Color:      c.Category.Color,
			Total:      c.Total.String(),
		}
	}

	return Dashboard{
		TotalBalance:       d.TotalBalance.String(),
		Currency:           d.Currency,
		CurrencySymbol:     d.CurrencySymbol,
		MonthIncome:        d.MonthIncome.String(),
		MonthExpenses:      d.MonthExpenses.String(),
		MonthlyBudget:      d.MonthlyBudget.String(),
		BudgetUsedPercent:  d.BudgetUsedPercent.StringFixed(2),
		BudgetRemaining:    d.BudgetRemaining.String(),
		PlannedCount:       d.PlannedCount,
		TopCategories:      top,
		RecentTransactions: transaction.FromList(d.RecentTransactions),
	}
}

func fromBudgetStatus(s service.BudgetStatus) BudgetStatus {
	return BudgetStatus{
		State:       string(s.State),
		Label:       s.State.Label(),
		Spent:       s.Spent.String(),
		Budget:      s.Budget.String(),
		Remaining:   s.Remaining.String(),
		UsedPercent: s.UsedPercent.StringFixed(2),
		Threshold:   s.Threshold,
	}
}

func fromPlannedSummary(p service.PlannedSummary) PlannedSummary {
	return PlannedSummary{
		Upcoming:         transaction.FromList(p.Upcoming),
		Past:             transaction.FromList(p.Past),
		UpcomingIncome:   p.UpcomingIncome.String(),
		UpcomingExpenses: p.UpcomingExpenses.String(),
		Net:              p.Net.String(),
	}
}
