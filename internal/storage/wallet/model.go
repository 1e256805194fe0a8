package wallet

import (
	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

var hundred = decimal.NewFromInt(100)

// Wallet holds the running balance. TotalBalance is an accumulator adjusted
// by every non-planned add and delete; it is never recomputed from history.
type Wallet struct {
	TotalBalance  decimal.Decimal `json:"totalBalance"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	Currency      string          `json:"currency"`
}

func Default() Wallet {
	return Wallet{
		TotalBalance:  decimal.Zero,
		MonthlyBudget: decimal.Zero,
		Currency:      DefaultCurrency,
	}
}

// Apply returns w with effect added to the balance.
func (w Wallet) Apply(effect decimal.Decimal) Wallet {
	w.TotalBalance = w.TotalBalance.Add(effect)
	return w
}

func (w Wallet) HasBudget() bool {
	return w.MonthlyBudget.IsPositive()
}

// BudgetUsage returns spent as a percentage of the monthly budget. Without a
// positive budget the usage is zero.
func (w Wallet) BudgetUsage(spent decimal.Decimal) decimal.Decimal {
	if !w.HasBudget() {
		return decimal.Zero
	}
	return spent.Mul(hundred).Div(w.MonthlyBudget)
}

// BudgetRemaining may be negative once the budget is exceeded.
func (w Wallet) BudgetRemaining(spent decimal.Decimal) decimal.Decimal {
	return w.MonthlyBudget.Sub(spent)
}
