package transaction

import (
	"time"

	"github.com/carson-networks/budget-tracker/internal/notify"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction id"`
	Amount      string `json:"amount" doc:"Decimal amount, always positive"`
	Category    string `json:"category" doc:"Category id"`
	Description string `json:"description" doc:"Description of the transaction"`
	Date        string `json:"date" doc:"RFC3339 transaction date"`
	Type        string `json:"type" enum:"expense,income" doc:"Transaction type"`
	IsPlanned   bool   `json:"isPlanned" doc:"Planned transactions do not move the balance"`
}

// BudgetWarning is returned alongside an expense that reached the warning threshold.
type BudgetWarning struct {
	Message   string `json:"message" doc:"User-facing warning text"`
	Percent   string `json:"percent" doc:"Share of the monthly budget spent this month"`
	Spent     string `json:"spent" doc:"Current-month expenses"`
	Budget    string `json:"budget" doc:"Monthly budget"`
	Threshold int    `json:"threshold" doc:"Configured warning threshold in percent"`
}

func fromModel(t transaction.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Amount:      t.Amount.String(),
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.Format(time.RFC3339),
		Type:        string(t.Type),
		IsPlanned:   t.IsPlanned,
	}
}

// FromList converts a transaction list to response models.
func FromList(list transaction.List) []Transaction {
	out := make([]Transaction, len(list))
	for i, t := range list {
		out[i] = fromModel(t)
	}
	return out
}

func fromWarning(w *notify.BudgetWarning) *BudgetWarning {
	if w == nil {
		return nil
	}
	return &BudgetWarning{
		Message:   w.Message,
		Percent:   w.Percent.StringFixed(2),
		Spent:     w.Spent.String(),
		Budget:    w.Budget.String(),
		Threshold: w.Threshold,
	}
}
