package transaction

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Type string

const (
	TypeExpense Type = "expense"
	TypeIncome  Type = "income"
)

func (t Type) Valid() bool {
	return t == TypeExpense || t == TypeIncome
}

// Transaction is a single ledger entry. Entries are immutable; the only way
// to change one is to delete it.
type Transaction struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Date        time.Time       `json:"date"`
	Type        Type            `json:"type"`
	IsPlanned   bool            `json:"isPlanned"`
}

// BalanceEffect is the signed change t applies to the wallet balance when
// added. Planned transactions have no effect.
func (t Transaction) BalanceEffect() decimal.Decimal {
	if t.IsPlanned {
		return decimal.Zero
	}
	if t.Type == TypeIncome {
		return t.Amount
	}
	return t.Amount.Neg()
}

// NewID returns a fresh time-ordered identifier.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("transaction.NewID: %w", err)
	}
	return id.String(), nil
}
