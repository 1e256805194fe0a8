package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/budget-tracker/internal/storage"
	"github.com/carson-networks/budget-tracker/internal/storage/category"
	"github.com/carson-networks/budget-tracker/internal/storage/transaction"
)

// CategoryOverview is a category with its current-month activity.
// BudgetRemaining is set only for categories that carry a budget.
type CategoryOverview struct {
	Category        category.Category
	MonthSpent      decimal.Decimal
	MonthReceived   decimal.Decimal
	BudgetRemaining *decimal.Decimal
}

type CategoryService struct {
	storage *storage.Storage
	clock   clock
}

func NewCategoryService(store *storage.Storage, c clock) *CategoryService {
	return &CategoryService{storage: store, clock: c}
}

func (s *CategoryService) Categories() category.List {
	return s.storage.Read().Categories()
}

func (s *CategoryService) Overview() []CategoryOverview {
	r := s.storage.Read()
	month := r.Transactions().Filter(transaction.And(transaction.Actual, transaction.InMonthOf(s.clock.Now(), s.clock.loc)))

	out := make([]CategoryOverview, 0, len(r.Categories()))
	for _, c := range r.Categories() {
		inCategory := month.Filter(transaction.InCategory(c.ID))
		overview := CategoryOverview{
			Category:      c,
			MonthSpent:    inCategory.Filter(transaction.OfType(transaction.TypeExpense)).Sum(),
			MonthReceived: inCategory.Filter(transaction.OfType(transaction.TypeIncome)).Sum(),
		}
		if c.Budget != nil {
			remaining := c.Budget.Sub(overview.MonthSpent)
			overview.BudgetRemaining = &remaining
		}
		out = append(out, overview)
	}
	return out
}
