package category

import (
	"github.com/shopspring/decimal"
)

// LegacyIncomeCategoryID is the category that stored data written before
// the income flag existed treats as the income category.
const LegacyIncomeCategoryID = "9"

type Category struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Icon             string           `json:"icon"`
	Color            string           `json:"color"`
	Budget           *decimal.Decimal `json:"budget,omitempty"`
	IsIncomeCategory bool             `json:"isIncomeCategory"`
}

type List []Category

// Defaults returns the seed category set.
func Defaults() List {
	return List{
		{ID: "1", Name: "Food & Dining", Icon: "UtensilsCrossed", Color: "#FF6B6B"},
		{ID: "2", Name: "Shopping", Icon: "ShoppingBag", Color: "#4ECDC4"},
		{ID: "3", Name: "Transport", Icon: "Car", Color: "#45B7D1"},
		{ID: "4", Name: "Entertainment", Icon: "Film", Color: "#96CEB4"},
		{ID: "5", Name: "Bills & Utilities", Icon: "Receipt", Color: "#FFEAA7"},
		{ID: "6", Name: "Healthcare", Icon: "Heart", Color: "#DDA0DD"},
		{ID: "7", Name: "Education", Icon: "GraduationCap", Color: "#98D8C8"},
		{ID: "8", Name: "Savings", Icon: "PiggyBank", Color: "#6C5CE7"},
		{ID: "9", Name: "Income", Icon: "TrendingUp", Color: "#00B894", IsIncomeCategory: true},
		{ID: "10", Name: "Other", Icon: "MoreHorizontal", Color: "#B2BEC3"},
	}
}

func (l List) Find(id string) (Category, bool) {
	for _, c := range l {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Normalize flags LegacyIncomeCategoryID as the income category when no
// category in l carries the flag. The receiver is not modified.
func (l List) Normalize() List {
	for _, c := range l {
		if c.IsIncomeCategory {
			return l
		}
	}

	out := make(List, len(l))
	copy(out, l)
	for i := range out {
		if out[i].ID == LegacyIncomeCategoryID {
			out[i].IsIncomeCategory = true
		}
	}
	return out
}
