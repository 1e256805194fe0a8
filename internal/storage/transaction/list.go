package transaction

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// List is an insertion-ordered transaction collection. Methods never modify
// the receiver's backing array, so a List can be shared between readers.
type List []Transaction

type Predicate func(Transaction) bool

func (l List) Filter(keep Predicate) List {
	out := make(List, 0, len(l))
	for _, t := range l {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

func (l List) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, t := range l {
		total = total.Add(t.Amount)
	}
	return total
}

func (l List) Find(id string) (Transaction, bool) {
	for _, t := range l {
		if t.ID == id {
			return t, true
		}
	}
	return Transaction{}, false
}

// Append returns a new List with t at the end.
func (l List) Append(t Transaction) List {
	out := make(List, len(l), len(l)+1)
	copy(out, l)
	return append(out, t)
}

// Remove returns a new List without the transaction with the given id and
// the removed transaction. ok is false, and l is returned as is, when no
// transaction matches.
func (l List) Remove(id string) (out List, removed Transaction, ok bool) {
	for i, t := range l {
		if t.ID != id {
			continue
		}
		out = make(List, 0, len(l)-1)
		out = append(out, l[:i]...)
		out = append(out, l[i+1:]...)
		return out, t, true
	}
	return l, Transaction{}, false
}

// Recent returns the last n transactions by insertion order, newest first.
func (l List) Recent(n int) List {
	start := max(len(l)-n, 0)
	out := slices.Clone(l[start:])
	slices.Reverse(out)
	if out == nil {
		out = List{}
	}
	return out
}

func (l List) SortedByDateDesc() List {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

func (l List) SortedByDateAsc() List {
	out := slices.Clone(l)
	slices.SortStableFunc(out, func(a, b Transaction) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

func Planned(t Transaction) bool {
	return t.IsPlanned
}

// Actual matches transactions that have been realized, the ones that count
// towards the balance and the period totals.
func Actual(t Transaction) bool {
	return !t.IsPlanned
}

func OfType(typ Type) Predicate {
	return func(t Transaction) bool {
		return t.Type == typ
	}
}

func InCategory(categoryID string) Predicate {
	return func(t Transaction) bool {
		return t.Category == categoryID
	}
}

// InMonth matches transactions dated within the calendar month in loc.
func InMonth(year int, month time.Month, loc *time.Location) Predicate {
	return func(t Transaction) bool {
		d := t.Date.In(loc)
		return d.Year() == year && d.Month() == month
	}
}

// InMonthOf matches transactions in the calendar month containing instant, in loc.
func InMonthOf(instant time.Time, loc *time.Location) Predicate {
	d := instant.In(loc)
	return InMonth(d.Year(), d.Month(), loc)
}

func OnOrAfter(instant time.Time) Predicate {
	return func(t Transaction) bool {
		return !t.Date.Before(instant)
	}
}

func Before(instant time.Time) Predicate {
	return func(t Transaction) bool {
		return t.Date.Before(instant)
	}
}

func And(predicates ...Predicate) Predicate {
	return func(t Transaction) bool {
		for _, p := range predicates {
			if !p(t) {
				return false
			}
		}
		return true
	}
}
