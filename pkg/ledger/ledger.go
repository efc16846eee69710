// Package ledger holds the ordered transaction list of a budget sheet and
// every aggregate derived from it. All derived values are recomputed on each
// call: the list stays in the dozens of rows, so recomputation is simpler and
// safer than incremental bookkeeping.
package ledger

import (
	"fmt"
	"math"
)

// Field names a mutable transaction attribute for Update.
type Field string

const (
	FieldDescription Field = "description"
	FieldCategory    Field = "category"
	FieldIncome      Field = "income"
	FieldExpense     Field = "expense"
)

// SuggestFunc proposes a category id for a description. The boolean reports
// whether a suggestion should be applied.
type SuggestFunc func(description string) (categoryID string, ok bool)

// Ledger is the ordered transaction sequence. The first row is the income
// anchor: it carries the period's total inflow and can never be removed.
type Ledger struct {
	transactions []Transaction
}

// HeadDescription is the label of the seeded income anchor row.
const HeadDescription = "Penghasilan"

// New returns a ledger holding only the income anchor.
func New() *Ledger {
	return &Ledger{transactions: []Transaction{newTransaction(HeadDescription)}}
}

// FromTransactions rebuilds a ledger from persisted rows. An empty list is
// re-seeded with the income anchor so the head-row invariant survives
// malformed documents.
func FromTransactions(transactions []Transaction) *Ledger {
	if len(transactions) == 0 {
		return New()
	}
	return &Ledger{transactions: append([]Transaction(nil), transactions...)}
}

// Append adds a zero-valued uncategorized row at the end and returns it.
func (l *Ledger) Append() Transaction {
	t := newTransaction("")
	l.transactions = append(l.transactions, t)
	return t
}

// Update applies a single-field mutation to the transaction with the given
// id. Editing the description consults suggest and overwrites the category
// only on a confirmed suggestion; an unmatched description leaves the
// existing category untouched. Numeric fields coerce through CoerceAmount.
// An unknown id or field is a no-op reporting false.
func (l *Ledger) Update(id string, field Field, value string, suggest SuggestFunc) (Transaction, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return Transaction{}, false
	}
	t := &l.transactions[idx]
	switch field {
	case FieldDescription:
		t.Description = value
		if suggest != nil {
			if categoryID, ok := suggest(value); ok {
				t.CategoryID = categoryID
			}
		}
	case FieldCategory:
		t.CategoryID = value
	case FieldIncome:
		t.Income = CoerceAmount(value)
	case FieldExpense:
		t.Expense = CoerceAmount(value)
	default:
		return Transaction{}, false
	}
	return *t, true
}

// Remove deletes the row with the given id. The head row is structurally
// permanent: removing it reports false and leaves the ledger unchanged, as
// does an unknown id.
func (l *Ledger) Remove(id string) bool {
	idx := l.indexOf(id)
	if idx <= 0 {
		return false
	}
	l.transactions = append(l.transactions[:idx], l.transactions[idx+1:]...)
	return true
}

// AddSavingsEntry appends an expense row worth percent of the head income,
// rounded half away from zero. The category id is the caller's resolved
// savings category, or empty when none exists.
func (l *Ledger) AddSavingsEntry(percent int, categoryID string) Transaction {
	amount := int64(math.Round(float64(l.HeadIncome()) * float64(percent) / 100))
	t := newTransaction(fmt.Sprintf("Tabungan (%d%%)", percent))
	t.CategoryID = categoryID
	t.Expense = amount
	l.transactions = append(l.transactions, t)
	return t
}

// Head returns the income anchor row.
func (l *Ledger) Head() Transaction {
	return l.transactions[0]
}

// HeadIncome is the period's total inflow as recorded on the anchor row.
func (l *Ledger) HeadIncome() int64 {
	return l.transactions[0].Income
}

func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Transactions returns a copy of the rows in ledger order.
func (l *Ledger) Transactions() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}

func (l *Ledger) TotalIncome() int64 {
	var total int64
	for _, t := range l.transactions {
		total += t.Income
	}
	return total
}

func (l *Ledger) TotalExpense() int64 {
	var total int64
	for _, t := range l.transactions {
		total += t.Expense
	}
	return total
}

// FinalBalance can be negative when the sheet overspends.
func (l *Ledger) FinalBalance() int64 {
	return l.TotalIncome() - l.TotalExpense()
}

// RunningBalances returns the prefix sums of income-expense in ledger order.
// Recomputed in full on every call: a mutation anywhere invalidates every
// balance downstream of it.
func (l *Ledger) RunningBalances() []int64 {
	balances := make([]int64, len(l.transactions))
	var running int64
	for i, t := range l.transactions {
		running += t.Income - t.Expense
		balances[i] = running
	}
	return balances
}

func (l *Ledger) indexOf(id string) int {
	for i, t := range l.transactions {
		if t.ID == id {
			return i
		}
	}
	return -1
}
