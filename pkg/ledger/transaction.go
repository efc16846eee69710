package ledger

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Transaction is one row of the budget sheet. CategoryID is a weak reference
// into the category registry; the empty string means uncategorized. Amounts
// are whole rupiah, never negative. Typically only one of Income/Expense is
// nonzero, but both being set is not forbidden.
type Transaction struct {
	ID          string
	Description string
	CategoryID  string
	Income      int64
	Expense     int64
}

func newTransaction(description string) Transaction {
	return Transaction{
		ID:          uuid.NewString(),
		Description: description,
	}
}

// CoerceAmount turns free-form user input into a non-negative whole amount.
// Everything except digits is stripped first, so "5.000.000", "Rp 5000" and
// "5000000" all parse; anything without digits degrades to 0 rather than
// erroring.
func CoerceAmount(value string) int64 {
	var b strings.Builder
	for _, r := range value {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0
	}
	amount, err := strconv.ParseInt(b.String(), 10, 64)
	if err != nil {
		return 0
	}
	return amount
}
