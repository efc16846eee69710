package report

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/dompetku/dompetku/internal/utils"
	"github.com/dompetku/dompetku/pkg/sheet"
)

// ErrNoRecipient is the one user-facing validation error in the share flow:
// sharing needs a configured WhatsApp number first.
var ErrNoRecipient = errors.New("no WhatsApp number configured")

// BuildMessage renders the plain-text fallback share message: bold title,
// totals, and a numbered detail line for every row with a nonzero amount.
func BuildMessage(state sheet.State) string {
	summary := BuildSummary(state)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", summary.Title)
	fmt.Fprintf(&b, "Total Masuk: Rp %s\n", utils.FormatRupiah(summary.TotalIncome))
	fmt.Fprintf(&b, "Total Keluar: Rp %s\n", utils.FormatRupiah(summary.TotalExpense))
	fmt.Fprintf(&b, "Sisa Saldo: Rp %s\n", utils.FormatRupiah(summary.FinalBalance))
	b.WriteString("*Detail:*")

	n := 0
	for _, t := range state.Transactions {
		if t.Income <= 0 && t.Expense <= 0 {
			continue
		}
		amount := t.Expense
		if t.Income > 0 {
			amount = t.Income
		}
		n++
		fmt.Fprintf(&b, "\n%d. %s [%s] : Rp %s", n, t.Description, categoryName(state, t.CategoryID), utils.FormatRupiah(amount))
	}
	return b.String()
}

// Link builds the wa.me deep link carrying the message. The recipient number
// must already be digits only; an empty number returns ErrNoRecipient so the
// caller can direct the user to settings.
func Link(number, message string) (string, error) {
	if number == "" {
		return "", ErrNoRecipient
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message)), nil
}
