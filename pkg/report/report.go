// Package report builds the read-only projections of a budget sheet: the
// shareable summary, the WhatsApp message and deep link, and the
// downloadable spreadsheet artifacts. It never mutates the sheet.
package report

import (
	"fmt"

	"github.com/dompetku/dompetku/pkg/sheet"
)

// Months are the Indonesian month names used in report titles and filenames.
var Months = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// MonthName returns the label for a zero-based month; out-of-range values
// fall back to the number itself so a broken period never breaks a report.
func MonthName(month int) string {
	if month < 0 || month >= len(Months) {
		return fmt.Sprintf("%d", month+1)
	}
	return Months[month]
}

// PeriodLabel renders "Januari 2026" style labels.
func PeriodLabel(p sheet.Period) string {
	return fmt.Sprintf("%s %d", MonthName(p.Month), p.Year)
}

// Summary is the shareable projection of the sheet totals.
type Summary struct {
	Title        string `json:"title"`
	Period       string `json:"period"`
	TotalIncome  int64  `json:"totalIncome"`
	TotalExpense int64  `json:"totalExpense"`
	FinalBalance int64  `json:"finalBalance"`
}

// BuildSummary derives the summary from a consistent sheet state.
func BuildSummary(state sheet.State) Summary {
	return Summary{
		Title:        fmt.Sprintf("Laporan Keuangan %s", PeriodLabel(state.Period)),
		Period:       PeriodLabel(state.Period),
		TotalIncome:  state.TotalIncome,
		TotalExpense: state.TotalExpense,
		FinalBalance: state.FinalBalance,
	}
}

// categoryName resolves a transaction's category display name against the
// state's registry snapshot, with the uncategorized fallback for empty or
// dangling ids.
func categoryName(state sheet.State, categoryID string) string {
	if categoryID == "" {
		return sheet.UncategorizedName
	}
	for _, c := range state.Categories {
		if c.ID == categoryID {
			return c.Name
		}
	}
	return sheet.UncategorizedName
}
