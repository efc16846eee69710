// Package sheet owns the full budget document: the transaction ledger, the
// category registry, the reporting period and the sharing settings. The
// whole aggregate is one unit of persistence, serialized atomically after
// every mutation.
package sheet

import (
	"encoding/json"

	"github.com/dompetku/dompetku/internal/utils"
	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/ledger"
)

// DefaultSavingsPercent is applied to new sheets and to documents whose
// savings target is missing or out of range.
const DefaultSavingsPercent = 20

// SavingsPercentOptions are the only accepted savings targets.
var SavingsPercentOptions = []int{10, 15, 20, 25, 30}

// Period selects the reporting label. Month is zero-based (0 = January),
// matching the persisted document format. It labels the sheet only; it does
// not filter transactions.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

// Sheet is the aggregate root.
type Sheet struct {
	Period         Period
	Ledger         *ledger.Ledger
	Categories     *category.Registry
	SavingsPercent int
	WhatsAppNumber string
}

// Default returns a fresh sheet: income anchor row, the default category
// set, the clock's current calendar month and a 20% savings target.
func Default(clock utils.Clock) *Sheet {
	now := clock.Now()
	return &Sheet{
		Period:         Period{Month: int(now.Month()) - 1, Year: now.Year()},
		Ledger:         ledger.New(),
		Categories:     category.NewRegistry(category.DefaultCategories()),
		SavingsPercent: DefaultSavingsPercent,
	}
}

// transactionDoc is the persisted row shape. CategoryID is nullable in the
// document and the empty string in memory.
type transactionDoc struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	CategoryID  *string `json:"categoryId"`
	Income      int64   `json:"income"`
	Expense     int64   `json:"expense"`
}

// document is the single persisted JSON object.
type document struct {
	Categories     []category.Category `json:"categories"`
	Transactions   []transactionDoc    `json:"transactions"`
	Period         Period              `json:"period"`
	WhatsAppNumber string              `json:"whatsappNumber"`
	SavingsPercent int                 `json:"savingsPercent"`
}

// Snapshot serializes the aggregate to its canonical JSON document.
func (s *Sheet) Snapshot() ([]byte, error) {
	transactions := s.Ledger.Transactions()
	docs := make([]transactionDoc, 0, len(transactions))
	for _, t := range transactions {
		doc := transactionDoc{
			ID:          t.ID,
			Description: t.Description,
			Income:      t.Income,
			Expense:     t.Expense,
		}
		if t.CategoryID != "" {
			categoryID := t.CategoryID
			doc.CategoryID = &categoryID
		}
		docs = append(docs, doc)
	}
	return json.Marshal(document{
		Categories:     s.Categories.All(),
		Transactions:   docs,
		Period:         s.Period,
		WhatsAppNumber: s.WhatsAppNumber,
		SavingsPercent: s.SavingsPercent,
	})
}

// FromSnapshot rebuilds a sheet from a persisted document. Recovery is
// field-level: every top-level key that is absent or unparsable falls back
// to its default independently, so a corrupt document never blocks startup
// and the worst case is a partially defaulted sheet.
func FromSnapshot(data []byte, clock utils.Clock) *Sheet {
	s := Default(clock)
	if len(data) == 0 {
		return s
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s
	}

	var categories []category.Category
	if tryField(raw, "categories", &categories) && len(categories) > 0 {
		s.Categories = category.NewRegistry(categories)
	}

	var docs []transactionDoc
	if tryField(raw, "transactions", &docs) {
		transactions := make([]ledger.Transaction, 0, len(docs))
		for _, doc := range docs {
			t := ledger.Transaction{
				ID:          doc.ID,
				Description: doc.Description,
				Income:      doc.Income,
				Expense:     doc.Expense,
			}
			if doc.CategoryID != nil {
				t.CategoryID = *doc.CategoryID
			}
			transactions = append(transactions, t)
		}
		s.Ledger = ledger.FromTransactions(transactions)
	}

	var period Period
	if tryField(raw, "period", &period) && period.Month >= 0 && period.Month <= 11 {
		s.Period = period
	}

	var number string
	if tryField(raw, "whatsappNumber", &number) {
		s.WhatsAppNumber = DigitsOnly(number)
	}

	var percent int
	if tryField(raw, "savingsPercent", &percent) && ValidSavingsPercent(percent) {
		s.SavingsPercent = percent
	}

	return s
}

func tryField(raw map[string]json.RawMessage, key string, out any) bool {
	data, ok := raw[key]
	if !ok {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// ValidSavingsPercent reports whether percent is one of the fixed options.
func ValidSavingsPercent(percent int) bool {
	for _, p := range SavingsPercentOptions {
		if p == percent {
			return true
		}
	}
	return false
}

// DigitsOnly strips everything but digits from a phone number.
func DigitsOnly(number string) string {
	digits := make([]rune, 0, len(number))
	for _, r := range number {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	return string(digits)
}
