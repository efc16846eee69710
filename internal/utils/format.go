package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount in whole rupiah with Indonesian digit
// grouping, e.g. 5000000 -> "5.000.000". No currency symbol is included so
// callers can choose between "Rp 5.000.000" and bare numbers in table cells.
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("%d", amount)
}
