package report

import (
	"testing"

	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/ledger"
	"github.com/dompetku/dompetku/pkg/sheet"
	"github.com/stretchr/testify/assert"
)

func sampleState() sheet.State {
	return sheet.State{
		Period: sheet.Period{Month: 2, Year: 2026},
		Transactions: []ledger.Transaction{
			{ID: "t1", Description: "Penghasilan", Income: 5000000},
			{ID: "t2", Description: "beli beras", CategoryID: "pokok", Expense: 750000},
			{ID: "t3", Description: ""},
		},
		RunningBalances: []int64{5000000, 4250000, 4250000},
		Categories:      category.DefaultCategories(),
		SavingsPercent:  20,
		TotalIncome:     5000000,
		TotalExpense:    750000,
		FinalBalance:    4250000,
	}
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "Januari", MonthName(0))
	assert.Equal(t, "Desember", MonthName(11))
	assert.Equal(t, "13", MonthName(12))
	assert.Equal(t, "0", MonthName(-1))
}

func TestPeriodLabel(t *testing.T) {
	assert.Equal(t, "Maret 2026", PeriodLabel(sheet.Period{Month: 2, Year: 2026}))
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary(sampleState())

	assert.Equal(t, "Laporan Keuangan Maret 2026", summary.Title)
	assert.Equal(t, "Maret 2026", summary.Period)
	assert.Equal(t, int64(5000000), summary.TotalIncome)
	assert.Equal(t, int64(750000), summary.TotalExpense)
	assert.Equal(t, int64(4250000), summary.FinalBalance)
}

func TestBuildMessage(t *testing.T) {
	// when
	message := BuildMessage(sampleState())

	// then: totals, numbered detail lines, and the zero-amount row skipped
	expected := "*Laporan Keuangan Maret 2026*\n" +
		"Total Masuk: Rp 5.000.000\n" +
		"Total Keluar: Rp 750.000\n" +
		"Sisa Saldo: Rp 4.250.000\n" +
		"*Detail:*\n" +
		"1. Penghasilan [-] : Rp 5.000.000\n" +
		"2. beli beras [Kebutuhan Pokok] : Rp 750.000"
	assert.Equal(t, expected, message)
}

func TestBuildMessage_danglingCategory(t *testing.T) {
	state := sampleState()
	state.Transactions[1].CategoryID = "deleted-cat"

	message := BuildMessage(state)

	assert.Contains(t, message, "beli beras [-] : Rp 750.000")
}

func TestLink(t *testing.T) {
	t.Run("builds the deep link with an escaped message", func(t *testing.T) {
		link, err := Link("628123456789", "*Laporan* Rp 5.000.000")

		assert.NoError(t, err)
		assert.Equal(t, "https://wa.me/628123456789?text=%2ALaporan%2A+Rp+5.000.000", link)
	})

	t.Run("missing recipient", func(t *testing.T) {
		_, err := Link("", "pesan")

		assert.ErrorIs(t, err, ErrNoRecipient)
	})
}
