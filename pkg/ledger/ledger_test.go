package ledger

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noSuggestion(string) (string, bool) { return "", false }

func TestLedger_New(t *testing.T) {
	// when
	l := New()

	// then
	require.Equal(t, 1, l.Len())
	head := l.Head()
	assert.Equal(t, HeadDescription, head.Description)
	assert.NotEmpty(t, head.ID)
	assert.Zero(t, head.Income)
	assert.Zero(t, head.Expense)
}

func TestLedger_FromTransactions_emptyReseedsAnchor(t *testing.T) {
	l := FromTransactions(nil)

	require.Equal(t, 1, l.Len())
	assert.Equal(t, HeadDescription, l.Head().Description)
}

func TestLedger_AppendAndUpdate(t *testing.T) {
	// given
	l := New()
	l.Update(l.Head().ID, FieldIncome, "5.000.000", noSuggestion)

	// when
	row := l.Append()
	_, ok := l.Update(row.ID, FieldDescription, "beli beras", noSuggestion)
	require.True(t, ok)
	_, ok = l.Update(row.ID, FieldExpense, "Rp 750000", noSuggestion)
	require.True(t, ok)

	// then
	rows := l.Transactions()
	require.Len(t, rows, 2)
	assert.Equal(t, "beli beras", rows[1].Description)
	assert.Equal(t, int64(750000), rows[1].Expense)
	assert.Equal(t, int64(5000000), l.TotalIncome())
	assert.Equal(t, int64(750000), l.TotalExpense())
	assert.Equal(t, int64(4250000), l.FinalBalance())
}

func TestLedger_Update_descriptionSuggestion(t *testing.T) {
	t.Run("confirmed suggestion overwrites the category", func(t *testing.T) {
		// given
		l := New()
		row := l.Append()

		// when
		updated, ok := l.Update(row.ID, FieldDescription, "bayar listrik", func(string) (string, bool) {
			return "utilitas", true
		})

		// then
		require.True(t, ok)
		assert.Equal(t, "utilitas", updated.CategoryID)
	})

	t.Run("unmatched description keeps the existing category", func(t *testing.T) {
		// given
		l := New()
		row := l.Append()
		l.Update(row.ID, FieldCategory, "hiburan", noSuggestion)

		// when
		updated, ok := l.Update(row.ID, FieldDescription, "sesuatu", noSuggestion)

		// then
		require.True(t, ok)
		assert.Equal(t, "hiburan", updated.CategoryID)
	})

	t.Run("nil suggest func is tolerated", func(t *testing.T) {
		l := New()
		row := l.Append()

		updated, ok := l.Update(row.ID, FieldDescription, "apapun", nil)

		require.True(t, ok)
		assert.Equal(t, "apapun", updated.Description)
	})
}

func TestLedger_Update_unknownTargets(t *testing.T) {
	l := New()

	_, ok := l.Update("missing-id", FieldDescription, "x", noSuggestion)
	assert.False(t, ok)

	_, ok = l.Update(l.Head().ID, Field("color"), "x", noSuggestion)
	assert.False(t, ok)
}

func TestLedger_Remove(t *testing.T) {
	t.Run("removes a regular row", func(t *testing.T) {
		// given
		l := New()
		row := l.Append()

		// when
		removed := l.Remove(row.ID)

		// then
		assert.True(t, removed)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("head row is permanent", func(t *testing.T) {
		l := New()
		l.Append()

		removed := l.Remove(l.Head().ID)

		assert.False(t, removed)
		assert.Equal(t, 2, l.Len())
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		l := New()

		assert.False(t, l.Remove("missing-id"))
		assert.Equal(t, 1, l.Len())
	})
}

func TestLedger_AddSavingsEntry(t *testing.T) {
	// given
	l := New()
	l.Update(l.Head().ID, FieldIncome, "5000000", noSuggestion)

	// when
	entry := l.AddSavingsEntry(20, "keuangan")

	// then
	assert.Equal(t, "Tabungan (20%)", entry.Description)
	assert.Equal(t, int64(1000000), entry.Expense)
	assert.Equal(t, "keuangan", entry.CategoryID)
	assert.Equal(t, int64(4000000), l.FinalBalance())
}

func TestLedger_AddSavingsEntry_rounding(t *testing.T) {
	// given 3333 at 15% = 499.95, rounds up
	l := New()
	l.Update(l.Head().ID, FieldIncome, "3333", noSuggestion)

	// when
	entry := l.AddSavingsEntry(15, "")

	// then
	assert.Equal(t, int64(500), entry.Expense)
	assert.Empty(t, entry.CategoryID)
}

func TestLedger_RunningBalances(t *testing.T) {
	// given
	l := New()
	l.Update(l.Head().ID, FieldIncome, "1000", noSuggestion)
	a := l.Append()
	l.Update(a.ID, FieldExpense, "300", noSuggestion)
	b := l.Append()
	l.Update(b.ID, FieldExpense, "900", noSuggestion)

	// when
	balances := l.RunningBalances()

	// then
	require.Len(t, balances, 3)
	assert.Equal(t, []int64{1000, 700, -200}, balances)
	assert.Equal(t, l.FinalBalance(), balances[len(balances)-1])
}

func TestCoerceAmount(t *testing.T) {
	tests := []struct {
		value string
		want  int64
	}{
		{"5000000", 5000000},
		{"5.000.000", 5000000},
		{"Rp 5.000", 5000},
		{"  750,000  ", 750000},
		{"abc", 0},
		{"", 0},
		{"-500", 500},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.value), func(t *testing.T) {
			assert.Equal(t, tt.want, CoerceAmount(tt.value))
		})
	}
}
