package sheet

import (
	"context"
	"testing"

	"github.com/dompetku/dompetku/internal/event_bus"
	"github.com/dompetku/dompetku/pkg/categorizer"
	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestService wires the service the same way the application does: the
// persistence handler subscribes to the bus before the service publishes.
func newTestService(t *testing.T, repo *StubRepository) *ServiceImpl {
	t.Helper()

	bus := event_bus.NewEventBus()
	event_bus.SubscribeTyped[event_bus.SheetSnapshot](bus, event_bus.SheetUpdated,
		func(e event_bus.EventT[event_bus.SheetSnapshot]) error {
			return repo.Store(e.Context(), e.Data.Data)
		})

	service, err := NewService(context.Background(), repo, categorizer.NewMatcher(), bus, fixedClock())
	require.NoError(t, err)
	return service
}

func TestService_startsFromDefaults(t *testing.T) {
	// given
	repo := NewStubRepository()

	// when
	service := newTestService(t, repo)

	// then
	state := service.State(context.Background())
	assert.Equal(t, Period{Month: 2, Year: 2026}, state.Period)
	assert.Equal(t, DefaultSavingsPercent, state.SavingsPercent)
	assert.Len(t, state.Transactions, 1)
	assert.Len(t, state.Categories, 11)
	assert.Zero(t, repo.StoreCount(), "reading must not persist")
}

func TestService_mutationsWriteThrough(t *testing.T) {
	// given
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	// when
	row, err := service.AddTransaction(ctx)
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, row.ID, ledger.FieldExpense, "50000")
	require.NoError(t, err)
	err = service.SetSavingsPercent(ctx, 25)
	require.NoError(t, err)

	// then every mutation stored the full document
	assert.Equal(t, 3, repo.StoreCount())

	// and a fresh service sees the persisted state
	reloaded := newTestService(t, repo)
	state := reloaded.State(ctx)
	assert.Equal(t, 25, state.SavingsPercent)
	require.Len(t, state.Transactions, 2)
	assert.Equal(t, int64(50000), state.Transactions[1].Expense)
}

func TestService_UpdateTransaction(t *testing.T) {
	t.Run("description edit applies a keyword suggestion", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(t, repo)
		ctx := context.Background()
		row, err := service.AddTransaction(ctx)
		require.NoError(t, err)

		// when
		updated, ok, err := service.UpdateTransaction(ctx, row.ID, ledger.FieldDescription, "bayar listrik bulan ini")

		// then
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "utilitas", updated.CategoryID)
	})

	t.Run("suggestion pointing at a deleted category is dropped", func(t *testing.T) {
		// given a registry without the utilitas category
		repo := NewStubRepository()
		service := newTestService(t, repo)
		ctx := context.Background()

		var kept []category.Category
		for _, c := range category.DefaultCategories() {
			if c.ID != "utilitas" {
				kept = append(kept, c)
			}
		}
		service.sheet.Categories = category.NewRegistry(kept)
		require.False(t, service.sheet.Categories.Contains("utilitas"))

		row, err := service.AddTransaction(ctx)
		require.NoError(t, err)
		_, _, err = service.UpdateTransaction(ctx, row.ID, ledger.FieldCategory, "hiburan")
		require.NoError(t, err)

		// when
		updated, ok, err := service.UpdateTransaction(ctx, row.ID, ledger.FieldDescription, "bayar listrik")

		// then the prior manual category survives
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "hiburan", updated.CategoryID)
	})

	t.Run("unknown id reports not found without error", func(t *testing.T) {
		repo := NewStubRepository()
		service := newTestService(t, repo)

		_, ok, err := service.UpdateTransaction(context.Background(), "missing-id", ledger.FieldIncome, "100")

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestService_RemoveTransaction(t *testing.T) {
	t.Run("head row is protected", func(t *testing.T) {
		// given
		repo := NewStubRepository()
		service := newTestService(t, repo)
		ctx := context.Background()
		headID := service.State(ctx).Transactions[0].ID

		// when
		removed, err := service.RemoveTransaction(ctx, headID)

		// then
		assert.ErrorIs(t, err, ErrHeadRowProtected)
		assert.False(t, removed)
		assert.Zero(t, repo.StoreCount())
	})

	t.Run("removes a regular row and persists", func(t *testing.T) {
		repo := NewStubRepository()
		service := newTestService(t, repo)
		ctx := context.Background()
		row, err := service.AddTransaction(ctx)
		require.NoError(t, err)

		removed, err := service.RemoveTransaction(ctx, row.ID)

		require.NoError(t, err)
		assert.True(t, removed)
		assert.Equal(t, 2, repo.StoreCount())
	})
}

func TestService_AddSavingsEntry(t *testing.T) {
	// given income of 5.000.000 and the default 20% target
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()
	headID := service.State(ctx).Transactions[0].ID
	_, _, err := service.UpdateTransaction(ctx, headID, ledger.FieldIncome, "5000000")
	require.NoError(t, err)

	// when
	entry, err := service.AddSavingsEntry(ctx)

	// then
	require.NoError(t, err)
	assert.Equal(t, "Tabungan (20%)", entry.Description)
	assert.Equal(t, int64(1000000), entry.Expense)
	assert.Equal(t, "keuangan", entry.CategoryID)
}

func TestService_SetPeriod(t *testing.T) {
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	require.NoError(t, service.SetPeriod(ctx, Period{Month: 11, Year: 2027}))
	assert.Equal(t, Period{Month: 11, Year: 2027}, service.State(ctx).Period)

	assert.ErrorIs(t, service.SetPeriod(ctx, Period{Month: 12, Year: 2027}), ErrInvalidPeriod)
	assert.ErrorIs(t, service.SetPeriod(ctx, Period{Month: -1, Year: 2027}), ErrInvalidPeriod)
}

func TestService_SetSavingsPercent_invalid(t *testing.T) {
	repo := NewStubRepository()
	service := newTestService(t, repo)

	err := service.SetSavingsPercent(context.Background(), 17)

	assert.ErrorIs(t, err, ErrInvalidSavingsPercent)
	assert.Zero(t, repo.StoreCount())
}

func TestService_SetWhatsAppNumber_normalizes(t *testing.T) {
	repo := NewStubRepository()
	service := newTestService(t, repo)

	stored, err := service.SetWhatsAppNumber(context.Background(), "+62 812-3456-789")

	require.NoError(t, err)
	assert.Equal(t, "628123456789", stored)
	assert.Equal(t, "628123456789", service.State(context.Background()).WhatsAppNumber)
}

func TestService_categories(t *testing.T) {
	// given
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	// when
	added, err := service.AddCategory(ctx, "Hobi", "#123456")
	require.NoError(t, err)

	// then
	assert.Len(t, service.ListCategories(ctx), 12)

	// removing a default category is refused
	_, err = service.RemoveCategory(ctx, "pokok")
	assert.Error(t, err)

	// removing the user category works and persists
	removed, err := service.RemoveCategory(ctx, added.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Len(t, service.ListCategories(ctx), 11)
}

func TestService_Breakdown_resolvesNames(t *testing.T) {
	// given rows in a known and an unknown category
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()

	row, err := service.AddTransaction(ctx)
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, row.ID, ledger.FieldCategory, "pokok")
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, row.ID, ledger.FieldExpense, "600")
	require.NoError(t, err)

	orphan, err := service.AddTransaction(ctx)
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, orphan.ID, ledger.FieldCategory, "deleted-cat")
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, orphan.ID, ledger.FieldExpense, "400")
	require.NoError(t, err)

	// when
	entries := service.Breakdown(ctx)

	// then
	require.Len(t, entries, 2)
	assert.Equal(t, "Kebutuhan Pokok", entries[0].CategoryName)
	assert.Equal(t, int64(600), entries[0].Total)
	assert.InDelta(t, 60, entries[0].Percent, 0.0001)
	assert.Equal(t, UncategorizedName, entries[1].CategoryName)
	assert.Equal(t, UncategorizedColor, entries[1].Color)
}

func TestService_ExportState_consistent(t *testing.T) {
	// given
	repo := NewStubRepository()
	service := newTestService(t, repo)
	ctx := context.Background()
	row, err := service.AddTransaction(ctx)
	require.NoError(t, err)
	_, _, err = service.UpdateTransaction(ctx, row.ID, ledger.FieldExpense, "1000")
	require.NoError(t, err)

	// when
	state, breakdown := service.ExportState(ctx)

	// then both views describe the same document version
	assert.Equal(t, int64(1000), state.TotalExpense)
	require.Len(t, breakdown, 1)
	assert.Equal(t, state.TotalExpense, breakdown[0].Total)
}
