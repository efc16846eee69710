package sheet

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dompetku/dompetku/internal/event_bus"
	"github.com/dompetku/dompetku/internal/utils"
	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/ledger"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrHeadRowProtected is returned when a caller tries to delete the
	// income anchor row.
	ErrHeadRowProtected = errors.New("the income row cannot be deleted")
	// ErrInvalidPeriod is returned for a month outside 0-11.
	ErrInvalidPeriod = errors.New("month must be between 0 and 11")
	// ErrInvalidSavingsPercent is returned for a savings target outside the
	// fixed option set.
	ErrInvalidSavingsPercent = errors.New("savings percent must be one of 10, 15, 20, 25, 30")
)

// Suggester proposes a category id for a transaction description.
type Suggester interface {
	Suggest(description string, known func(categoryID string) bool) (string, bool)
}

// State is a consistent read-model of the whole sheet, taken under one lock
// so exports and renders never mix two different document versions.
type State struct {
	Period          Period
	Transactions    []ledger.Transaction
	RunningBalances []int64
	Categories      []category.Category
	SavingsPercent  int
	WhatsAppNumber  string
	TotalIncome     int64
	TotalExpense    int64
	FinalBalance    int64
}

// BreakdownEntry is one category bucket with display attributes resolved.
// A deleted or missing category resolves to the uncategorized fallback.
type BreakdownEntry struct {
	CategoryID   string
	CategoryName string
	Color        string
	Total        int64
	Percent      float64
}

// UncategorizedName and UncategorizedColor are the display fallback for rows
// whose category id is empty or refers to a deleted category.
const (
	UncategorizedName  = "-"
	UncategorizedColor = "#94a3b8"
)

// Service is the narrow command API over the budget sheet aggregate. Every
// mutating call persists the full document before returning.
type Service interface {
	State(ctx context.Context) State
	AddTransaction(ctx context.Context) (ledger.Transaction, error)
	UpdateTransaction(ctx context.Context, id string, field ledger.Field, value string) (ledger.Transaction, bool, error)
	RemoveTransaction(ctx context.Context, id string) (bool, error)
	AddSavingsEntry(ctx context.Context) (ledger.Transaction, error)
	SetPeriod(ctx context.Context, period Period) error
	SetSavingsPercent(ctx context.Context, percent int) error
	SetWhatsAppNumber(ctx context.Context, number string) (string, error)
	AddCategory(ctx context.Context, name, color string) (category.Category, error)
	RemoveCategory(ctx context.Context, id string) (bool, error)
	ListCategories(ctx context.Context) []category.Category
	Breakdown(ctx context.Context) []BreakdownEntry
	ExportState(ctx context.Context) (State, []BreakdownEntry)
}

type ServiceImpl struct {
	mu        sync.RWMutex
	sheet     *Sheet
	suggester Suggester
	bus       *event_bus.EventBus
}

// NewService loads the persisted document (or starts from defaults when none
// exists or it is unreadable) and returns the service. Only a repository I/O
// failure is fatal; a malformed document never is.
func NewService(ctx context.Context, repo Repository, suggester Suggester, bus *event_bus.EventBus, clock utils.Clock) (*ServiceImpl, error) {
	data, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load budget document: %w", err)
	}

	var s *Sheet
	if found {
		s = FromSnapshot(data, clock)
		log.Infof("Loaded budget document: %d transaction(s), %d categories", s.Ledger.Len(), s.Categories.Len())
	} else {
		s = Default(clock)
		log.Info("No budget document found, starting with defaults")
	}

	return &ServiceImpl{sheet: s, suggester: suggester, bus: bus}, nil
}

func (s *ServiceImpl) State(ctx context.Context) State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked()
}

func (s *ServiceImpl) stateLocked() State {
	return State{
		Period:          s.sheet.Period,
		Transactions:    s.sheet.Ledger.Transactions(),
		RunningBalances: s.sheet.Ledger.RunningBalances(),
		Categories:      s.sheet.Categories.All(),
		SavingsPercent:  s.sheet.SavingsPercent,
		WhatsAppNumber:  s.sheet.WhatsAppNumber,
		TotalIncome:     s.sheet.Ledger.TotalIncome(),
		TotalExpense:    s.sheet.Ledger.TotalExpense(),
		FinalBalance:    s.sheet.Ledger.FinalBalance(),
	}
}

func (s *ServiceImpl) AddTransaction(ctx context.Context) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.sheet.Ledger.Append()
	if err := s.persistLocked(ctx); err != nil {
		return ledger.Transaction{}, err
	}
	return t, nil
}

func (s *ServiceImpl) UpdateTransaction(ctx context.Context, id string, field ledger.Field, value string) (ledger.Transaction, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var suggest ledger.SuggestFunc
	if field == ledger.FieldDescription && s.suggester != nil {
		suggest = func(description string) (string, bool) {
			return s.suggester.Suggest(description, s.sheet.Categories.Contains)
		}
	}

	t, ok := s.sheet.Ledger.Update(id, field, value, suggest)
	if !ok {
		return ledger.Transaction{}, false, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		return ledger.Transaction{}, false, err
	}
	return t, true, nil
}

func (s *ServiceImpl) RemoveTransaction(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sheet.Ledger.Head().ID == id {
		return false, ErrHeadRowProtected
	}
	if !s.sheet.Ledger.Remove(id) {
		return false, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ServiceImpl) AddSavingsEntry(ctx context.Context) (ledger.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var categoryID string
	if savings, ok := s.sheet.Categories.FindSavings(); ok {
		categoryID = savings.ID
	}
	t := s.sheet.Ledger.AddSavingsEntry(s.sheet.SavingsPercent, categoryID)
	if err := s.persistLocked(ctx); err != nil {
		return ledger.Transaction{}, err
	}
	return t, nil
}

func (s *ServiceImpl) SetPeriod(ctx context.Context, period Period) error {
	if period.Month < 0 || period.Month > 11 {
		return ErrInvalidPeriod
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sheet.Period = period
	return s.persistLocked(ctx)
}

func (s *ServiceImpl) SetSavingsPercent(ctx context.Context, percent int) error {
	if !ValidSavingsPercent(percent) {
		return ErrInvalidSavingsPercent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sheet.SavingsPercent = percent
	return s.persistLocked(ctx)
}

func (s *ServiceImpl) SetWhatsAppNumber(ctx context.Context, number string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sheet.WhatsAppNumber = DigitsOnly(number)
	if err := s.persistLocked(ctx); err != nil {
		return "", err
	}
	return s.sheet.WhatsAppNumber, nil
}

func (s *ServiceImpl) AddCategory(ctx context.Context, name, color string) (category.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.sheet.Categories.Add(name, color)
	if err := s.persistLocked(ctx); err != nil {
		return category.Category{}, err
	}
	return c, nil
}

// RemoveCategory deletes a user category. Transactions referencing it keep
// their id and simply render as uncategorized: the reference is weak.
func (s *ServiceImpl) RemoveCategory(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, err := s.sheet.Categories.Remove(id)
	if err != nil {
		return false, err
	}
	if !removed {
		return false, nil
	}
	if err := s.persistLocked(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *ServiceImpl) ListCategories(ctx context.Context) []category.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheet.Categories.All()
}

func (s *ServiceImpl) Breakdown(ctx context.Context) []BreakdownEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.breakdownLocked()
}

// ExportState returns the state and breakdown under one lock, so a render
// never mixes two document versions. A mutation racing an export sees either
// entirely the old sheet or entirely the new one.
func (s *ServiceImpl) ExportState(ctx context.Context) (State, []BreakdownEntry) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stateLocked(), s.breakdownLocked()
}

func (s *ServiceImpl) breakdownLocked() []BreakdownEntry {
	buckets := s.sheet.Ledger.Breakdown()
	entries := make([]BreakdownEntry, 0, len(buckets))
	for _, b := range buckets {
		entry := BreakdownEntry{
			CategoryID:   b.CategoryID,
			CategoryName: UncategorizedName,
			Color:        UncategorizedColor,
			Total:        b.Total,
			Percent:      b.Percent,
		}
		if c, ok := s.sheet.Categories.FindByID(b.CategoryID); ok {
			entry.CategoryName = c.Name
			entry.Color = c.Color
		}
		entries = append(entries, entry)
	}
	return entries
}

// persistLocked snapshots the aggregate and publishes it on the bus; the
// persistence subscriber stores it synchronously. The in-memory state stands
// even when storing fails, matching the sheet-first, storage-second model.
func (s *ServiceImpl) persistLocked(ctx context.Context) error {
	data, err := s.sheet.Snapshot()
	if err != nil {
		log.Errorf("failed to snapshot budget document: %v", err)
		return fmt.Errorf("failed to snapshot budget document: %w", err)
	}
	if err := s.bus.Publish(event_bus.NewEvent(ctx, event_bus.SheetUpdated, event_bus.SheetSnapshot{Data: data})); err != nil {
		return fmt.Errorf("failed to persist budget document: %w", err)
	}
	return nil
}
