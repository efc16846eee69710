package sheet

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/ledger"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// TransactionDTO mirrors the persisted row shape, plus the running balance
// up to this row, which the table renders in the "Sisa" column.
type TransactionDTO struct {
	ID             string  `json:"id"`
	Description    string  `json:"description"`
	CategoryID     *string `json:"categoryId"`
	Income         int64   `json:"income"`
	Expense        int64   `json:"expense"`
	RunningBalance int64   `json:"runningBalance"`
}

type PeriodDTO struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

type SheetDTO struct {
	Period         PeriodDTO           `json:"period"`
	Transactions   []TransactionDTO    `json:"transactions"`
	Categories     []category.Category `json:"categories"`
	SavingsPercent int                 `json:"savingsPercent"`
	WhatsAppNumber string              `json:"whatsappNumber"`
	TotalIncome    int64               `json:"totalIncome"`
	TotalExpense   int64               `json:"totalExpense"`
	FinalBalance   int64               `json:"finalBalance"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	state := h.service.State(r.Context())

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(stateToDTO(state)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SetPeriod(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto PeriodDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetPeriod(r.Context(), Period{Month: dto.Month, Year: dto.Year}); err != nil {
		if errors.Is(err, ErrInvalidPeriod) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SetSavingsPercent(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Percent int `json:"percent"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.SetSavingsPercent(r.Context(), dto.Percent); err != nil {
		if errors.Is(err, ErrInvalidSavingsPercent) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) SetWhatsAppNumber(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto struct {
		Number string `json:"number"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	stored, err := h.service.SetWhatsAppNumber(r.Context(), dto.Number)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto.Number = stored
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) AddTransaction(w http.ResponseWriter, r *http.Request) {
	log.Debug("Appending new transaction row")
	w.Header().Set("Content-Type", "application/json")

	t, err := h.service.AddTransaction(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(transactionToDTO(t, 0)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	var dto struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	field := ledger.Field(dto.Field)
	switch field {
	case ledger.FieldDescription, ledger.FieldCategory, ledger.FieldIncome, ledger.FieldExpense:
	default:
		http.Error(w, "unknown field: "+dto.Field, http.StatusBadRequest)
		return
	}

	t, ok, err := h.service.UpdateTransaction(r.Context(), id, field, dto.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(transactionToDTO(t, 0)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	ok, err := h.service.RemoveTransaction(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrHeadRowProtected) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddSavingsEntry(w http.ResponseWriter, r *http.Request) {
	log.Debug("Adding savings entry")
	w.Header().Set("Content-Type", "application/json")

	t, err := h.service.AddSavingsEntry(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(transactionToDTO(t, 0)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func stateToDTO(state State) SheetDTO {
	transactions := make([]TransactionDTO, 0, len(state.Transactions))
	for i, t := range state.Transactions {
		transactions = append(transactions, transactionToDTO(t, state.RunningBalances[i]))
	}
	return SheetDTO{
		Period:         PeriodDTO{Month: state.Period.Month, Year: state.Period.Year},
		Transactions:   transactions,
		Categories:     state.Categories,
		SavingsPercent: state.SavingsPercent,
		WhatsAppNumber: state.WhatsAppNumber,
		TotalIncome:    state.TotalIncome,
		TotalExpense:   state.TotalExpense,
		FinalBalance:   state.FinalBalance,
	}
}

func transactionToDTO(t ledger.Transaction, runningBalance int64) TransactionDTO {
	dto := TransactionDTO{
		ID:             t.ID,
		Description:    t.Description,
		Income:         t.Income,
		Expense:        t.Expense,
		RunningBalance: runningBalance,
	}
	if t.CategoryID != "" {
		categoryID := t.CategoryID
		dto.CategoryID = &categoryID
	}
	return dto
}
