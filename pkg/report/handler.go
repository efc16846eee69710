package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/dompetku/dompetku/internal/utils"
	"github.com/dompetku/dompetku/pkg/sheet"
	log "github.com/sirupsen/logrus"
)

// SheetReader is the read-only slice of the sheet service the report
// endpoints consume.
type SheetReader interface {
	State(ctx context.Context) sheet.State
	Breakdown(ctx context.Context) []sheet.BreakdownEntry
	ExportState(ctx context.Context) (sheet.State, []sheet.BreakdownEntry)
}

type BreakdownEntryDTO struct {
	CategoryID   string  `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	Color        string  `json:"color"`
	Total        int64   `json:"total"`
	Percent      float64 `json:"percent"`
}

type Handler struct {
	reader SheetReader
	excel  SnapshotRenderer
	csv    SnapshotRenderer
}

func NewHandler(reader SheetReader, excel, csv SnapshotRenderer) *Handler {
	return &Handler{reader: reader, excel: excel, csv: csv}
}

func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary := BuildSummary(h.reader.State(r.Context()))

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) GetBreakdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	breakdown := h.reader.Breakdown(r.Context())
	dtos := make([]BreakdownEntryDTO, 0, len(breakdown))
	for _, entry := range breakdown {
		dtos = append(dtos, BreakdownEntryDTO{
			CategoryID:   entry.CategoryID,
			CategoryName: entry.CategoryName,
			Color:        entry.Color,
			Total:        entry.Total,
			Percent:      entry.Percent,
		})
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

// GetWhatsAppLink returns the share message and the wa.me deep link. Without
// a configured number it answers 409 so the frontend can send the user to
// settings, the one blocking validation in the share flow.
func (h *Handler) GetWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	state := h.reader.State(r.Context())
	message := BuildMessage(state)
	link, err := Link(state.WhatsAppNumber, message)
	if err != nil {
		if errors.Is(err, ErrNoRecipient) {
			http.Error(w, "Mohon isi nomor WhatsApp terlebih dahulu.", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := struct {
		URL     string `json:"url"`
		Message string `json:"message"`
		Summary string `json:"summary"`
	}{
		URL:     link,
		Message: message,
		Summary: fmt.Sprintf("Sisa Saldo: Rp %s", utils.FormatRupiah(state.FinalBalance)),
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) ExportExcel(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.excel)
}

func (h *Handler) ExportCsv(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, h.csv)
}

// export renders the current sheet through the given renderer. A renderer
// failure produces no file and a plain error response; the sheet itself is
// untouched, so the failure is never fatal to the session.
func (h *Handler) export(w http.ResponseWriter, r *http.Request, renderer SnapshotRenderer) {
	state, breakdown := h.reader.ExportState(r.Context())

	artifact, err := renderer.Render(state, breakdown)
	if err != nil {
		log.Errorf("failed to render report: %v", err)
		http.Error(w, "failed to generate report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", artifact.Filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.Data); err != nil {
		log.Errorf("failed to write report response: %v", err)
	}
}
