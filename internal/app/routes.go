package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Budget sheet
	r.HandleFunc("/api/sheet", deps.SheetHandler.GetSheet).Methods("GET")
	r.HandleFunc("/api/sheet/period", deps.SheetHandler.SetPeriod).Methods("PUT")
	r.HandleFunc("/api/sheet/savings-percent", deps.SheetHandler.SetSavingsPercent).Methods("PUT")
	r.HandleFunc("/api/sheet/whatsapp-number", deps.SheetHandler.SetWhatsAppNumber).Methods("PUT")

	// Transactions
	r.HandleFunc("/api/transaction", deps.SheetHandler.AddTransaction).Methods("POST")
	r.HandleFunc("/api/transaction/savings", deps.SheetHandler.AddSavingsEntry).Methods("POST")
	r.HandleFunc("/api/transaction/{id}", deps.SheetHandler.UpdateTransaction).Methods("PATCH")
	r.HandleFunc("/api/transaction/{id}", deps.SheetHandler.DeleteTransaction).Methods("DELETE")

	// Categories
	r.HandleFunc("/api/category", deps.CategoryHandler.List).Methods("GET")
	r.HandleFunc("/api/category", deps.CategoryHandler.Create).Methods("POST")
	r.HandleFunc("/api/category/{id}", deps.CategoryHandler.Delete).Methods("DELETE")

	// Reports & sharing
	r.HandleFunc("/api/report/summary", deps.ReportHandler.GetSummary).Methods("GET")
	r.HandleFunc("/api/report/breakdown", deps.ReportHandler.GetBreakdown).Methods("GET")
	r.HandleFunc("/api/report/whatsapp", deps.ReportHandler.GetWhatsAppLink).Methods("GET")
	r.HandleFunc("/api/report/export", deps.ReportHandler.ExportExcel).Methods("GET")
	r.HandleFunc("/api/report/export.csv", deps.ReportHandler.ExportCsv).Methods("GET")
}
