package app

import (
	"context"
	"database/sql"

	"github.com/dompetku/dompetku/internal/event_bus"
	"github.com/dompetku/dompetku/internal/utils"
	"github.com/dompetku/dompetku/pkg/category"
	"github.com/dompetku/dompetku/pkg/categorizer"
	"github.com/dompetku/dompetku/pkg/report"
	"github.com/dompetku/dompetku/pkg/sheet"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus   *event_bus.EventBus
	Clock utils.Clock

	SheetRepo    sheet.Repository
	Matcher      *categorizer.Matcher
	SheetService *sheet.ServiceImpl
	SheetHandler *sheet.Handler

	CategoryHandler *category.Handler

	ExcelRenderer *report.ExcelRenderer
	CsvRenderer   *report.CsvRenderer
	ReportHandler *report.Handler
}

// BuildDependencies initializes and wires all application services and
// handlers. The persistence subscriber is registered before the sheet
// service publishes anything, so every mutation is written through.
func BuildDependencies(ctx context.Context, db *sql.DB) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewEventBus()
	deps.Clock = utils.SystemClock{}

	deps.SheetRepo = sheet.NewRepository(db)
	event_bus.SubscribeTyped[event_bus.SheetSnapshot](deps.Bus, event_bus.SheetUpdated,
		func(e event_bus.EventT[event_bus.SheetSnapshot]) error {
			return deps.SheetRepo.Store(e.Context(), e.Data.Data)
		})

	deps.Matcher = categorizer.NewMatcher()

	service, err := sheet.NewService(ctx, deps.SheetRepo, deps.Matcher, deps.Bus, deps.Clock)
	if err != nil {
		return nil, err
	}
	deps.SheetService = service
	deps.SheetHandler = sheet.NewHandler(deps.SheetService)

	deps.CategoryHandler = category.NewHandler(deps.SheetService)

	deps.ExcelRenderer = report.NewExcelRenderer()
	deps.CsvRenderer = report.NewCsvRenderer()
	deps.ReportHandler = report.NewHandler(deps.SheetService, deps.ExcelRenderer, deps.CsvRenderer)

	return deps, nil
}
