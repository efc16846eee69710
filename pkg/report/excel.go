package report

import (
	"bytes"
	"fmt"

	"github.com/dompetku/dompetku/pkg/sheet"
	"github.com/xuri/excelize/v2"
)

// Artifact is a rendered, downloadable report file.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SnapshotRenderer produces a report artifact from a consistent sheet state.
// The state must be taken as one atomic read: rendering never goes back to
// the live sheet. The raster-image renderer of the original report lives
// behind this same interface, outside this repository.
type SnapshotRenderer interface {
	Render(state sheet.State, breakdown []sheet.BreakdownEntry) (Artifact, error)
}

// ExcelRenderer renders the full report as an xlsx workbook: the transaction
// table with running balances on one sheet, the category breakdown on a
// second.
type ExcelRenderer struct{}

func NewExcelRenderer() *ExcelRenderer {
	return &ExcelRenderer{}
}

const (
	tableSheet     = "Laporan"
	breakdownSheet = "Kategori"
)

func (r *ExcelRenderer) Render(state sheet.State, breakdown []sheet.BreakdownEntry) (Artifact, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", tableSheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"0284C7"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	totalStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"F1F5F9"}, Pattern: 1},
	})

	summary := BuildSummary(state)
	f.SetCellValue(tableSheet, "A1", summary.Title)
	f.MergeCell(tableSheet, "A1", "F1")
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(tableSheet, "A1", "A1", titleStyle)

	f.SetColWidth(tableSheet, "A", "A", 6)
	f.SetColWidth(tableSheet, "B", "B", 30)
	f.SetColWidth(tableSheet, "C", "C", 22)
	f.SetColWidth(tableSheet, "D", "F", 16)

	headers := []string{"No", "Keterangan", "Kategori", "Masuk", "Keluar", "Sisa"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c3", 'A'+i)
		f.SetCellValue(tableSheet, cell, header)
		f.SetCellStyle(tableSheet, cell, cell, headerStyle)
	}

	for i, t := range state.Transactions {
		row := i + 4
		f.SetCellValue(tableSheet, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(tableSheet, fmt.Sprintf("B%d", row), t.Description)
		f.SetCellValue(tableSheet, fmt.Sprintf("C%d", row), categoryName(state, t.CategoryID))
		f.SetCellValue(tableSheet, fmt.Sprintf("D%d", row), t.Income)
		f.SetCellValue(tableSheet, fmt.Sprintf("E%d", row), t.Expense)
		f.SetCellValue(tableSheet, fmt.Sprintf("F%d", row), state.RunningBalances[i])
	}

	totalRow := len(state.Transactions) + 4
	f.SetCellValue(tableSheet, fmt.Sprintf("A%d", totalRow), "Total")
	f.MergeCell(tableSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("C%d", totalRow))
	f.SetCellValue(tableSheet, fmt.Sprintf("D%d", totalRow), state.TotalIncome)
	f.SetCellValue(tableSheet, fmt.Sprintf("E%d", totalRow), state.TotalExpense)
	f.SetCellValue(tableSheet, fmt.Sprintf("F%d", totalRow), state.FinalBalance)
	f.SetCellStyle(tableSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("F%d", totalRow), totalStyle)

	if _, err := f.NewSheet(breakdownSheet); err != nil {
		return Artifact{}, fmt.Errorf("could not create breakdown sheet: %w", err)
	}
	f.SetColWidth(breakdownSheet, "A", "A", 24)
	f.SetColWidth(breakdownSheet, "B", "C", 16)
	for i, header := range []string{"Kategori", "Total", "Persen"} {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(breakdownSheet, cell, header)
		f.SetCellStyle(breakdownSheet, cell, cell, headerStyle)
	}
	for i, entry := range breakdown {
		row := i + 2
		f.SetCellValue(breakdownSheet, fmt.Sprintf("A%d", row), entry.CategoryName)
		f.SetCellValue(breakdownSheet, fmt.Sprintf("B%d", row), entry.Total)
		f.SetCellValue(breakdownSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("%.1f%%", entry.Percent))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return Artifact{}, fmt.Errorf("could not write workbook: %w", err)
	}

	return Artifact{
		Filename:    fmt.Sprintf("Laporan-Keuangan-%s-%d.xlsx", MonthName(state.Period.Month), state.Period.Year),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        buf.Bytes(),
	}, nil
}

var _ SnapshotRenderer = (*ExcelRenderer)(nil)
