package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/dompetku/dompetku/pkg/sheet"
	log "github.com/sirupsen/logrus"
)

// CsvRenderer renders the transaction table as CSV for import into other
// spreadsheet tools.
type CsvRenderer struct{}

func NewCsvRenderer() *CsvRenderer {
	return &CsvRenderer{}
}

func (r *CsvRenderer) Render(state sheet.State, breakdown []sheet.BreakdownEntry) (Artifact, error) {
	data := make([][]string, 0, len(state.Transactions)+2)
	data = append(data, []string{"No", "Keterangan", "Kategori", "Masuk", "Keluar", "Sisa"})
	for i, t := range state.Transactions {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			t.Description,
			categoryName(state, t.CategoryID),
			strconv.FormatInt(t.Income, 10),
			strconv.FormatInt(t.Expense, 10),
			strconv.FormatInt(state.RunningBalances[i], 10),
		})
	}
	data = append(data, []string{
		"", "Total", "",
		strconv.FormatInt(state.TotalIncome, 10),
		strconv.FormatInt(state.TotalExpense, 10),
		strconv.FormatInt(state.FinalBalance, 10),
	})

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return Artifact{}, err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return Artifact{}, err
	}

	return Artifact{
		Filename:    fmt.Sprintf("Laporan-Keuangan-%s-%d.csv", MonthName(state.Period.Month), state.Period.Year),
		ContentType: "text/csv; charset=utf-8",
		Data:        b.Bytes(),
	}, nil
}

var _ SnapshotRenderer = (*CsvRenderer)(nil)
