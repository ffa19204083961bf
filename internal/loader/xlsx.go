package loader

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// XLSXFormat reads the first sheet of an Excel workbook; some metadata
// exports ship as .xlsx instead of CSV.
type XLSXFormat struct{}

var _ Format = (*XLSXFormat)(nil)

// Name identifies the format in logs.
func (f *XLSXFormat) Name() string { return "xlsx" }

// Extensions lists the file extensions this format claims.
func (f *XLSXFormat) Extensions() []string { return []string{".xlsx"} }

// Read parses the first sheet, stopping after maxRows data rows when positive.
func (f *XLSXFormat) Read(path string, maxRows int) ([]string, [][]string, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer book.Close()

	sheets := book.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := book.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	headers := rows[0]
	records := rows[1:]
	if maxRows > 0 && len(records) > maxRows {
		records = records[:maxRows]
	}

	return headers, records, nil
}
