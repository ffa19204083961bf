package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// CSVFormat reads comma-delimited files with a header row.
type CSVFormat struct {
	// Comma overrides the delimiter; zero means ','.
	Comma rune
}

var _ Format = (*CSVFormat)(nil)

// Name identifies the format in logs.
func (f *CSVFormat) Name() string { return "csv" }

// Extensions lists the file extensions this format claims.
func (f *CSVFormat) Extensions() []string { return []string{".csv"} }

// Read parses the file, stopping after maxRows data rows when positive.
func (f *CSVFormat) Read(path string, maxRows int) ([]string, [][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(bufio.NewReader(file))
	if f.Comma != 0 {
		reader.Comma = f.Comma
	}
	// Real-world metadata dumps have ragged rows; missing cells become
	// missing values during table construction.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err == io.EOF {
		return nil, nil, fmt.Errorf("file is empty")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	var records [][]string
	for maxRows <= 0 || len(records) < maxRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("read row %d: %w", len(records)+2, err)
		}
		records = append(records, record)
	}

	return headers, records, nil
}
