// Package export writes aggregate results to downstream consumers: CSV
// files for downloads and an optional SQLite database for local querying.
// The cleaned-table CSV writer also backs the pre-cleaned cache file.
package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// CSVWriter renders aggregate tables as CSV files inside one directory.
type CSVWriter struct {
	dir    string
	logger *slog.Logger
}

// NewCSVWriter wires an output directory; it is created on first write.
func NewCSVWriter(dir string, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{dir: dir, logger: logger}
}

// WriteReport writes one CSV file per aggregate in the report.
func (w *CSVWriter) WriteReport(rep analysis.Report) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	files := []struct {
		name    string
		headers []string
		rows    [][]string
	}{
		{"yearly_counts.csv", []string{"year", "publication_count"}, yearRows(rep.YearlyCounts)},
		{"top_journals.csv", []string{"journal", "publication_count"}, categoryRows(rep.TopJournals)},
		{"top_words.csv", []string{"word", "frequency"}, wordRows(rep.TopWords)},
		{"source_distribution.csv", []string{"source", "count"}, categoryRows(rep.Sources)},
		{"monthly_trend.csv", []string{"month", "publication_count"}, monthRows(rep.MonthlyTrend)},
		{"summary.csv", []string{"metric", "value"}, summaryRows(rep.Summary)},
	}

	for _, f := range files {
		if err := w.writeFile(f.name, f.headers, f.rows); err != nil {
			return err
		}
	}

	w.logger.Info("aggregates exported", "dir", w.dir, "files", len(files))
	return nil
}

func (w *CSVWriter) writeFile(name string, headers []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("write header %s: %w", path, err)
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %s: %w", path, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func yearRows(counts []analysis.YearCount) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{strconv.Itoa(c.Year), strconv.Itoa(c.Count)}
	}
	return rows
}

func categoryRows(counts []analysis.CategoryCount) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Category, strconv.Itoa(c.Count)}
	}
	return rows
}

func wordRows(counts []analysis.WordCount) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Word, strconv.Itoa(c.Count)}
	}
	return rows
}

func monthRows(counts []analysis.MonthCount) [][]string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		rows[i] = []string{c.Month, strconv.Itoa(c.Count)}
	}
	return rows
}

func summaryRows(s analysis.Summary) [][]string {
	rows := [][]string{
		{"total_papers", strconv.Itoa(s.TotalRows)},
		{"unique_titles", strconv.Itoa(s.DistinctTitles)},
		{"total_journals", strconv.Itoa(s.DistinctJournals)},
	}
	if s.YearRange != "" {
		rows = append(rows, []string{"date_range", s.YearRange})
	}
	if s.HasAbstractMean {
		rows = append(rows, []string{"avg_abstract_length", strconv.FormatFloat(s.MeanAbstractWord, 'f', 1, 64)})
	}
	return rows
}

// WriteTable writes a full table as CSV with a header row; missing entries
// become empty cells. Used for the pre-cleaned cache file.
func WriteTable(t *table.Table, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	cw := csv.NewWriter(file)
	if err := cw.Write(t.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	names := t.ColumnNames()
	for row := 0; row < t.RowCount(); row++ {
		record := make([]string, len(names))
		for i, name := range names {
			col, _ := t.Column(name)
			record[i] = cellString(col, row)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", row+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

func cellString(col *table.Column, row int) string {
	if col.IsMissing(row) {
		return ""
	}
	switch col.Kind() {
	case table.KindInt:
		v, _ := col.Int(row)
		return strconv.FormatInt(v, 10)
	case table.KindFloat:
		v, _ := col.Float(row)
		return strconv.FormatFloat(v, 'g', -1, 64)
	case table.KindDate:
		d, _ := col.Date(row)
		return d.Format("2006-01-02")
	default:
		return col.Text(row)
	}
}
