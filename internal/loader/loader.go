// Package loader reads delimited metadata files into the columnar table
// model. Formats register themselves in a registry keyed by file extension;
// column types are inferred once at load time so downstream stages work
// with typed columns instead of re-coercing strings.
package loader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// Format parses one on-disk representation into raw header/record form.
type Format interface {
	Name() string
	Extensions() []string
	Read(path string, maxRows int) (headers []string, records [][]string, err error)
}

// Registry maps file extensions to format implementations.
type Registry struct {
	formats map[string]Format
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{formats: map[string]Format{}}
}

// Register adds or replaces a format for each extension it claims.
func (r *Registry) Register(f Format) {
	if r.formats == nil {
		r.formats = map[string]Format{}
	}
	for _, ext := range f.Extensions() {
		r.formats[strings.ToLower(ext)] = f
	}
}

// Resolve returns the format for a path's extension or an error if unsupported.
func (r *Registry) Resolve(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := r.formats[ext]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unsupported dataset format %q", ext)
}

// Loader turns dataset files into typed tables.
type Loader struct {
	registry *Registry
	logger   *slog.Logger
}

// New wires a loader with the CSV and XLSX formats registered.
func New(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	reg := NewRegistry()
	reg.Register(&CSVFormat{})
	reg.Register(&XLSXFormat{})
	return &Loader{registry: reg, logger: logger}
}

// Load reads at most maxRows data rows (all rows when maxRows <= 0) and
// returns a typed table. The file must exist and parse cleanly; both
// failures are fatal and surfaced as NotFoundError / ParseError.
func (l *Loader) Load(path string, maxRows int) (*table.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &NotFoundError{Path: path}
	}

	format, err := l.registry.Resolve(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	headers, records, err := format.Read(path, maxRows)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	t, err := buildTable(headers, records)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	l.logger.Info("dataset loaded",
		"path", path,
		"format", format.Name(),
		"rows", t.RowCount(),
		"columns", t.ColumnCount())

	return t, nil
}

// buildTable infers a type per column and materializes typed columns.
// Empty cells become missing entries, never empty-string values.
func buildTable(headers []string, records [][]string) (*table.Table, error) {
	headers = dedupeHeaders(headers)
	t := table.New()

	for idx, name := range headers {
		kind := inferKind(records, idx)
		col := table.NewColumn(name, kind)
		for _, rec := range records {
			cell := ""
			if idx < len(rec) {
				cell = strings.TrimSpace(rec[idx])
			}
			if cell == "" {
				col.AppendMissing()
				continue
			}
			switch kind {
			case table.KindInt:
				v, _ := strconv.ParseInt(cell, 10, 64)
				col.AppendInt(v)
			case table.KindFloat:
				v, _ := strconv.ParseFloat(cell, 64)
				col.AppendFloat(v)
			default:
				col.AppendText(cell)
			}
		}
		if err := t.AddColumn(col); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// inferKind picks the narrowest type every present cell of the column fits.
func inferKind(records [][]string, idx int) table.Kind {
	present := 0
	allInt, allFloat := true, true

	for _, rec := range records {
		if idx >= len(rec) {
			continue
		}
		cell := strings.TrimSpace(rec[idx])
		if cell == "" {
			continue
		}
		present++
		if _, err := strconv.ParseInt(cell, 10, 64); err != nil {
			allInt = false
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			allFloat = false
		}
		if !allInt && !allFloat {
			return table.KindText
		}
	}

	switch {
	case present == 0:
		return table.KindText
	case allInt:
		return table.KindInt
	case allFloat:
		return table.KindFloat
	default:
		return table.KindText
	}
}

// dedupeHeaders fills blanks and renames duplicates so column names stay unique.
func dedupeHeaders(headers []string) []string {
	counts := map[string]int{}
	out := make([]string, len(headers))
	for i, h := range headers {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		if n := counts[h]; n > 0 {
			counts[h] = n + 1
			h = fmt.Sprintf("%s_%d", h, n)
		}
		counts[h]++
		out[i] = h
	}
	return out
}
