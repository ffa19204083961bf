// Package cleaning applies the fixed-order remediation stages that turn a
// raw metadata table into the analyzable form: drop high-missing columns,
// impute, normalize dates, derive text features, normalize text, filter
// rows. Every stage tolerates absent columns and is safe to re-run on
// already-cleaned data.
package cleaning

import (
	"log/slog"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// Unknown is the sentinel written into imputed text cells. The aggregation
// engine treats it as a non-category.
const Unknown = "Unknown"

// Pipeline owns a private working copy of the table handed to it; the
// caller's original is never mutated.
type Pipeline struct {
	work   *table.Table
	opts   Options
	logger *slog.Logger
}

// NewPipeline clones the input table and wires options and diagnostics.
func NewPipeline(t *table.Table, opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{work: t.Clone(), opts: opts, logger: logger}
}

// CleanedCopy runs all stages in order on the working copy and returns a
// fresh copy of the result. Re-invoking re-applies the stages to the
// pipeline's current working copy; stages are designed so that is a no-op
// on already-cleaned data.
func (p *Pipeline) CleanedCopy() *table.Table {
	before := p.work.RowCount()

	p.remediateMissing()
	p.normalizeDates()
	p.deriveTextFeatures()
	p.normalizeText()
	p.filterRows()

	p.logger.Info("cleaning finished",
		"rows_in", before,
		"rows_out", p.work.RowCount(),
		"columns", p.work.ColumnCount())

	return p.work.Clone()
}

// remediateMissing drops columns whose missing fraction exceeds the
// threshold, then fills the remaining gaps: text columns get the Unknown
// sentinel, numeric columns their median over present values. A numeric
// column with no present values keeps its missing mask untouched.
func (p *Pipeline) remediateMissing() {
	rows := p.work.RowCount()
	if rows == 0 {
		return
	}

	for _, name := range p.work.ColumnNames() {
		col, _ := p.work.Column(name)
		fraction := float64(col.NullCount()) / float64(rows)
		if fraction > p.opts.DropThreshold {
			p.work.DropColumn(name)
			p.logger.Info("dropped high-missing column",
				"column", name,
				"missing_fraction", fraction)
		}
	}

	for _, name := range p.work.ColumnNames() {
		col, _ := p.work.Column(name)
		switch {
		case col.Kind() == table.KindText:
			for i := 0; i < col.Len(); i++ {
				if col.IsMissing(i) {
					col.SetText(i, Unknown)
				}
			}
		case col.Kind().Numeric():
			median, ok := col.Median()
			if !ok {
				continue
			}
			for i := 0; i < col.Len(); i++ {
				if !col.IsMissing(i) {
					continue
				}
				if col.Kind() == table.KindInt {
					col.SetInt(i, int64(median))
				} else {
					col.SetFloat(i, median)
				}
			}
		}
	}
}

// filterRows keeps rows whose derived year is present and inside the
// configured range, then drops rows with a missing, empty or Unknown title.
func (p *Pipeline) filterRows() {
	for _, dateCol := range p.opts.DateColumns {
		yearName := dateCol + "_year"
		col, ok := p.work.Column(yearName)
		if !ok {
			continue
		}
		before := p.work.RowCount()
		p.work.Retain(func(row int) bool {
			year, ok := col.Int(row)
			if !ok {
				return false
			}
			return year >= int64(p.opts.YearMin) && year <= int64(p.opts.YearMax)
		})
		p.logger.Info("filtered rows by year",
			"column", yearName,
			"min", p.opts.YearMin,
			"max", p.opts.YearMax,
			"rows_before", before,
			"rows_after", p.work.RowCount())
	}

	if title, ok := p.work.Column(p.opts.TitleColumn); ok {
		before := p.work.RowCount()
		p.work.Retain(func(row int) bool {
			if title.IsMissing(row) {
				return false
			}
			v := title.Text(row)
			return v != "" && v != Unknown
		})
		if dropped := before - p.work.RowCount(); dropped > 0 {
			p.logger.Info("dropped rows without usable title", "rows", dropped)
		}
	} else if p.opts.TitleColumn != "" {
		p.logger.Warn("title filter skipped, column absent", "column", p.opts.TitleColumn)
	}
}
