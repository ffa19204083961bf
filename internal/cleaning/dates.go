package cleaning

import (
	"time"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// dateLayouts covers the formats observed in real metadata dumps:
// ISO dates, bare years and "2020 Apr 7" style entries.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006 Jan 2",
	"2006 Jan",
	"Jan 2 2006",
	"2 Jan 2006",
	"2006",
}

// normalizeDates parses each configured date column into a date-typed
// column and derives <name>_year and <name>_month integer columns.
// Unparseable values are coerced to missing, never raised as errors;
// rows with a failed parse get missing year/month.
func (p *Pipeline) normalizeDates() {
	for _, name := range p.opts.DateColumns {
		col, ok := p.work.Column(name)
		if !ok {
			p.logger.Warn("date stage skipped, column absent", "column", name)
			continue
		}

		dates := col
		if col.Kind() != table.KindDate {
			dates = p.parseDateColumn(col)
			if err := p.work.ReplaceColumn(dates); err != nil {
				p.logger.Warn("date stage skipped", "column", name, "error", err)
				continue
			}
		}

		years := table.NewColumn(name+"_year", table.KindInt)
		months := table.NewColumn(name+"_month", table.KindInt)
		for i := 0; i < dates.Len(); i++ {
			d, ok := dates.Date(i)
			if !ok {
				years.AppendMissing()
				months.AppendMissing()
				continue
			}
			years.AppendInt(int64(d.Year()))
			months.AppendInt(int64(d.Month()))
		}

		// Re-running the pipeline re-derives both columns from the parsed dates.
		if err := p.work.ReplaceColumn(years); err != nil {
			p.logger.Warn("year derivation failed", "column", name, "error", err)
		}
		if err := p.work.ReplaceColumn(months); err != nil {
			p.logger.Warn("month derivation failed", "column", name, "error", err)
		}
	}
}

func (p *Pipeline) parseDateColumn(col *table.Column) *table.Column {
	parsed := table.NewColumn(col.Name(), table.KindDate)
	failures := 0

	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			parsed.AppendMissing()
			continue
		}
		var raw string
		switch col.Kind() {
		case table.KindText:
			raw = col.Text(i)
		default:
			// A numeric publish_time column means bare years.
			if v, ok := col.Float(i); ok {
				parsed.AppendDate(time.Date(int(v), time.January, 1, 0, 0, 0, 0, time.UTC))
				continue
			}
			parsed.AppendMissing()
			continue
		}

		if d, ok := parseDate(raw); ok {
			parsed.AppendDate(d)
		} else {
			parsed.AppendMissing()
			failures++
		}
	}

	if failures > 0 {
		p.logger.Warn("unparseable date values coerced to missing",
			"column", col.Name(),
			"values", failures)
	}

	return parsed
}

func parseDate(raw string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, raw); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
