// Package analysis computes descriptive aggregates over a cleaned table:
// time-series counts, categorical top-N rankings, word-frequency
// histograms and summary scalars. Every operation is a read-only pure
// function of the table; results are computed fresh on each call.
package analysis

import (
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/cleaning"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

// Options names the columns the aggregates read. Candidate lists are tried
// in order; the first present column wins.
type Options struct {
	YearColumn          string
	MonthColumn         string
	TitleColumn         string
	AbstractWordsColumn string
	// JournalColumns are tried in order for journal rankings and counts.
	JournalColumns []string
	// SourceColumns are tried in order for the source distribution.
	SourceColumns []string
}

// DefaultOptions matches the derived-column names the cleaning pipeline
// produces for the CORD-19 schema.
func DefaultOptions() Options {
	return Options{
		YearColumn:          "publish_time_year",
		MonthColumn:         "publish_time_month",
		TitleColumn:         "title",
		AbstractWordsColumn: "abstract_word_count",
		JournalColumns:      []string{"journal", "source_x"},
		SourceColumns:       []string{"source_x", "url", "pmcid"},
	}
}

// YearCount is one bucket of the publications-per-year series.
type YearCount struct {
	Year  int
	Count int
}

// CategoryCount is one bucket of a categorical ranking.
type CategoryCount struct {
	Category string
	Count    int
}

// WordCount is one bucket of the title word-frequency histogram.
type WordCount struct {
	Word  string
	Count int
}

// MonthCount is one bucket of the monthly trend, labeled Jan..Dec.
type MonthCount struct {
	Month string
	Count int
}

// Summary collects the headline scalars of the dataset.
type Summary struct {
	TotalRows        int
	DistinctTitles   int
	YearRange        string // "min-max", empty when no year data
	MeanAbstractWord float64
	HasAbstractMean  bool
	DistinctJournals int
}

// Analyzer evaluates aggregates against a read-only table reference.
type Analyzer struct {
	t      *table.Table
	opts   Options
	logger *slog.Logger
}

// New wires an analyzer; the table is never mutated.
func New(t *table.Table, opts Options, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{t: t, opts: opts, logger: logger}
}

// CountsByYear returns (year, count) pairs sorted ascending by year.
// The result is empty when the year column is absent; rows with a missing
// year are not counted.
func (a *Analyzer) CountsByYear() []YearCount {
	col, ok := a.t.Column(a.opts.YearColumn)
	if !ok {
		a.logger.Warn("yearly counts unavailable, column absent", "column", a.opts.YearColumn)
		return nil
	}

	counts := map[int]int{}
	for i := 0; i < col.Len(); i++ {
		if y, ok := col.Int(i); ok {
			counts[int(y)]++
		}
	}

	out := make([]YearCount, 0, len(counts))
	for year, n := range counts {
		out = append(out, YearCount{Year: year, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopCategories tries each candidate column in order, counts the values of
// the first one present and returns the n most frequent categories in
// descending order. Ties keep first-encountered order; the Unknown
// sentinel is never ranked.
func (a *Analyzer) TopCategories(candidates []string, n int) []CategoryCount {
	for _, name := range candidates {
		col, ok := a.t.Column(name)
		if !ok {
			continue
		}

		counts := map[string]int{}
		var order []string
		for i := 0; i < col.Len(); i++ {
			if col.IsMissing(i) {
				continue
			}
			v := categoryValue(col, i)
			if v == "" || v == cleaning.Unknown {
				continue
			}
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}

		out := make([]CategoryCount, 0, len(order))
		for _, v := range order {
			out = append(out, CategoryCount{Category: v, Count: counts[v]})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
		if len(out) > n {
			out = out[:n]
		}
		return out
	}

	a.logger.Warn("category ranking unavailable, no candidate column present",
		"candidates", candidates)
	return nil
}

// TopJournals ranks the configured journal candidate columns.
func (a *Analyzer) TopJournals(n int) []CategoryCount {
	return a.TopCategories(a.opts.JournalColumns, n)
}

// TopWords builds a frequency ranking over all title text: case-folded,
// punctuation replaced by whitespace, tokens shorter than minLength or in
// the stopword set discarded. Ties keep first-encountered order.
func (a *Analyzer) TopWords(n, minLength int) []WordCount {
	col, ok := a.t.Column(a.opts.TitleColumn)
	if !ok {
		a.logger.Warn("word analysis unavailable, column absent", "column", a.opts.TitleColumn)
		return nil
	}

	counts := map[string]int{}
	var order []string
	total := 0
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			continue
		}
		for _, word := range tokenize(col.Text(i)) {
			if len(word) < minLength || IsStopword(word) {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
			total++
		}
	}

	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	if len(out) > n {
		out = out[:n]
	}

	a.logger.Debug("analyzed title words", "tokens", total, "distinct", len(counts))
	return out
}

// SourceDistribution counts every distinct value of the first candidate
// source column that has at least one present value. Missing entries are
// bucketed under the Unknown sentinel; the result is sorted descending.
func (a *Analyzer) SourceDistribution() []CategoryCount {
	for _, name := range a.opts.SourceColumns {
		col, ok := a.t.Column(name)
		if !ok || col.NullCount() == col.Len() {
			continue
		}

		counts := map[string]int{}
		var order []string
		for i := 0; i < col.Len(); i++ {
			v := cleaning.Unknown
			if !col.IsMissing(i) {
				v = categoryValue(col, i)
			}
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}

		out := make([]CategoryCount, 0, len(order))
		for _, v := range order {
			out = append(out, CategoryCount{Category: v, Count: counts[v]})
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

		a.logger.Debug("source distribution computed", "column", name)
		return out
	}

	a.logger.Warn("source distribution unavailable, no candidate column present",
		"candidates", a.opts.SourceColumns)
	return nil
}

// monthLabels maps calendar months to their three-letter abbreviations.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// MonthlyTrend returns per-month counts ordered by calendar month; months
// with no rows are omitted, mirroring the yearly series.
func (a *Analyzer) MonthlyTrend() []MonthCount {
	col, ok := a.t.Column(a.opts.MonthColumn)
	if !ok {
		a.logger.Warn("monthly trend unavailable, column absent", "column", a.opts.MonthColumn)
		return nil
	}

	counts := [13]int{}
	for i := 0; i < col.Len(); i++ {
		if m, ok := col.Int(i); ok && m >= 1 && m <= 12 {
			counts[m]++
		}
	}

	var out []MonthCount
	for m := 1; m <= 12; m++ {
		if counts[m] > 0 {
			out = append(out, MonthCount{Month: monthLabels[m-1], Count: counts[m]})
		}
	}
	return out
}

// SummaryStatistics collects the headline scalars: row and distinct-title
// counts, the observed year range, the mean abstract length rounded to one
// decimal and the distinct journal count from the first candidate present.
func (a *Analyzer) SummaryStatistics() Summary {
	s := Summary{TotalRows: a.t.RowCount()}

	if col, ok := a.t.Column(a.opts.TitleColumn); ok {
		s.DistinctTitles = distinctCount(col)
	}

	if col, ok := a.t.Column(a.opts.YearColumn); ok {
		minYear, maxYear := int64(math.MaxInt64), int64(math.MinInt64)
		for i := 0; i < col.Len(); i++ {
			if y, ok := col.Int(i); ok {
				if y < minYear {
					minYear = y
				}
				if y > maxYear {
					maxYear = y
				}
			}
		}
		if minYear <= maxYear {
			s.YearRange = fmt.Sprintf("%d-%d", minYear, maxYear)
		}
	}

	if col, ok := a.t.Column(a.opts.AbstractWordsColumn); ok {
		if mean, ok := col.Mean(); ok {
			s.MeanAbstractWord = math.Round(mean*10) / 10
			s.HasAbstractMean = true
		}
	}

	for _, name := range a.opts.JournalColumns {
		if col, ok := a.t.Column(name); ok {
			s.DistinctJournals = distinctCount(col)
			break
		}
	}

	return s
}

// tokenize lowercases the text and splits on everything that is not a
// letter, digit or underscore.
func tokenize(text string) []string {
	text = strings.ToLower(text)
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

// categoryValue renders a cell as a category label regardless of kind.
func categoryValue(col *table.Column, i int) string {
	switch col.Kind() {
	case table.KindText:
		return col.Text(i)
	case table.KindInt:
		v, _ := col.Int(i)
		return fmt.Sprintf("%d", v)
	case table.KindFloat:
		v, _ := col.Float(i)
		return fmt.Sprintf("%g", v)
	case table.KindDate:
		d, _ := col.Date(i)
		return d.Format("2006-01-02")
	}
	return ""
}

func distinctCount(col *table.Column) int {
	seen := map[string]struct{}{}
	for i := 0; i < col.Len(); i++ {
		if col.IsMissing(i) {
			continue
		}
		seen[categoryValue(col, i)] = struct{}{}
	}
	return len(seen)
}
