package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/analysis"
	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

func sampleReport() analysis.Report {
	return analysis.Report{
		Summary: analysis.Summary{
			TotalRows:        10,
			DistinctTitles:   9,
			YearRange:        "2019-2021",
			MeanAbstractWord: 120.5,
			HasAbstractMean:  true,
			DistinctJournals: 4,
		},
		YearlyCounts: []analysis.YearCount{{Year: 2019, Count: 3}, {Year: 2020, Count: 7}},
		TopJournals:  []analysis.CategoryCount{{Category: "Nature", Count: 5}},
		TopWords:     []analysis.WordCount{{Word: "transmission", Count: 12}},
		Sources:      []analysis.CategoryCount{{Category: "PMC", Count: 8}, {Category: "Unknown", Count: 2}},
		MonthlyTrend: []analysis.MonthCount{{Month: "Jan", Count: 4}, {Month: "Apr", Count: 6}},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()
	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriteReport(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "exports")
	require.NoError(t, NewCSVWriter(dir, nil).WriteReport(sampleReport()))

	years := readCSV(t, filepath.Join(dir, "yearly_counts.csv"))
	require.Equal(t, [][]string{
		{"year", "publication_count"},
		{"2019", "3"},
		{"2020", "7"},
	}, years)

	words := readCSV(t, filepath.Join(dir, "top_words.csv"))
	assert.Equal(t, []string{"transmission", "12"}, words[1])

	summary := readCSV(t, filepath.Join(dir, "summary.csv"))
	assert.Contains(t, summary, []string{"date_range", "2019-2021"})
	assert.Contains(t, summary, []string{"avg_abstract_length", "120.5"})

	for _, name := range []string{"top_journals.csv", "source_distribution.csv", "monthly_trend.csv"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestWriteTableRendersMissingAsEmpty(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	title := table.NewColumn("title", table.KindText)
	title.AppendText("First")
	title.AppendMissing()
	require.NoError(t, tbl.AddColumn(title))

	year := table.NewColumn("year", table.KindInt)
	year.AppendInt(2020)
	year.AppendMissing()
	require.NoError(t, tbl.AddColumn(year))

	path := filepath.Join(t.TempDir(), "cleaned_metadata.csv")
	require.NoError(t, WriteTable(tbl, path))

	rows := readCSV(t, path)
	require.Equal(t, [][]string{
		{"title", "year"},
		{"First", "2020"},
		{"", ""},
	}, rows)
}

func TestSQLiteSinkSaveReport(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "aggregates.db")
	sink, err := OpenSQLite(path, nil)
	require.NoError(t, err)
	defer sink.Close()

	ctx := context.Background()
	require.NoError(t, sink.SaveReport(ctx, "run-1", sampleReport()))
	// Saving the same run again replaces its rows instead of duplicating.
	require.NoError(t, sink.SaveReport(ctx, "run-1", sampleReport()))

	var summaries int
	require.NoError(t, sink.db.QueryRow(
		"SELECT COUNT(*) FROM run_summaries").Scan(&summaries))
	assert.Equal(t, 1, summaries)

	var buckets int
	require.NoError(t, sink.db.QueryRow(
		"SELECT COUNT(*) FROM aggregate_counts WHERE run_id = ?", "run-1").Scan(&buckets))
	assert.Equal(t, 8, buckets)

	var natureCount int
	require.NoError(t, sink.db.QueryRow(
		"SELECT count FROM aggregate_counts WHERE aggregate = 'top_journals' AND bucket = 'Nature'").
		Scan(&natureCount))
	assert.Equal(t, 5, natureCount)
}
