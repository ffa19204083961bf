package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

func textColumn(t *testing.T, name string, values ...string) *table.Column {
	t.Helper()
	col := table.NewColumn(name, table.KindText)
	for _, v := range values {
		if v == "" {
			col.AppendMissing()
		} else {
			col.AppendText(v)
		}
	}
	return col
}

// metadataTable builds a small but realistic slice of the dataset.
func metadataTable(t *testing.T) *table.Table {
	t.Helper()
	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title",
		"COVID-19 Transmission Study",
		"Transmission patterns in bats",
		"Old paper",
		"",
	)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "abstract",
		"A detailed study of transmission.",
		"",
		"Before the pandemic.",
		"Orphan abstract.",
	)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "authors",
		"Smith, J.; Doe, A.",
		"",
		"Solo, H.",
		"",
	)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "publish_time",
		"2020-03-15",
		"2021-07-01",
		"2018-01-10",
		"2020-05-05",
	)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "journal",
		"Nature",
		"Science",
		"Nature",
		"",
	)))
	return tbl
}

func TestCleanedCopyDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := metadataTable(t)
	NewPipeline(input, DefaultOptions(), nil).CleanedCopy()

	assert.Equal(t, 4, input.RowCount())
	authors, _ := input.Column("authors")
	assert.True(t, authors.IsMissing(1))
}

func TestCleanedCopyEndToEnd(t *testing.T) {
	t.Parallel()

	cleaned := NewPipeline(metadataTable(t), DefaultOptions(), nil).CleanedCopy()

	// 2018 row filtered by year range, missing-title row dropped.
	require.Equal(t, 2, cleaned.RowCount())

	year, ok := cleaned.Column("publish_time_year")
	require.True(t, ok)
	y0, _ := year.Int(0)
	y1, _ := year.Int(1)
	assert.Equal(t, int64(2020), y0)
	assert.Equal(t, int64(2021), y1)

	month, ok := cleaned.Column("publish_time_month")
	require.True(t, ok)
	m0, _ := month.Int(0)
	assert.Equal(t, int64(3), m0)

	words, ok := cleaned.Column("abstract_word_count")
	require.True(t, ok)
	w0, _ := words.Int(0)
	assert.Equal(t, int64(5), w0)

	titleWords, ok := cleaned.Column("title_word_count")
	require.True(t, ok)
	tw0, _ := titleWords.Int(0)
	assert.Equal(t, int64(3), tw0)

	authors, ok := cleaned.Column("author_count")
	require.True(t, ok)
	a0, _ := authors.Int(0)
	a1, _ := authors.Int(1)
	assert.Equal(t, int64(2), a0)
	// Imputed to Unknown, which counts as zero authors.
	assert.Equal(t, int64(0), a1)
}

func TestCleaningIsIdempotent(t *testing.T) {
	t.Parallel()

	pipeline := NewPipeline(metadataTable(t), DefaultOptions(), nil)
	once := pipeline.CleanedCopy()
	twice := pipeline.CleanedCopy()

	require.Equal(t, once.RowCount(), twice.RowCount())
	require.Equal(t, once.ColumnNames(), twice.ColumnNames())

	for _, name := range once.ColumnNames() {
		a, _ := once.Column(name)
		b, _ := twice.Column(name)
		for i := 0; i < a.Len(); i++ {
			assert.Equal(t, a.IsMissing(i), b.IsMissing(i), "column %s row %d", name, i)
			assert.Equal(t, a.Text(i), b.Text(i), "column %s row %d", name, i)
		}
	}
}

func TestSchemaToleranceNeverPanics(t *testing.T) {
	t.Parallel()

	empty := table.New()
	assert.NotPanics(t, func() {
		NewPipeline(empty, DefaultOptions(), nil).CleanedCopy()
	})

	unrelated := table.New()
	require.NoError(t, unrelated.AddColumn(textColumn(t, "doi", "10.1/a", "10.1/b")))
	cleaned := NewPipeline(unrelated, DefaultOptions(), nil).CleanedCopy()
	assert.Equal(t, 2, cleaned.RowCount())
}

func TestMissingRemediationImputesMedian(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	col := table.NewColumn("citations", table.KindInt)
	col.AppendInt(1)
	col.AppendMissing()
	col.AppendInt(3)
	col.AppendMissing()
	col.AppendInt(5)
	require.NoError(t, tbl.AddColumn(col))

	opts := DefaultOptions()
	opts.DateColumns = nil
	opts.TitleColumn = ""
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	got, _ := cleaned.Column("citations")
	for _, i := range []int{1, 3} {
		v, ok := got.Int(i)
		require.True(t, ok, "row %d still missing", i)
		assert.Equal(t, int64(3), v)
	}
}

func TestMissingRemediationDropThreshold(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	mostlyMissing := table.NewColumn("mostly_missing", table.KindText)
	somewhatMissing := table.NewColumn("somewhat_missing", table.KindText)
	for i := 0; i < 20; i++ {
		if i < 15 { // 75% missing
			mostlyMissing.AppendMissing()
		} else {
			mostlyMissing.AppendText("x")
		}
		if i < 13 { // 65% missing
			somewhatMissing.AppendMissing()
		} else {
			somewhatMissing.AppendText("y")
		}
	}
	require.NoError(t, tbl.AddColumn(mostlyMissing))
	require.NoError(t, tbl.AddColumn(somewhatMissing))

	opts := DefaultOptions()
	opts.DateColumns = nil
	opts.TitleColumn = ""
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	assert.False(t, cleaned.HasColumn("mostly_missing"))

	kept, ok := cleaned.Column("somewhat_missing")
	require.True(t, ok)
	assert.Equal(t, Unknown, kept.Text(0))
	assert.Equal(t, 0, kept.NullCount())
}

func TestAllMissingNumericColumnStaysMissing(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	col := table.NewColumn("score", table.KindFloat)
	col.AppendMissing()
	col.AppendMissing()
	require.NoError(t, tbl.AddColumn(col))

	opts := DefaultOptions()
	opts.DropThreshold = 1.1 // keep even fully missing columns
	opts.DateColumns = nil
	opts.TitleColumn = ""
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	got, ok := cleaned.Column("score")
	require.True(t, ok)
	assert.Equal(t, 2, got.NullCount())
}

func TestDateParseFailureCoercedToMissing(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "publish_time", "2020-01-02", "garbage", "2020 Apr 7")))

	opts := DefaultOptions()
	opts.TitleColumn = ""
	opts.YearMin = 0
	opts.YearMax = 9999
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	// The unparseable row has a missing year and is dropped by the filter.
	require.Equal(t, 2, cleaned.RowCount())
	month, _ := cleaned.Column("publish_time_month")
	m1, ok := month.Int(1)
	require.True(t, ok)
	assert.Equal(t, int64(4), m1)
}

func TestNormalizeTextStripsMarkupAndNonASCII(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title", "A   <b>bold</b>\tclaimé", "plain")))

	opts := DefaultOptions()
	opts.DateColumns = nil
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	title, _ := cleaned.Column("title")
	assert.Equal(t, "A bold claim", title.Text(0))
	assert.Equal(t, "plain", title.Text(1))
}

func TestUnknownTitleRowsDropped(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title", "Kept", Unknown, "")))

	opts := DefaultOptions()
	opts.DateColumns = nil
	cleaned := NewPipeline(tbl, opts, nil).CleanedCopy()

	require.Equal(t, 1, cleaned.RowCount())
	title, _ := cleaned.Column("title")
	assert.Equal(t, "Kept", title.Text(0))
}
