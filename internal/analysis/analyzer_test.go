package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kipkoech-88/Frameworks-Assignment/internal/table"
)

func intColumn(t *testing.T, name string, values ...int) *table.Column {
	t.Helper()
	col := table.NewColumn(name, table.KindInt)
	for _, v := range values {
		if v < 0 {
			col.AppendMissing()
		} else {
			col.AppendInt(int64(v))
		}
	}
	return col
}

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

func TestCountsByYear(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(intColumn(t, "publish_time_year",
		2021, 2019, 2021, -1, 2020, 2021)))

	got := New(tbl, DefaultOptions(), nil).CountsByYear()

	require.Equal(t, []YearCount{
		{Year: 2019, Count: 1},
		{Year: 2020, Count: 1},
		{Year: 2021, Count: 3},
	}, got)

	// Years strictly increasing, counts sum to non-missing rows.
	sum := 0
	for i, yc := range got {
		if i > 0 {
			assert.Greater(t, yc.Year, got[i-1].Year)
		}
		sum += yc.Count
	}
	assert.Equal(t, 5, sum)
}

func TestCountsByYearWithoutColumn(t *testing.T) {
	t.Parallel()

	got := New(table.New(), DefaultOptions(), nil).CountsByYear()
	assert.Empty(t, got)
}

func TestTopCategories(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "journal",
		"Nature", "Science", "Nature", "Unknown", "Lancet", "Unknown", "Science", "Nature")))

	a := New(tbl, DefaultOptions(), nil)
	got := a.TopCategories([]string{"journal", "source_x"}, 2)

	require.Equal(t, []CategoryCount{
		{Category: "Nature", Count: 3},
		{Category: "Science", Count: 2},
	}, got)

	for _, c := range got {
		assert.NotEqual(t, "Unknown", c.Category)
	}
}

func TestTopCategoriesFallsBackThroughCandidates(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "source_x", "PMC", "PMC", "WHO")))

	a := New(tbl, DefaultOptions(), nil)
	got := a.TopCategories([]string{"journal", "source_x"}, 10)
	require.Len(t, got, 2)
	assert.Equal(t, "PMC", got[0].Category)

	assert.Empty(t, a.TopCategories([]string{"missing_a", "missing_b"}, 10))
}

func TestTopCategoriesTieKeepsFirstEncounteredOrder(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "journal", "BMJ", "Cell", "Cell", "BMJ")))

	got := New(tbl, DefaultOptions(), nil).TopCategories([]string{"journal"}, 5)
	require.Equal(t, []CategoryCount{
		{Category: "BMJ", Count: 2},
		{Category: "Cell", Count: 2},
	}, got)
}

func TestTopWords(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title",
		"COVID-19 Transmission Study",
		"Transmission patterns in bats")))

	got := New(tbl, DefaultOptions(), nil).TopWords(10, 3)

	byWord := map[string]int{}
	for _, wc := range got {
		byWord[wc.Word] = wc.Count
		assert.False(t, IsStopword(wc.Word))
		assert.GreaterOrEqual(t, len(wc.Word), 3)
	}

	assert.Equal(t, 2, byWord["transmission"])
	assert.NotContains(t, byWord, "covid")
	assert.NotContains(t, byWord, "19")
	assert.NotContains(t, byWord, "in") // shorter than min length and a stopword
	assert.Equal(t, "transmission", got[0].Word)
}

func TestTopWordsTruncatesToN(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title",
		"alpha beta gamma delta epsilon")))

	got := New(tbl, DefaultOptions(), nil).TopWords(2, 3)
	assert.Len(t, got, 2)
}

func TestSourceDistribution(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "source_x", "PMC", "", "PMC", "WHO")))

	got := New(tbl, DefaultOptions(), nil).SourceDistribution()
	require.Equal(t, []CategoryCount{
		{Category: "PMC", Count: 2},
		{Category: "Unknown", Count: 1},
		{Category: "WHO", Count: 1},
	}, got)
}

func TestSourceDistributionSkipsAllMissingCandidate(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "source_x", "", "", "")))
	require.NoError(t, tbl.AddColumn(textColumn(t, "url", "https://a", "https://a", "")))

	got := New(tbl, DefaultOptions(), nil).SourceDistribution()
	require.Equal(t, []CategoryCount{
		{Category: "https://a", Count: 2},
		{Category: "Unknown", Count: 1},
	}, got)
}

func TestMonthlyTrend(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(intColumn(t, "publish_time_month",
		12, 1, 1, 3, -1, 12, 1)))

	got := New(tbl, DefaultOptions(), nil).MonthlyTrend()
	require.Equal(t, []MonthCount{
		{Month: "Jan", Count: 3},
		{Month: "Mar", Count: 1},
		{Month: "Dec", Count: 2},
	}, got)
}

func TestSummaryStatistics(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title", "A", "B", "A")))
	require.NoError(t, tbl.AddColumn(intColumn(t, "publish_time_year", 2020, 2019, 2021)))
	require.NoError(t, tbl.AddColumn(intColumn(t, "abstract_word_count", 1, 2, 2)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "journal", "Nature", "Science", "Nature")))

	s := New(tbl, DefaultOptions(), nil).SummaryStatistics()

	assert.Equal(t, 3, s.TotalRows)
	assert.Equal(t, 2, s.DistinctTitles)
	assert.Equal(t, "2019-2021", s.YearRange)
	require.True(t, s.HasAbstractMean)
	assert.Equal(t, 1.7, s.MeanAbstractWord)
	assert.Equal(t, 2, s.DistinctJournals)
}

func TestSummaryStatisticsAbsentColumns(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "doi", "x", "y")))

	s := New(tbl, DefaultOptions(), nil).SummaryStatistics()
	assert.Equal(t, 2, s.TotalRows)
	assert.Empty(t, s.YearRange)
	assert.False(t, s.HasAbstractMean)
	assert.Zero(t, s.DistinctJournals)
}

func TestReportBundlesAllAggregates(t *testing.T) {
	t.Parallel()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn(textColumn(t, "title", "Viral load dynamics", "Viral spread")))
	require.NoError(t, tbl.AddColumn(intColumn(t, "publish_time_year", 2020, 2021)))
	require.NoError(t, tbl.AddColumn(intColumn(t, "publish_time_month", 4, 6)))
	require.NoError(t, tbl.AddColumn(textColumn(t, "journal", "Nature", "Cell")))
	require.NoError(t, tbl.AddColumn(textColumn(t, "source_x", "PMC", "PMC")))
	require.NoError(t, tbl.AddColumn(intColumn(t, "abstract_word_count", 100, 200)))

	rep := New(tbl, DefaultOptions(), nil).Report(10, 10, 3)

	assert.Len(t, rep.YearlyCounts, 2)
	assert.Len(t, rep.TopJournals, 2)
	assert.NotEmpty(t, rep.TopWords)
	assert.Len(t, rep.Sources, 1)
	assert.Len(t, rep.MonthlyTrend, 2)
	assert.Equal(t, 2, rep.Summary.TotalRows)
	assert.Equal(t, 150.0, rep.Summary.MeanAbstractWord)
}
