package analysis

// Report bundles every aggregate computed in one pass over the cleaned
// table, for callers that render or export all of them together.
type Report struct {
	Summary      Summary
	YearlyCounts []YearCount
	TopJournals  []CategoryCount
	TopWords     []WordCount
	Sources      []CategoryCount
	MonthlyTrend []MonthCount
}

// Report evaluates all aggregates with the given ranking sizes.
func (a *Analyzer) Report(journalN, wordN, minWordLength int) Report {
	return Report{
		Summary:      a.SummaryStatistics(),
		YearlyCounts: a.CountsByYear(),
		TopJournals:  a.TopJournals(journalN),
		TopWords:     a.TopWords(wordN, minWordLength),
		Sources:      a.SourceDistribution(),
		MonthlyTrend: a.MonthlyTrend(),
	}
}
