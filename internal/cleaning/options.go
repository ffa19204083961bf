package cleaning

// Options controls the cleaning stages. Column names are configuration,
// not inferred from data; absent columns make a stage skip, not fail.
type Options struct {
	// DropThreshold is the missing fraction above which a column is dropped.
	DropThreshold float64
	// DateColumns are parsed into date columns with derived year/month.
	DateColumns []string
	// TextColumns get whitespace/markup normalization.
	TextColumns []string
	// TitleColumn backs title_word_count and the empty-title row filter.
	TitleColumn string
	// AbstractColumn backs abstract_word_count.
	AbstractColumn string
	// AuthorsColumn backs author_count (semicolon-delimited names).
	AuthorsColumn string
	// YearMin and YearMax bound the row filter on the derived year, inclusive.
	YearMin int
	YearMax int
}

// DefaultOptions mirrors the CORD-19 metadata schema.
func DefaultOptions() Options {
	return Options{
		DropThreshold:  0.70,
		DateColumns:    []string{"publish_time"},
		TextColumns:    []string{"title", "abstract"},
		TitleColumn:    "title",
		AbstractColumn: "abstract",
		AuthorsColumn:  "authors",
		YearMin:        2019,
		YearMax:        2023,
	}
}
