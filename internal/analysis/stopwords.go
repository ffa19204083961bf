package analysis

// stopwords holds common English function words plus the domain terms and
// year literals that dominate every title in the dataset.
var stopwords = map[string]struct{}{}

func init() {
	words := []string{
		"the", "and", "of", "in", "to", "a", "is", "for", "on", "with",
		"as", "by", "at", "an", "are", "from", "or", "this", "that", "be",
		"was", "will", "have", "has", "been", "can", "could", "would",
		"should", "may", "might", "must", "shall", "covid", "coronavirus",
		"sars", "cov", "19", "2019", "2020", "2021", "2022", "2023",
	}
	for _, w := range words {
		stopwords[w] = struct{}{}
	}
}

// IsStopword reports whether a case-folded token is excluded from
// word-frequency analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[word]
	return ok
}
