package recommend

// englishStopWords are common English terms excluded from the feature
// vocabulary. Keeping them in would let words like "the" and "with" dominate
// the term-frequency mass of every product description.
var englishStopWords = map[string]struct{}{}

func init() {
	words := []string{
		"a", "about", "above", "after", "again", "against", "all", "also", "am",
		"an", "and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "cannot",
		"could", "did", "do", "does", "doing", "down", "during", "each", "else",
		"ever", "few", "for", "from", "further", "had", "has", "have", "having",
		"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
		"however", "if", "in", "into", "is", "it", "its", "itself", "just",
		"like", "me", "more", "most", "my", "myself", "no", "nor", "not", "of",
		"off", "on", "once", "only", "or", "other", "ought", "our", "ours",
		"ourselves", "out", "over", "own", "same", "shall", "she", "should",
		"since", "so", "some", "such", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this", "those",
		"through", "to", "too", "under", "until", "up", "upon", "very", "was",
		"we", "were", "what", "when", "where", "which", "while", "who", "whom",
		"why", "will", "with", "within", "without", "would", "you", "your",
		"yours", "yourself", "yourselves",
	}
	for _, w := range words {
		englishStopWords[w] = struct{}{}
	}
}
