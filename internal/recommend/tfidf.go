package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Vectorizer converts documents into L2-normalized TF-IDF vectors over a
// vocabulary learned from a training corpus. The vocabulary and vector
// dimensionality are fixed at fit time; a changed corpus requires refitting.
type Vectorizer struct {
	vocab map[string]int // term -> column
	idf   []float64      // per-column inverse document frequency
}

// tokenize lowercases a document and splits it into word tokens.
// Tokens shorter than two characters and English stop words are dropped.
func tokenize(doc string) []string {
	fields := strings.FieldsFunc(strings.ToLower(doc), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := fields[:0]
	for _, tok := range fields {
		if len(tok) < 2 {
			continue
		}
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// FitVectorizer learns a vocabulary and IDF weights from the corpus.
// Parameters:
//   - docs: training documents, one per row of the eventual matrix.
// Returns:
//   - *Vectorizer: vectorizer with vocabulary in sorted term order.
func FitVectorizer(docs []string) *Vectorizer {
	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, tok := range tokenize(doc) {
			seen[tok] = struct{}{}
		}
		for tok := range seen {
			df[tok]++
		}
	}

	terms := make([]string, 0, len(df))
	for term := range df {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	v := &Vectorizer{
		vocab: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
	}
	n := float64(len(docs))
	for col, term := range terms {
		v.vocab[term] = col
		// Smoothed IDF: acts as if one extra document contained every term,
		// so no term ever gets a zero weight.
		v.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
	return v
}

// Dimensions returns the vector dimensionality (vocabulary size).
func (v *Vectorizer) Dimensions() int {
	return len(v.vocab)
}

// Transform converts a document into an L2-normalized TF-IDF vector.
// Terms outside the fitted vocabulary are ignored.
// Parameters:
//   - doc: document text.
// Returns:
//   - []float64: vector of Dimensions() length; all zeros if no known terms.
func (v *Vectorizer) Transform(doc string) []float64 {
	vec := make([]float64, len(v.idf))
	for _, tok := range tokenize(doc) {
		if col, ok := v.vocab[tok]; ok {
			vec[col]++
		}
	}
	for col := range vec {
		vec[col] *= v.idf[col]
	}
	normalize(vec)
	return vec
}

// FitTransform fits a vectorizer on the corpus and returns the document matrix.
// Parameters:
//   - docs: training documents.
// Returns:
//   - *Vectorizer: fitted vectorizer.
//   - [][]float64: one L2-normalized row per document, in input order.
func FitTransform(docs []string) (*Vectorizer, [][]float64) {
	v := FitVectorizer(docs)
	matrix := make([][]float64, len(docs))
	for i, doc := range docs {
		matrix[i] = v.Transform(doc)
	}
	return v, matrix
}

// normalize scales a vector to unit L2 norm in place.
// A zero vector is left untouched.
func normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range vec {
		vec[i] *= inv
	}
}

// cosine returns the cosine similarity of two vectors.
// Mismatched lengths yield 0.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / math.Sqrt(na*nb)
}
