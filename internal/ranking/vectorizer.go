// Package ranking scores candidates against a role's skill requirements by
// blending text similarity, skill coverage, and experience.
package ranking

import (
	"math"
	"strings"
	"unicode"
)

// maxDocFraction drops terms appearing in more than this fraction of the
// pool's documents.
const maxDocFraction = 0.9

// Vectorizer is a term-frequency/inverse-document-frequency vector space
// fitted over one candidate pool's documents. The fit is per-pool, not a
// persisted global model; it must be refit whenever the pool changes.
type Vectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// tokenize lower-cases the text and splits it into alphanumeric tokens of at
// least two characters.
func tokenize(text string) []string {
	lower := strings.ToLower(text)
	fields := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) >= 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// terms expands tokens into unigrams and bigrams.
func terms(text string) []string {
	tokens := tokenize(text)
	out := make([]string, 0, 2*len(tokens))
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// FitVectorizer builds the vector space over the pool's documents. Terms
// appearing in more than 90% of documents are excluded; the inverse document
// frequency is smoothed so no term gets a zero weight.
func FitVectorizer(documents []string) *Vectorizer {
	n := len(documents)
	documentFrequency := make(map[string]int)
	for _, doc := range documents {
		seen := make(map[string]bool)
		for _, term := range terms(doc) {
			if !seen[term] {
				seen[term] = true
				documentFrequency[term]++
			}
		}
	}

	maxDF := int(maxDocFraction * float64(n))
	v := &Vectorizer{vocabulary: make(map[string]int)}
	for term, df := range documentFrequency {
		if n > 1 && df > maxDF {
			continue
		}
		v.vocabulary[term] = len(v.idf)
		v.idf = append(v.idf, math.Log(float64(1+n)/float64(1+df))+1.0)
	}
	return v
}

// Transform projects a document into the fitted space as a sparse
// l2-normalized tf-idf vector. Terms outside the vocabulary are ignored.
func (v *Vectorizer) Transform(document string) map[int]float64 {
	vector := make(map[int]float64)
	for _, term := range terms(document) {
		if idx, ok := v.vocabulary[term]; ok {
			vector[idx] += v.idf[idx]
		}
	}

	norm := 0.0
	for _, value := range vector {
		norm += value * value
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vector {
			vector[idx] /= norm
		}
	}
	return vector
}

// CosineSimilarity computes the cosine of two sparse vectors. With
// non-negative term weights the result is naturally bounded to [0,1]; zero
// vectors yield 0.
func CosineSimilarity(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	dot := 0.0
	for idx, value := range a {
		dot += value * b[idx]
	}
	normA := 0.0
	for _, value := range a {
		normA += value * value
	}
	normB := 0.0
	for _, value := range b {
		normB += value * value
	}
	if normA == 0 || normB == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
