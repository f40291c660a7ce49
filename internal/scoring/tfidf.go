// Package scoring implements the lexical relevance model: TF-IDF term
// weighting over the corpus and cosine similarity between weight vectors.
package scoring

import "math"

// TFIDF holds inverse document frequencies learned from a tokenized corpus.
type TFIDF struct {
	idf map[string]float64
}

// NewTFIDF computes document frequencies over the corpus and derives
// idf = ln(1 + N/(1+df)). The +1 smoothing keeps every idf finite and
// positive even for terms present in all chunks.
func NewTFIDF(docTokens [][]string) *TFIDF {
	df := make(map[string]int)
	for _, tokens := range docTokens {
		seen := make(map[string]struct{}, len(tokens))
		for _, t := range tokens {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			df[t]++
		}
	}
	n := float64(len(docTokens))
	if n == 0 {
		n = 1
	}
	idf := make(map[string]float64, len(df))
	for t, d := range df {
		idf[t] = math.Log(1 + n/(1+float64(d)))
	}
	return &TFIDF{idf: idf}
}

// TermFrequency maps each token to its raw count divided by the token count.
// Empty input is treated as length one so the division is always defined.
func TermFrequency(tokens []string) map[string]float64 {
	counts := make(map[string]float64, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	n := float64(len(tokens))
	if n == 0 {
		n = 1
	}
	for t, c := range counts {
		counts[t] = c / n
	}
	return counts
}

// Vector weights the tokens by tf x idf. Terms unseen during corpus
// construction get weight zero.
func (m *TFIDF) Vector(tokens []string) map[string]float64 {
	tf := TermFrequency(tokens)
	out := make(map[string]float64, len(tf))
	for t, v := range tf {
		out[t] = v * m.idf[t]
	}
	return out
}

// Cosine returns the cosine similarity of two sparse weight vectors, or 0
// when either has zero norm. The dot product iterates the smaller map.
func Cosine(a, b map[string]float64) float64 {
	var a2, b2 float64
	for _, v := range a {
		a2 += v * v
	}
	for _, v := range b {
		b2 += v * v
	}
	if a2 == 0 || b2 == 0 {
		return 0
	}
	small, big := a, b
	if len(b) < len(a) {
		small, big = b, a
	}
	var dot float64
	for t, v := range small {
		dot += v * big[t]
	}
	return dot / (math.Sqrt(a2) * math.Sqrt(b2))
}

// CosineDense is cosine similarity for embedding vectors. Mismatched lengths
// are a scoring error and yield 0 rather than a panic, as does a zero norm.
func CosineDense(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, a2, b2 float64
	for i := range a {
		x, y := float64(a[i]), float64(b[i])
		dot += x * y
		a2 += x * x
		b2 += y * y
	}
	denom := math.Sqrt(a2) * math.Sqrt(b2)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
