package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "Go Developer", "go developer"},
		{"strips punctuation", "C++, C#; (Go)!", "c c go"},
		{"keeps hyphens and apostrophes", "it's a full-stack role", "it's a full-stack role"},
		{"maps right single quote", "Jane’s work", "jane's work"},
		{"collapses whitespace", "a\t b  \n c", "a b c"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"drops stopwords", "the quick brown fox is in the box", []string{"quick", "brown", "fox", "box"}},
		{"drops single chars", "a b c go", []string{"go"}},
		{"keeps two-letter terms", "worked with Go and R2", []string{"worked", "go", "r2"}},
		{"all stopwords", "the of and", nil},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Tokenize(tt.in))
		})
	}
}

func TestTokenizeMatchesCorpusAndQuery(t *testing.T) {
	// Corpus and query text must tokenize identically for weights to align.
	corpus := Tokenize("Built scalable APIs with Go and PostgreSQL.")
	query := Tokenize("built SCALABLE apis,  with go & postgresql")
	assert.Equal(t, corpus, query)
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("go go kubernetes the")
	assert.Len(t, set, 2)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, "kubernetes")
}
