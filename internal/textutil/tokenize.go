// Package textutil holds the text primitives shared by every scoring and
// answer component: normalization, tokenization, sentence splitting, and
// snippet cleaning. Corpus text and query text must pass through the same
// tokenizer for term weights to be comparable.
package textutil

import (
	"regexp"
	"strings"
)

var (
	disallowedRe = regexp.MustCompile(`[^a-z0-9 '\-]+`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text, maps right single quotes to apostrophes,
// replaces everything outside [a-z0-9 '-] with a space, and collapses
// whitespace.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = strings.ReplaceAll(s, "’", "'")
	s = disallowedRe.ReplaceAllString(s, " ")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Tokenize splits normalized text into terms, dropping single-character
// tokens and stop words.
func Tokenize(text string) []string {
	var out []string
	for _, t := range strings.Split(Normalize(text), " ") {
		if len(t) <= 1 {
			continue
		}
		if _, stop := stopwords[t]; stop {
			continue
		}
		out = append(out, t)
	}
	return out
}

// TokenSet returns the tokens of text as a set.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokenize(text)
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

var stopwords = toSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "being",
	"below", "between", "both", "but", "by", "did", "do", "does", "doing",
	"down", "during", "each", "few", "for", "from", "further", "had", "has",
	"have", "having", "he", "her", "here", "hers", "him", "his", "how", "i",
	"if", "in", "into", "is", "it", "its", "just", "me", "more", "most",
	"my", "no", "nor", "not", "now", "of", "off", "on", "once", "only",
	"or", "other", "our", "ours", "out", "over", "own", "she", "so", "some",
	"such", "than", "that", "the", "their", "them", "then", "there", "these",
	"they", "this", "those", "through", "to", "too", "under", "until", "up",
	"us", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "why", "will", "with", "you", "your", "yours",
})

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
