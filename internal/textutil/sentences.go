package textutil

import (
	"sort"
	"strings"
	"unicode"
)

// SplitSentences breaks text into trimmed sentences. Line breaks always end
// a sentence; within a line, sentence-ending punctuation followed by
// whitespace ends one. Empty pieces are dropped.
func SplitSentences(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		runes := []rune(line)
		start := 0
		for i := 0; i < len(runes); i++ {
			if !isSentenceEnd(runes[i]) {
				continue
			}
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				if s := strings.TrimSpace(string(runes[start : i+1])); s != "" {
					out = append(out, s)
				}
				start = i + 1
			}
		}
		if rest := strings.TrimSpace(string(runes[start:])); rest != "" {
			out = append(out, rest)
		}
	}
	return out
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// RelevantSentences picks the sentences of text most relevant to the query
// tokens. With no query tokens it returns the leading sentences verbatim.
// Each sentence scores one point per token shared with the query, plus a
// length bonus capped at 0.5 so longer informative sentences win ties but
// length never beats term relevance. Only sentences with a positive score
// are returned, ordered by score with original order as the tie break.
func RelevantSentences(text string, queryTokens []string, maxSentences int) []string {
	if maxSentences <= 0 {
		maxSentences = 3
	}
	sentences := SplitSentences(text)
	if len(queryTokens) == 0 {
		if len(sentences) > maxSentences {
			sentences = sentences[:maxSentences]
		}
		return sentences
	}

	query := make(map[string]struct{}, len(queryTokens))
	for _, t := range queryTokens {
		query[t] = struct{}{}
	}

	type scored struct {
		sentence string
		score    float64
	}
	var kept []scored
	for _, s := range sentences {
		tokens := Tokenize(s)
		score := 0.0
		for _, t := range tokens {
			if _, ok := query[t]; ok {
				score++
			}
		}
		score += min(float64(len(tokens))/10, 0.5)
		if score > 0 {
			kept = append(kept, scored{s, score})
		}
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].score > kept[j].score })
	if len(kept) > maxSentences {
		kept = kept[:maxSentences]
	}
	out := make([]string, 0, len(kept))
	for _, k := range kept {
		out = append(out, k.sentence)
	}
	return out
}
