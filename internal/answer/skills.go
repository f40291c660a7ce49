package answer

import (
	"regexp"
	"strings"

	"resumechat/internal/domain"
	"resumechat/internal/textutil"
)

// knownLanguages is the fixed reference list scanned against matched chunk
// text. Order is presentation order.
var knownLanguages = []string{
	"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go",
	"Rust", "Ruby", "PHP", "Swift", "Kotlin", "Scala", "R", "MATLAB",
	"SQL", "HTML", "CSS", "Perl", "Haskell", "Dart", "Lua", "Bash",
}

var languageMatchers = buildLanguageMatchers()

// chunk titles that never contribute to a skills answer
var skillsExcludedTitles = map[string]struct{}{
	"Basics":     {},
	"Contact":    {},
	"Education":  {},
	"Highlights": {},
}

var languagesLineRe = regexp.MustCompile(`(?i)languages?\s*:\s*([^\n.]+)`)

// Skills answers a languages/skills question by scanning the retrieved
// chunk text for known language names, unioned with whatever an explicit
// "Languages: a, b, c" line declares. Education and contact chunks are
// excluded from the scan. Reports false when no language was found so the
// caller can fall back to general retrieval.
func Skills(p domain.Profile, candidates []domain.ScoredChunk) (domain.Answer, bool) {
	var langs []string
	seen := make(map[string]struct{})
	addLang := func(name string) {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			return
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		langs = append(langs, strings.TrimSpace(name))
	}

	var sources []domain.Source
	for _, cand := range candidates {
		if _, excluded := skillsExcludedTitles[cand.Chunk.Title]; excluded {
			continue
		}
		text := cand.Chunk.Text
		found := false
		for i, lang := range knownLanguages {
			if languageMatchers[i].MatchString(text) {
				addLang(lang)
				found = true
			}
		}
		for _, m := range languagesLineRe.FindAllStringSubmatch(text, -1) {
			for _, name := range splitList(m[1]) {
				if isKnownLanguage(name) {
					addLang(name)
					found = true
				}
			}
		}
		if found {
			snippet := textutil.CleanSnippet(text)
			if snippet != "" {
				sources = append(sources, domain.Source{Title: cand.Chunk.Title, Snippet: snippet})
			}
		}
	}
	if len(langs) == 0 {
		return domain.Answer{}, false
	}
	return domain.Answer{
		Answer:             "Programming languages include: " + strings.Join(langs, ", ") + ".",
		Sources:            DeduplicateSources(sources),
		SuggestedQuestions: SuggestedQuestions(p),
	}, true
}

// buildLanguageMatchers compiles one pattern per reference language. Names
// that end in a symbol (C++, C#) cannot use \b on the right, so the
// boundary is spelled out as not-a-word-character.
func buildLanguageMatchers() []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(knownLanguages))
	for i, lang := range knownLanguages {
		quoted := regexp.QuoteMeta(lang)
		out[i] = regexp.MustCompile(`(?i)(^|[^\w+#])` + quoted + `($|[^\w+#])`)
	}
	return out
}

func isKnownLanguage(name string) bool {
	for _, lang := range knownLanguages {
		if strings.EqualFold(strings.TrimSpace(name), lang) {
			return true
		}
	}
	return false
}

func splitList(s string) []string {
	s = strings.ReplaceAll(s, " and ", ",")
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
