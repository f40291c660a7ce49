package corpus

import (
	"fmt"
	"strings"

	"resumechat/internal/domain"
	"resumechat/internal/textutil"
)

// Heading keywords recognized when segmenting an extracted document, in the
// order they should be tried (longer phrases first so "work experience"
// beats "experience").
var sectionHeadings = []struct {
	keyword string
	title   string
}{
	{"work experience", "Work Experience"},
	{"technologies", "Technologies"},
	{"frameworks", "Frameworks"},
	{"experience", "Work Experience"},
	{"education", "Education"},
	{"languages", "Languages"},
	{"projects", "Projects"},
	{"summary", "Summary"},
	{"skills", "Skills"},
	{"contact", "Contact"},
	{"about", "About"},
}

// BuildFromDocument segments flat extracted text into heading-delimited
// sections, emitting one chunk per section plus one per sentence inside it.
// Text before the first recognized heading is treated as a summary section.
// This is an alternate corpus source, not a different pipeline: the output
// feeds the same scorers as the profile corpus.
func BuildFromDocument(text string) []domain.Chunk {
	type section struct {
		title string
		lines []string
	}
	sections := []section{{title: "Summary"}}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if title, ok := headingTitle(line); ok {
			sections = append(sections, section{title: title})
			continue
		}
		last := &sections[len(sections)-1]
		last.lines = append(last.lines, line)
	}

	var chunks []domain.Chunk
	for i, sec := range sections {
		body := strings.Join(sec.lines, "\n")
		if strings.TrimSpace(body) == "" {
			continue
		}
		id := fmt.Sprintf("doc-%d", i)
		chunks = append(chunks, domain.Chunk{ID: id, Title: sec.title, Text: body})
		for j, sentence := range textutil.SplitSentences(body) {
			chunks = append(chunks, domain.Chunk{
				ID:    fmt.Sprintf("%s-s%d", id, j),
				Title: sec.title,
				Text:  sentence,
			})
		}
	}
	return chunks
}

// headingTitle reports whether a line is a section heading. Headings are
// short lines that start with a known keyword, compared case-insensitively
// with trailing colons ignored.
func headingTitle(line string) (string, bool) {
	l := strings.ToLower(strings.TrimSuffix(strings.TrimSpace(line), ":"))
	if len(l) > 40 {
		return "", false
	}
	for _, h := range sectionHeadings {
		if l == h.keyword || strings.HasPrefix(l, h.keyword+" ") {
			return h.title, true
		}
	}
	return "", false
}
