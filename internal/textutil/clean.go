package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// CleanSnippet sanitizes a snippet before it is surfaced: contact details,
// rendering artifacts, and extraction noise are stripped, spacing is
// repaired. Every snippet folded into an answer or listed as a source must
// go through it. The pipeline is a fixed sequence of independent transforms;
// artifact removal runs before whitespace collapse, so the order matters.
func CleanSnippet(text string) string {
	for _, t := range cleaners {
		text = t(text)
	}
	return text
}

var cleaners = []func(string) string{
	stripControlChars,
	stripContactInfo,
	stripPlatformArtifacts,
	rejoinSplitLetters,
	fixPunctuationSpacing,
	collapseWhitespace,
}

var (
	zeroWidthRe = regexp.MustCompile("[\u200B-\u200D\uFEFF]")
	bulletRe    = regexp.MustCompile("[•●▪◦§]")

	spacedAtRe = regexp.MustCompile(`(\w)\s*@\s*(\w)`)
	emailRe    = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,2}[\s.\-]?)?\(?\d{3}\)?[\s.\-]?\d{3}[\s.\-]?\d{4}\b`)
	urlRe      = regexp.MustCompile(`(https?://|www\.)\S+`)

	platformRe = regexp.MustCompile(`(?i)\b(linkedin|github)\b:?`)

	spaceBeforePunctRe = regexp.MustCompile(`\s+([.,;:!?])`)
	missingSpaceRe     = regexp.MustCompile(`([.!?])([A-Z])`)

	innerSpaceRe     = regexp.MustCompile(`[^\S\n]+`)
	manyLineBreaksRe = regexp.MustCompile(`\n{3,}`)
)

func stripControlChars(s string) string {
	s = zeroWidthRe.ReplaceAllString(s, "")
	s = bulletRe.ReplaceAllString(s, " ")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if unicode.IsControl(r) || (r >= 0x80 && r <= 0x9F) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func stripContactInfo(s string) string {
	s = spacedAtRe.ReplaceAllString(s, "$1@$2")
	s = emailRe.ReplaceAllString(s, "")
	s = phoneRe.ReplaceAllString(s, "")
	s = urlRe.ReplaceAllString(s, "")
	return s
}

func stripPlatformArtifacts(s string) string {
	return platformRe.ReplaceAllString(s, "")
}

// rejoinSplitLetters repairs words that extraction broke into runs of
// single letters ("J o h n" -> "John"). Runs shorter than two letters are
// left alone.
func rejoinSplitLetters(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		fields := strings.Fields(line)
		var out []string
		j := 0
		for j < len(fields) {
			k := j
			for k < len(fields) && isSingleLetter(fields[k]) {
				k++
			}
			if k-j >= 2 {
				out = append(out, strings.Join(fields[j:k], ""))
				j = k
				continue
			}
			out = append(out, fields[j])
			j++
		}
		lines[i] = strings.Join(out, " ")
	}
	return strings.Join(lines, "\n")
}

func isSingleLetter(s string) bool {
	if len(s) != 1 {
		return false
	}
	r := rune(s[0])
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func fixPunctuationSpacing(s string) string {
	s = spaceBeforePunctRe.ReplaceAllString(s, "$1")
	s = missingSpaceRe.ReplaceAllString(s, "$1 $2")
	return s
}

func collapseWhitespace(s string) string {
	s = innerSpaceRe.ReplaceAllString(s, " ")
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	s = strings.Join(lines, "\n")
	s = manyLineBreaksRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
