package answer

import (
	"fmt"
	"regexp"
	"strings"

	"resumechat/internal/domain"
	"resumechat/internal/textutil"
)

// NotFoundMessage is the answer text used when retrieval produced nothing
// usable. It is an answer, not an error: callers always receive a
// well-formed result.
const NotFoundMessage = "I couldn't find that information in the resume. " +
	"Try asking about skills, projects, experience, technologies, or background."

// Technology answers a technology-focused question with the experience
// entries and projects that used it. Reports false when nothing in the
// profile used the technology, so the caller can fall through to retrieval.
func Technology(p domain.Profile, tech string) (domain.Answer, bool) {
	var jobs []domain.Experience
	for _, job := range p.Experience {
		if containsFold(job.Tech, tech) {
			jobs = append(jobs, job)
		}
	}
	var projects []domain.Project
	for _, proj := range p.Projects {
		if containsFold(proj.Tech, tech) {
			projects = append(projects, proj)
		}
	}
	if len(jobs) == 0 && len(projects) == 0 {
		return domain.Answer{}, false
	}

	var lines []string
	var sources []domain.Source
	if len(jobs) > 0 {
		lines = append(lines, "Experience:")
		for _, job := range jobs {
			lines = append(lines, fmt.Sprintf("- %s at %s (%s)", job.Role, job.Company, job.Dates))
			sources = append(sources, domain.Source{
				Title:   experienceTitle(job),
				Snippet: textutil.CleanSnippet(fmt.Sprintf("%s at %s (%s)", job.Role, job.Company, job.Dates)),
			})
		}
	}
	if len(projects) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Projects:")
		for _, proj := range projects {
			lines = append(lines, "- "+proj.Name)
			sources = append(sources, domain.Source{
				Title:   "Project: " + proj.Name,
				Snippet: textutil.CleanSnippet(proj.Name + ": " + proj.Description),
			})
		}
	}
	return domain.Answer{
		Answer:             strings.Join(lines, "\n"),
		Sources:            DeduplicateSources(sources),
		SuggestedQuestions: SuggestedQuestions(p),
	}, true
}

// Background answers an overview question with education highlights and the
// work history, as lists rather than prose.
func Background(p domain.Profile) domain.Answer {
	var lines []string
	var sources []domain.Source
	if len(p.Highlights) > 0 {
		lines = append(lines, "Education:")
		for _, edu := range p.Highlights {
			lines = append(lines, "- "+edu)
			sources = append(sources, domain.Source{Title: "Education", Snippet: textutil.CleanSnippet(edu)})
		}
	}
	if len(p.Experience) > 0 {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, "Work Experience:")
		for _, job := range p.Experience {
			lines = append(lines, fmt.Sprintf("- %s at %s (%s)", job.Role, job.Company, job.Dates))
			sources = append(sources, domain.Source{
				Title:   experienceTitle(job),
				Snippet: textutil.CleanSnippet(fmt.Sprintf("%s at %s (%s)", job.Role, job.Company, job.Dates)),
			})
		}
	}
	if len(lines) == 0 {
		return NotFound(p)
	}
	return domain.Answer{
		Answer:             strings.Join(lines, "\n"),
		Sources:            DeduplicateSources(sources),
		SuggestedQuestions: SuggestedQuestions(p),
	}
}

// RoleCompany answers a question about one specific position. The header
// names the role, company, and dates; the body prefers accomplishment
// sentences, then a numbered responsibility list, then the cleaned raw
// highlight text. Goal-language sentences never contribute.
func RoleCompany(p domain.Profile, job domain.Experience) domain.Answer {
	var facts []string
	for _, h := range job.Highlights {
		for _, s := range textutil.SplitSentences(h) {
			if HasGoalLanguage(s) {
				continue
			}
			facts = append(facts, s)
		}
	}

	lines := []string{
		fmt.Sprintf("%s at %s", job.Role, job.Company),
		strings.TrimSuffix(job.Dates+" • "+job.Location, " • "),
		"",
	}

	var accomplishments []string
	for _, s := range facts {
		if accomplishmentRe.MatchString(s) {
			accomplishments = append(accomplishments, s)
		}
	}
	switch {
	case len(accomplishments) > 0:
		lines = append(lines, "Highlights:")
		for _, s := range accomplishments {
			lines = append(lines, "- "+textutil.CleanSnippet(s))
		}
	case len(facts) > 0:
		lines = append(lines, "Responsibilities:")
		for i, s := range facts {
			lines = append(lines, fmt.Sprintf("%d. %s", i+1, textutil.CleanSnippet(s)))
		}
	default:
		lines = append(lines, textutil.CleanSnippet(strings.Join(job.Highlights, " ")))
	}

	if len(job.Tech) > 0 {
		lines = append(lines, "", "Technical Skills:", strings.Join(job.Tech, ", "))
	}

	snippet := textutil.CleanSnippet(strings.Join(facts, " "))
	var sources []domain.Source
	if snippet != "" {
		sources = append(sources, domain.Source{Title: experienceTitle(job), Snippet: snippet})
	}
	return domain.Answer{
		Answer:             strings.TrimSpace(strings.Join(lines, "\n")),
		Sources:            sources,
		SuggestedQuestions: SuggestedQuestions(p),
	}
}

// General composes a multi-topic answer from retrieved candidates: the most
// query-relevant sentences of each chunk, cleaned, deduplicated by exact
// text, and grouped by chunk title. When every group belongs to a
// recognized resume section, one summary sentence per section is produced
// instead of raw concatenation.
func General(p domain.Profile, candidates []domain.ScoredChunk, queryTokens []string, maxSentences int) domain.Answer {
	var groups []titleGroup
	byTitle := make(map[string]int)
	var sources []domain.Source
	seen := make(map[string]struct{})

	for _, cand := range candidates {
		sentences := textutil.RelevantSentences(cand.Chunk.Text, queryTokens, maxSentences)
		if len(sentences) == 0 {
			sentences = leadLines(cand.Chunk.Text, maxSentences)
		}
		snippet := textutil.CleanSnippet(strings.Join(sentences, " "))
		snippet = stripNameHeader(p, snippet)
		if snippet == "" {
			continue
		}
		if _, dup := seen[snippet]; dup {
			continue
		}
		seen[snippet] = struct{}{}
		sources = append(sources, domain.Source{Title: cand.Chunk.Title, Snippet: snippet})
		idx, ok := byTitle[cand.Chunk.Title]
		if !ok {
			idx = len(groups)
			byTitle[cand.Chunk.Title] = idx
			groups = append(groups, titleGroup{title: cand.Chunk.Title})
		}
		groups[idx].snippets = append(groups[idx].snippets, snippet)
	}

	if len(sources) == 0 {
		return NotFound(p)
	}

	var text string
	if sections, ok := sectionSummaries(groups); ok {
		text = strings.Join(sections, "\n")
	} else {
		paragraphs := make([]string, len(groups))
		for i, g := range groups {
			paragraphs[i] = strings.Join(g.snippets, " ")
		}
		text = strings.Join(paragraphs, "\n\n")
	}
	return domain.Answer{
		Answer:             strings.TrimSpace(text),
		Sources:            sources,
		SuggestedQuestions: SuggestedQuestions(p),
	}
}

// sectionSummaries maps grouped snippets to one line per recognized resume
// section. It reports false when any group title falls outside the known
// sections, in which case the caller concatenates instead.
type titleGroup struct {
	title    string
	snippets []string
}

func sectionSummaries(groups []titleGroup) ([]string, bool) {
	order := []string{"Education", "Skills", "Experience", "Projects"}
	bySection := make(map[string][]string)
	for _, g := range groups {
		section := sectionOf(g.title)
		if section == "" {
			return nil, false
		}
		bySection[section] = append(bySection[section], g.snippets...)
	}
	if len(bySection) < 2 {
		return nil, false
	}
	var out []string
	for _, section := range order {
		snippets, ok := bySection[section]
		if !ok {
			continue
		}
		combined := strings.Join(snippets, " ")
		if first := textutil.SplitSentences(combined); len(first) > 0 {
			combined = first[0]
		}
		out = append(out, section+": "+combined)
	}
	return out, true
}

func sectionOf(title string) string {
	switch {
	case strings.HasPrefix(title, "Education"), strings.HasPrefix(title, "Highlights"):
		return "Education"
	case strings.HasPrefix(title, "Skill"):
		return "Skills"
	case strings.HasPrefix(title, "Experience"):
		return "Experience"
	case strings.HasPrefix(title, "Project"):
		return "Projects"
	}
	return ""
}

// NotFound is the guaranteed fallback result.
func NotFound(p domain.Profile) domain.Answer {
	return domain.Answer{
		Answer:             NotFoundMessage,
		Sources:            []domain.Source{},
		SuggestedQuestions: SuggestedQuestions(p),
	}
}

// DeduplicateSources drops sources whose snippet text already appeared,
// keeping the first occurrence. Deduplication is by content: the same text
// reached through different chunk ids still counts once.
func DeduplicateSources(sources []domain.Source) []domain.Source {
	seen := make(map[string]struct{}, len(sources))
	out := sources[:0]
	for _, s := range sources {
		if _, ok := seen[s.Snippet]; ok {
			continue
		}
		seen[s.Snippet] = struct{}{}
		out = append(out, s)
	}
	return out
}

func experienceTitle(job domain.Experience) string {
	return fmt.Sprintf("Experience: %s @ %s", job.Role, job.Company)
}

func containsFold(list []string, want string) bool {
	for _, s := range list {
		if strings.EqualFold(strings.TrimSpace(s), strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}

func leadLines(text string, n int) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
		if len(out) == n {
			break
		}
	}
	return out
}

// stripNameHeader removes a leading "Name — Title" banner that the basics
// chunk carries, so answers do not start with the letterhead.
func stripNameHeader(p domain.Profile, s string) string {
	name := strings.TrimSpace(p.Basics.Name)
	if name == "" {
		return s
	}
	re := regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(name) + `\s*[—-]\s*[^\n]+`)
	s = re.ReplaceAllString(s, "")
	return strings.TrimSpace(strings.TrimLeft(s, "—- \t"))
}
