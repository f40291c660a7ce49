package answer

import (
	"fmt"
	"strings"

	"resumechat/internal/domain"
)

// SuggestedQuestions builds the fixed-shape list of four follow-up
// questions, parameterized by the subject's name, their most frequent
// technology across experience and projects, and the most recent
// experience entry. The name always appears verbatim at least once.
func SuggestedQuestions(p domain.Profile) []string {
	name := strings.TrimSpace(p.Basics.Name)
	if name == "" {
		name = "the candidate"
	}

	second := "What technologies has the candidate worked with?"
	if tech := TopTechnology(p); tech != "" {
		second = fmt.Sprintf("What experience does %s have with %s?", name, tech)
	}

	third := "What is the most recent work experience?"
	if len(p.Experience) > 0 {
		third = "Tell me about the role at " + p.Experience[0].Company
	}

	return []string{
		fmt.Sprintf("What is %s's background and experience?", name),
		second,
		third,
		fmt.Sprintf("What are %s's key skills and strengths?", name),
	}
}

// TopTechnology returns the technology named most often across experience
// and project tech lists; ties keep the first seen.
func TopTechnology(p domain.Profile) string {
	counts := make(map[string]int)
	var order []string
	bump := func(names []string) {
		for _, n := range names {
			key := strings.ToLower(strings.TrimSpace(n))
			if key == "" {
				continue
			}
			if counts[key] == 0 {
				order = append(order, n)
			}
			counts[key]++
		}
	}
	for _, job := range p.Experience {
		bump(job.Tech)
	}
	for _, proj := range p.Projects {
		bump(proj.Tech)
	}

	best, bestCount := "", 0
	for _, n := range order {
		if c := counts[strings.ToLower(strings.TrimSpace(n))]; c > bestCount {
			best, bestCount = n, c
		}
	}
	return best
}
