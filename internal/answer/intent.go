// Package answer classifies question intent and shapes the final answer.
// Classification is a prioritized list of predicates evaluated in a fixed
// order with a general-retrieval default; the keyword patterns and reference
// lists live here as package data so they can be tested and extended without
// touching the dispatch logic.
package answer

import (
	"regexp"
	"strings"

	"resumechat/internal/domain"
	"resumechat/internal/textutil"
)

// Intent is the classified purpose of a question.
type Intent int

const (
	IntentGeneral Intent = iota
	IntentTechnology
	IntentBackground
	IntentRoleCompany
	IntentSkills
)

// Classification carries the intent plus whatever entity the predicate
// resolved: the technology name, or the experience entry the question is
// about. RoleQuestion is set whenever the question uses company-inquiry
// phrasing, even if no company matched; the retrieval layer uses it to keep
// goal-language chunks out of role answers.
type Classification struct {
	Intent       Intent
	Tech         string
	Job          *domain.Experience
	RoleQuestion bool
}

var (
	techQuestionRe    = regexp.MustCompile(`(?i)(experience|worked|used|projects?|jobs?|roles?)\s+(with|using|in|on|at)`)
	techQuestionAltRe = regexp.MustCompile(`(?i)(what|which|where|list).*(experience|projects?|jobs?|roles?).*\s(with|using)`)
	backgroundRe      = regexp.MustCompile(`(?i)(background|summary|overview|tell me about|who is)`)
	roleCompanyRe     = regexp.MustCompile(`(?i)(tell me about|what.*\bat\b|role at|work at|worked at|experience at|job at|position at)`)
	skillsRe          = regexp.MustCompile(`(?i)(programming language|languages?\b|skills?\b|tech stack|technologies)`)
	goalLanguageRe    = regexp.MustCompile(`(?i)(looking for|leverage|seeking|career goals?)`)
	accomplishmentRe  = regexp.MustCompile(`(?i)\b(increased|improved|built|led|optimi[sz]ed|reduced|launched|designed|developed|created|delivered|shipped|automated)\b`)
)

// Classify evaluates the intent predicates in priority order.
func Classify(p domain.Profile, question string) Classification {
	cls := Classification{Intent: IntentGeneral}
	cls.RoleQuestion = roleCompanyRe.MatchString(question)

	if tech, ok := MatchTechnology(p, question); ok &&
		(techQuestionRe.MatchString(question) || techQuestionAltRe.MatchString(question)) {
		cls.Intent = IntentTechnology
		cls.Tech = tech
		return cls
	}

	if backgroundRe.MatchString(question) && mentionsName(p, question) {
		cls.Intent = IntentBackground
		return cls
	}

	if cls.RoleQuestion {
		if job := matchCompany(p, question); job != nil {
			cls.Intent = IntentRoleCompany
			cls.Job = job
			return cls
		}
	}

	if skillsRe.MatchString(question) {
		cls.Intent = IntentSkills
	}
	return cls
}

// MatchTechnology finds a technology from the profile's skills, project
// tech, and experience tech lists referenced by the question. A technology
// matches iff every token of its normalized name appears as a whole token
// of the normalized question; no substring matching, so "R" only matches a
// standalone "r" token.
func MatchTechnology(p domain.Profile, question string) (string, bool) {
	qTokens := make(map[string]struct{})
	for _, t := range strings.Fields(textutil.Normalize(question)) {
		qTokens[t] = struct{}{}
	}
	for _, tech := range allTechnologies(p) {
		words := strings.Fields(textutil.Normalize(tech))
		if len(words) == 0 {
			continue
		}
		matched := true
		for _, w := range words {
			if _, ok := qTokens[w]; !ok {
				matched = false
				break
			}
		}
		if matched {
			return tech, true
		}
	}
	return "", false
}

// allTechnologies lists every known technology name, experience first, then
// projects, then skill items, preserving first-seen casing.
func allTechnologies(p domain.Profile) []string {
	var out []string
	seen := make(map[string]struct{})
	add := func(names []string) {
		for _, n := range names {
			key := strings.ToLower(strings.TrimSpace(n))
			if key == "" {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, n)
		}
	}
	for _, job := range p.Experience {
		add(job.Tech)
	}
	for _, proj := range p.Projects {
		add(proj.Tech)
	}
	for _, group := range p.Skills {
		add(group.Items)
	}
	return out
}

func mentionsName(p domain.Profile, question string) bool {
	name := strings.ToLower(strings.TrimSpace(p.Basics.Name))
	if name == "" {
		return false
	}
	q := strings.ToLower(question)
	if strings.Contains(q, name) {
		return true
	}
	// first name alone is enough
	if first := strings.Fields(name); len(first) > 0 && strings.Contains(q, first[0]) {
		return true
	}
	return false
}

// matchCompany resolves the experience entry a question refers to, by full
// company name or by any significant word of it.
func matchCompany(p domain.Profile, question string) *domain.Experience {
	q := strings.ToLower(question)
	for i := range p.Experience {
		company := strings.ToLower(p.Experience[i].Company)
		if company == "" {
			continue
		}
		if strings.Contains(q, company) {
			return &p.Experience[i]
		}
		for _, word := range strings.Fields(company) {
			if len(word) > 3 && strings.Contains(q, word) {
				return &p.Experience[i]
			}
		}
	}
	return nil
}

// HasGoalLanguage reports whether text reads like an aspiration statement
// ("I'm looking for a role...") rather than a job fact. Such chunks are
// presentation flourishes and never belong in role answers.
func HasGoalLanguage(text string) bool {
	return goalLanguageRe.MatchString(text)
}
