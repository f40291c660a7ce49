// Package corpus turns a profile (or an extracted document) into the ordered
// chunk list the scorers retrieve over. Sections are emitted at several
// granularities on purpose: a full-record chunk plus per-item chunks raise
// recall for narrow queries at the cost of corpus size.
package corpus

import (
	"fmt"
	"strings"

	"resumechat/internal/domain"
)

// Build renders the profile into retrievable chunks. It is deterministic and
// depends only on its input: the same profile always yields the same ids,
// titles, and text.
func Build(p domain.Profile) []domain.Chunk {
	var chunks []domain.Chunk
	add := func(id, title string, parts ...string) {
		var kept []string
		for _, s := range parts {
			if strings.TrimSpace(s) != "" {
				kept = append(kept, s)
			}
		}
		if len(kept) == 0 {
			return
		}
		chunks = append(chunks, domain.Chunk{ID: id, Title: title, Text: strings.Join(kept, "\n")})
	}

	b := p.Basics
	add("basics", "Basics",
		fmt.Sprintf("%s — %s", b.Name, b.Title),
		b.Location,
		b.Summary,
		b.Availability,
		emailLine(b.Email),
	)

	if len(p.Highlights) > 0 {
		add("highlights", "Highlights", strings.Join(p.Highlights, "\n"))
	}

	add("about-tagline", "About", p.About.Tagline)
	add("about-bio", "About", p.About.Bio)
	add("about-goals", "Career Goals", p.About.Goals)

	if len(p.Skills) > 0 {
		var lines []string
		for _, g := range p.Skills {
			lines = append(lines, skillLine(g))
		}
		add("skills-overview", "Skills Overview", strings.Join(lines, "\n"))
	}
	for i, g := range p.Skills {
		add(fmt.Sprintf("skills-%d", i), "Skills: "+g.Category, skillLine(g))
		for j, item := range g.Items {
			add(fmt.Sprintf("skill-item-%d-%d", i, j), "Skill: "+item,
				fmt.Sprintf("%s is part of %s skills.", item, g.Category))
		}
	}

	for i, proj := range p.Projects {
		title := "Project: " + proj.Name
		add(fmt.Sprintf("project-%d", i), title,
			"Project: "+proj.Name,
			proj.Description,
			techLine("Technologies used: ", proj.Tech),
		)
		for j, tech := range proj.Tech {
			add(fmt.Sprintf("project-%d-tech-%d", i, j), title,
				fmt.Sprintf("%s uses %s. %s", proj.Name, tech, proj.Description))
		}
	}

	for i, job := range p.Experience {
		title := fmt.Sprintf("Experience: %s @ %s", job.Role, job.Company)
		parts := []string{
			fmt.Sprintf("%s — %s", job.Company, job.Role),
			"Location: " + job.Location,
			"Dates: " + job.Dates,
		}
		parts = append(parts, job.Highlights...)
		parts = append(parts, techLine("Technologies: ", job.Tech))
		add(fmt.Sprintf("job-%d", i), title, parts...)

		for h, highlight := range job.Highlights {
			add(fmt.Sprintf("job-%d-highlight-%d", i, h), title,
				fmt.Sprintf("%s — %s (%s)", job.Company, job.Role, job.Dates),
				highlight,
				techLine("Technologies: ", job.Tech),
			)
		}
		for j, tech := range job.Tech {
			add(fmt.Sprintf("job-%d-tech-%d", i, j), title,
				fmt.Sprintf("At %s as %s, used %s. %s",
					job.Company, job.Role, tech, strings.Join(job.Highlights, " ")))
		}
	}

	return chunks
}

func emailLine(email string) string {
	if email == "" {
		return ""
	}
	return "Email: " + email
}

func skillLine(g domain.SkillGroup) string {
	return g.Category + ": " + strings.Join(g.Items, ", ")
}

func techLine(prefix string, tech []string) string {
	if len(tech) == 0 {
		return ""
	}
	return prefix + strings.Join(tech, ", ")
}
