package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumechat/internal/domain"
)

func testProfile() domain.Profile {
	return domain.Profile{
		Basics: domain.Basics{
			Name:     "Jane Doe",
			Title:    "Senior Software Engineer",
			Location: "Berlin, Germany",
			Summary:  "Backend engineer focused on distributed systems.",
			Email:    "jane@example.com",
		},
		Highlights: []string{"B.S. Computer Science, State University (2018)"},
		About: domain.About{
			Tagline: "Building reliable systems.",
			Bio:     "Jane has shipped backend services for six years.",
			Goals:   "Looking for a role where I can leverage distributed systems experience.",
		},
		Skills: []domain.SkillGroup{
			{Category: "Languages", Items: []string{"Go", "Python", "TypeScript"}},
			{Category: "Tools", Items: []string{"Docker", "Kubernetes"}},
		},
		Projects: []domain.Project{
			{Name: "ChatServer", Description: "Realtime chat backend.", Tech: []string{"Go", "Redis"}},
		},
		Experience: []domain.Experience{
			{
				Company:  "Acme Corp",
				Role:     "Backend Engineer",
				Location: "Berlin",
				Dates:    "2021 - 2024",
				Highlights: []string{
					"Built a payments pipeline processing 2M events per day.",
					"Reduced API latency by 40 percent.",
				},
				Tech: []string{"Go", "PostgreSQL", "Kubernetes"},
			},
			{
				Company:    "Globex",
				Role:       "Software Engineer",
				Location:   "Remote",
				Dates:      "2018 - 2021",
				Highlights: []string{"Developed internal tooling."},
				Tech:       []string{"Python", "Django"},
			},
		},
	}
}

func TestClassify(t *testing.T) {
	p := testProfile()
	tests := []struct {
		name     string
		question string
		intent   Intent
	}{
		{"technology with", "What is Jane's experience with Go?", IntentTechnology},
		{"technology alt phrasing", "What projects were done using Kubernetes?", IntentTechnology},
		{"background", "Tell me about Jane's background", IntentBackground},
		{"role company", "What did Jane do at Acme?", IntentRoleCompany},
		{"skills", "What programming languages does she know?", IntentSkills},
		{"general", "Where is she located?", IntentGeneral},
		{"background needs name", "Give me a background overview", IntentGeneral},
		{"company phrasing without match", "What was the role at Initech?", IntentGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cls := Classify(p, tt.question)
			assert.Equal(t, tt.intent, cls.Intent)
		})
	}
}

func TestClassifyResolvesEntities(t *testing.T) {
	p := testProfile()

	cls := Classify(p, "What is Jane's experience with Go?")
	assert.Equal(t, "Go", cls.Tech)

	cls = Classify(p, "Tell me about the job at Acme Corp")
	require.NotNil(t, cls.Job)
	assert.Equal(t, "Acme Corp", cls.Job.Company)

	cls = Classify(p, "What was the role at Initech?")
	assert.Nil(t, cls.Job)
	assert.True(t, cls.RoleQuestion)
}

func TestMatchTechnologyWholeWords(t *testing.T) {
	p := testProfile()

	tech, ok := MatchTechnology(p, "What experience does Jane have with Go?")
	assert.True(t, ok)
	assert.Equal(t, "Go", tech)

	tech, ok = MatchTechnology(p, "Which projects used Django?")
	assert.True(t, ok)
	assert.Equal(t, "Django", tech)

	// "go" inside another word never matches
	_, ok = MatchTechnology(p, "Where did the good ideas come from?")
	assert.False(t, ok)
}

func TestHasGoalLanguage(t *testing.T) {
	assert.True(t, HasGoalLanguage("I'm looking for a role in infrastructure."))
	assert.True(t, HasGoalLanguage("I want to leverage my experience."))
	assert.False(t, HasGoalLanguage("Built a payments pipeline."))
}
