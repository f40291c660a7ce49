package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumechat/internal/domain"
)

func TestSkills(t *testing.T) {
	p := testProfile()
	candidates := []domain.ScoredChunk{
		{Chunk: domain.Chunk{ID: "skills-0", Title: "Skills: Languages",
			Text: "Languages: Go, Python, TypeScript"}, Score: 0.5},
	}
	ans, ok := Skills(p, candidates)
	require.True(t, ok)
	// reference-list order, not text order
	assert.Equal(t, "Programming languages include: Python, TypeScript, Go.", ans.Answer)
	assert.NotEmpty(t, ans.Sources)
	assert.Len(t, ans.SuggestedQuestions, 4)
}

func TestSkillsBoundaryMatching(t *testing.T) {
	p := testProfile()
	tests := []struct {
		name    string
		text    string
		want    []string
		notWant []string
	}{
		{"symbol suffix", "Wrote services in C++ and C#.", []string{"C++", "C#"}, []string{"C"}},
		{"plain c standalone", "Ported the parser to C for speed.", []string{"C"}, []string{"C++", "C#"}},
		{"substring never matches", "Organized the Carnival in Scalability Week.", nil, []string{"C", "R", "Scala"}},
		{"go inside word", "Managed the Django migration.", nil, []string{"Go"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := []domain.ScoredChunk{
				{Chunk: domain.Chunk{ID: "x", Title: "Skills", Text: tt.text}, Score: 0.5},
			}
			ans, ok := Skills(p, candidates)
			if tt.want == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			for _, lang := range tt.want {
				assert.Contains(t, ans.Answer, lang)
			}
			for _, lang := range tt.notWant {
				assert.NotContains(t, ans.Answer, lang+",")
				assert.NotContains(t, ans.Answer, lang+".")
			}
		})
	}
}

func TestSkillsExcludesEducationChunks(t *testing.T) {
	p := testProfile()
	candidates := []domain.ScoredChunk{
		{Chunk: domain.Chunk{ID: "highlights", Title: "Highlights",
			Text: "Studied Java at State University."}, Score: 0.5},
	}
	_, ok := Skills(p, candidates)
	assert.False(t, ok)
}

func TestSkillsLanguagesLine(t *testing.T) {
	p := testProfile()
	candidates := []domain.ScoredChunk{
		{Chunk: domain.Chunk{ID: "doc-3", Title: "Languages",
			Text: "Languages: Python and Rust"}, Score: 0.5},
	}
	ans, ok := Skills(p, candidates)
	require.True(t, ok)
	assert.Contains(t, ans.Answer, "Python")
	assert.Contains(t, ans.Answer, "Rust")
}
