package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildFromDocument(t *testing.T) {
	text := "Jane Doe, engineer based in Berlin.\n" +
		"Work Experience:\n" +
		"Backend Engineer at Acme Corp. Built a payments pipeline.\n" +
		"Skills\n" +
		"Go, Python, Kubernetes\n"

	chunks := BuildFromDocument(text)
	require.NotEmpty(t, chunks)

	titles := make(map[string]bool)
	for _, c := range chunks {
		titles[c.Title] = true
	}
	assert.True(t, titles["Summary"], "preamble becomes the summary section")
	assert.True(t, titles["Work Experience"])
	assert.True(t, titles["Skills"])

	// section chunk plus one chunk per sentence
	var sectionTexts []string
	for _, c := range chunks {
		if c.Title == "Work Experience" {
			sectionTexts = append(sectionTexts, c.Text)
		}
	}
	require.Len(t, sectionTexts, 3)
	assert.Contains(t, sectionTexts[0], "Built a payments pipeline.")
	assert.Equal(t, "Backend Engineer at Acme Corp.", sectionTexts[1])
	assert.Equal(t, "Built a payments pipeline.", sectionTexts[2])
}

func TestBuildFromDocumentNoHeadings(t *testing.T) {
	chunks := BuildFromDocument("Just one flat paragraph about work.")
	require.Len(t, chunks, 2)
	assert.Equal(t, "Summary", chunks[0].Title)
	assert.Equal(t, "doc-0", chunks[0].ID)
	assert.Equal(t, "doc-0-s0", chunks[1].ID)
}

func TestHeadingTitle(t *testing.T) {
	tests := []struct {
		line  string
		title string
		ok    bool
	}{
		{"Work Experience:", "Work Experience", true},
		{"EXPERIENCE", "Work Experience", true},
		{"Skills", "Skills", true},
		{"skills and tools", "Skills", true},
		{"Experienced engineer with a decade of work", "", false},
		{"Plain sentence.", "", false},
	}
	for _, tt := range tests {
		title, ok := headingTitle(tt.line)
		assert.Equal(t, tt.ok, ok, tt.line)
		assert.Equal(t, tt.title, title, tt.line)
	}
}
