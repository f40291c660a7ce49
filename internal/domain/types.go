package domain

// Profile is the structured resume record the engine answers questions about.
// It is owned by the caller and treated as immutable for the session.
type Profile struct {
	Basics     Basics       `yaml:"basics" json:"basics"`
	Highlights []string     `yaml:"highlights" json:"highlights"`
	About      About        `yaml:"about" json:"about"`
	Skills     []SkillGroup `yaml:"skills" json:"skills"`
	Projects   []Project    `yaml:"projects" json:"projects"`
	Experience []Experience `yaml:"experience" json:"experience"`
}

// Basics holds identity and contact fields.
type Basics struct {
	Name         string `yaml:"name" json:"name"`
	Title        string `yaml:"title" json:"title"`
	Location     string `yaml:"location" json:"location"`
	Email        string `yaml:"email" json:"email"`
	Availability string `yaml:"availability" json:"availability"`
	Summary      string `yaml:"summary" json:"summary"`
	Links        Links  `yaml:"links" json:"links"`
}

// Links are optional external references; empty strings mean absent.
type Links struct {
	Website   string `yaml:"website" json:"website,omitempty"`
	GitHub    string `yaml:"github" json:"github,omitempty"`
	LinkedIn  string `yaml:"linkedin" json:"linkedin,omitempty"`
	ResumeURL string `yaml:"resume_url" json:"resumeUrl,omitempty"`
}

// About carries the narrative sections of the profile.
type About struct {
	Tagline string `yaml:"tagline" json:"tagline"`
	Bio     string `yaml:"bio" json:"bio"`
	Goals   string `yaml:"goals" json:"goals"`
}

// SkillGroup is one named category of skill items.
type SkillGroup struct {
	Category string   `yaml:"category" json:"category"`
	Items    []string `yaml:"items" json:"items"`
}

// Project is a portfolio project record.
type Project struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Tech        []string     `yaml:"tech" json:"tech"`
	Links       ProjectLinks `yaml:"links" json:"links"`
}

// ProjectLinks are optional project references.
type ProjectLinks struct {
	Demo string `yaml:"demo" json:"demo,omitempty"`
	Repo string `yaml:"repo" json:"repo,omitempty"`
}

// Experience is one employment entry.
type Experience struct {
	Company    string   `yaml:"company" json:"company"`
	Role       string   `yaml:"role" json:"role"`
	Location   string   `yaml:"location" json:"location"`
	Dates      string   `yaml:"dates" json:"dates"`
	Highlights []string `yaml:"highlights" json:"highlights"`
	Tech       []string `yaml:"tech" json:"tech"`
}

// Chunk is a retrievable unit of corpus text. IDs are unique within one
// corpus build; the optional embedding is filled in lazily by the engine.
type Chunk struct {
	ID        string
	Title     string
	Text      string
	Embedding []float32
}

// ScoredChunk pairs a chunk with a relevance score in [0,1].
type ScoredChunk struct {
	Chunk Chunk
	Score float64
}

// Source is a cleaned, human-presentable excerpt backing an answer.
type Source struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
}

// Answer is the result of one question. It is always well formed: a
// non-empty answer string and exactly four suggested follow-up questions.
type Answer struct {
	Answer             string   `json:"answer"`
	Sources            []Source `json:"sources"`
	SuggestedQuestions []string `json:"suggestedQuestions"`
}
