package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"resumechat/internal/domain"
)

// AnswerPort is the TUI-facing subset of the answering engine.
type AnswerPort interface {
	AnswerContext(ctx context.Context, question string) domain.Answer
}

type chatMessage struct {
	fromUser bool
	text     string
}

type answerMsg struct {
	answer domain.Answer
}

// Model is the Bubble Tea model for the chat interface.
type Model struct {
	engine      AnswerPort
	input       textinput.Model
	viewport    viewport.Model
	messages    []chatMessage
	suggestions []string
	status      string
	ready       bool
	waiting     bool
}

// New creates a chat model seeded with a greeting and suggested questions.
func New(engine AnswerPort, name string, suggestions []string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Ask about " + name
	ti.Focus()
	ti.CharLimit = 0
	vp := viewport.New(0, 0)
	greeting := fmt.Sprintf("Hi! Ask me anything about %s's experience, skills, and projects.", name)
	return Model{
		engine:      engine,
		input:       ti,
		viewport:    vp,
		messages:    []chatMessage{{text: greeting}},
		suggestions: suggestions,
		status:      "Type a question, or press 1-4 for a suggestion.",
	}
}

// Init initializes the model (text input cursor blink).
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles key and window events and updates the view state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ready = true
		_, ch := chatBoxStyle.GetFrameSize()
		_, ih := inputBoxStyle.GetFrameSize()
		reserved := 1 + 1 + len(m.suggestions) + ih + 1 // header, status, chips, spacer
		vh := msg.Height - reserved - ch
		if vh < 3 {
			vh = 3
		}
		m.viewport.Width = max(20, msg.Width-4)
		m.viewport.Height = vh
		m.viewport.SetContent(m.renderChat())
		m.viewport.GotoBottom()
		return m, nil

	case answerMsg:
		m.waiting = false
		m.messages = append(m.messages, chatMessage{text: msg.answer.Answer})
		if len(msg.answer.Sources) > 0 {
			m.messages = append(m.messages, chatMessage{text: renderSources(msg.answer.Sources)})
		}
		m.suggestions = msg.answer.SuggestedQuestions
		m.status = "Type a question, or press 1-4 for a suggestion."
		m.viewport.SetContent(m.renderChat())
		m.viewport.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyCtrlD {
			return m, tea.Quit
		}
		if m.waiting {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			q := strings.TrimSpace(m.input.Value())
			if q != "" {
				m.input.SetValue("")
				return m.ask(q)
			}
		case "1", "2", "3", "4":
			// digit shortcuts only pick suggestions from an empty input
			if strings.TrimSpace(m.input.Value()) == "" {
				idx := int(msg.String()[0] - '1')
				if idx < len(m.suggestions) {
					return m.ask(m.suggestions[idx])
				}
			}
		case "up":
			m.viewport.LineUp(1)
			return m, nil
		case "down":
			m.viewport.LineDown(1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) ask(question string) (tea.Model, tea.Cmd) {
	m.messages = append(m.messages, chatMessage{fromUser: true, text: question})
	m.waiting = true
	m.status = "Thinking..."
	m.viewport.SetContent(m.renderChat())
	m.viewport.GotoBottom()
	engine := m.engine
	return m, func() tea.Msg {
		return answerMsg{answer: engine.AnswerContext(context.Background(), question)}
	}
}

// View renders the chat layout.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	header := lipgloss.NewStyle().Bold(true).Render("Resume Chat")
	chat := chatBoxStyle.Render(m.viewport.View())
	var chips strings.Builder
	for i, s := range m.suggestions {
		chips.WriteString(chipStyle.Render(fmt.Sprintf("[%d] %s", i+1, s)) + "\n")
	}
	input := inputBoxStyle.Render(m.input.View())
	status := statusStyle.Render(m.status)
	return header + "\n" + chat + "\n" + strings.TrimRight(chips.String(), "\n") + "\n" + input + "\n" + status
}

func (m Model) renderChat() string {
	var b strings.Builder
	for i, msg := range m.messages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if msg.fromUser {
			b.WriteString(userStyle.Render("You: ") + msg.text)
		} else {
			b.WriteString(botStyle.Render("Bot: ") + msg.text)
		}
	}
	return b.String()
}

func renderSources(sources []domain.Source) string {
	var b strings.Builder
	b.WriteString("Sources:")
	for _, s := range sources {
		b.WriteString("\n- " + s.Title)
	}
	return sourceStyle.Render(b.String())
}

var (
	chatBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	inputBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	userStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	botStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	sourceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
