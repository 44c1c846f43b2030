package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/jamobs/internal/backspace"
	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/f3rmion/jamobs/internal/tui/bigchar"
)

const historySize = 8

// Step is one smart backspace applied in the playground.
type Step struct {
	Before  string
	After   string
	Outcome backspace.Outcome
	Keys    []keys.Event
}

// Model is the playground model: a text field where alt+backspace (or tab)
// peels one jamo off the last character.
type Model struct {
	input   textinput.Model
	layout  keys.Layout
	glyphs  *bigchar.Renderer
	history []Step

	width  int
	height int
}

// New creates the playground. glyphs may be nil when no Hangul font exists.
func New(layout keys.Layout, glyphs *bigchar.Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = "한글을 입력하세요..."
	ti.Focus()
	ti.CharLimit = 80
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return Model{
		input:  ti,
		layout: layout,
		glyphs: glyphs,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "alt+backspace", "tab":
			return m.peel(), nil
		case "ctrl+l":
			m.history = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// peel runs one smart backspace on the character before the cursor.
func (m Model) peel() Model {
	before := m.input.Value()
	sim := backspace.NewSimulation(before, m.layout, nil)
	sim.SetCaret(m.input.Position())
	out, events := sim.Peel()

	m.input.SetValue(sim.Text())
	m.input.SetCursor(sim.Caret())

	m.history = append([]Step{{Before: before, After: sim.Text(), Outcome: out, Keys: events}}, m.history...)
	if len(m.history) > historySize {
		m.history = m.history[:historySize]
	}
	return m
}

// View renders the UI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("jamobs playground"))
	b.WriteString("  ")
	b.WriteString(SubtitleStyle.Render("one jamo per backspace"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if art := m.lastCharArt(); art != "" {
		b.WriteString(BigCharStyle.Render(art))
		b.WriteString("\n")
	}

	if len(m.history) > 0 {
		b.WriteString(BoxStyle.Render(m.renderStep(m.history[0])))
		b.WriteString("\n")
	}

	if len(m.history) > 1 {
		b.WriteString(SubtitleStyle.Render("History"))
		b.WriteString("\n")
		for _, s := range m.history[1:] {
			b.WriteString(fmt.Sprintf("  %s → %s\n", CharStyle.Render(quoteEmpty(s.Before)), CharStyle.Render(quoteEmpty(s.After))))
		}
	}

	b.WriteString(HelpStyle.Render("alt+backspace/tab: peel one jamo • ctrl+l: clear history • esc: quit"))
	return b.String()
}

func (m Model) lastCharArt() string {
	runes := []rune(m.input.Value())
	if m.glyphs == nil || len(runes) == 0 {
		return ""
	}
	return m.glyphs.Render(string(runes[len(runes)-1]), 24, 10)
}

func (m Model) renderStep(s Step) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, LabelStyle.Render(label), value) + "\n"
	}

	var b strings.Builder
	b.WriteString(row("Captured", CharStyle.Render(quoteEmpty(s.Outcome.Captured))))
	if s.Outcome.Fallback {
		b.WriteString(row("Action", FallbackStyle.Render("ordinary backspace")))
	} else {
		b.WriteString(row("Retype", RetypeStyle.Render(quoteEmpty(string(s.Outcome.Retyped)))))
	}
	b.WriteString(row("Text", ValueStyle.Render(quoteEmpty(s.Before)+" → "+quoteEmpty(s.After))))
	b.WriteString(row("Keys", KeysStyle.Render(keys.FormatEvents(s.Keys))))
	return strings.TrimSuffix(b.String(), "\n")
}

func quoteEmpty(s string) string {
	if s == "" {
		return "∅"
	}
	return s
}
