package repl

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/acdc/foundation/acdc"
	mdwlog "github.com/msto63/acdc/foundation/core/log"
)

// maxVisible bounds the entries rendered above the prompt
const maxVisible = 12

// Model is the REPL model
type Model struct {
	session *Session
	input   textinput.Model
	entries []Entry
	width   int

	// history holds submitted lines, oldest first. histPos == len(history)
	// means the prompt is not showing a history line.
	history []string
	histPos int
	draft   string
}

// NewModel creates a REPL model on engine
func NewModel(engine *acdc.Engine, logger *mdwlog.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "acdc> "
	ti.Placeholder = "ia, a = 3 + 4 * 2, pa"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		session: NewSession(engine, logger),
		input:   ti,
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
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			line := m.input.Value()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.entries = append(m.entries, m.session.Submit(line))
			m.history = append(m.history, line)
			m.histPos = len(m.history)
			m.draft = ""
			m.input.Reset()
			return m, nil

		case "up":
			if m.histPos > 0 {
				if m.histPos == len(m.history) {
					m.draft = m.input.Value()
				}
				m.histPos--
				m.input.SetValue(m.history[m.histPos])
				m.input.CursorEnd()
			}
			return m, nil

		case "down":
			if m.histPos < len(m.history) {
				m.histPos++
				if m.histPos == len(m.history) {
					m.input.SetValue(m.draft)
				} else {
					m.input.SetValue(m.history[m.histPos])
				}
				m.input.CursorEnd()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the REPL
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("ACDC REPL"))
	s.WriteString("  ")
	s.WriteString(HelpStyle.Render("enter: compile  up/down: history  esc: quit"))
	s.WriteString("\n\n")

	visible := m.entries
	if len(visible) > maxVisible {
		visible = visible[len(visible)-maxVisible:]
	}
	for _, e := range visible {
		s.WriteString(renderEntry(e))
		s.WriteString("\n")
	}

	s.WriteString(m.input.View())
	s.WriteString("\n")
	return s.String()
}

func renderEntry(e Entry) string {
	var s strings.Builder
	s.WriteString(InputStyle.Render(fmt.Sprintf("[%d] %s", e.Line, e.Input)))
	s.WriteString("\n")

	if !e.OK() {
		s.WriteString(ErrorStyle.Render(e.Diagnostic))
		s.WriteString("\n")
		return s.String()
	}

	s.WriteString(ASTStyle.Render(e.AST))
	s.WriteString("\n")
	s.WriteString(CodeStyle.Render(strings.TrimRight(e.Tree, "\n")))
	s.WriteString("\n")
	s.WriteString(CodeStyle.Render("dc: " + strings.ReplaceAll(strings.TrimRight(e.Code, "\n"), "\n", " ")))
	s.WriteString("\n")
	for _, v := range e.Printed {
		s.WriteString(OutputStyle.Render(fmt.Sprintf("=> %d", v)))
		s.WriteString("\n")
	}
	return s.String()
}

// Entries returns the submitted lines and their outcomes
func (m Model) Entries() []Entry {
	return m.entries
}

// Run starts the REPL on the terminal and blocks until the user quits or
// ctx is cancelled
func Run(ctx context.Context, engine *acdc.Engine, logger *mdwlog.Logger) error {
	p := tea.NewProgram(NewModel(engine, logger), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
