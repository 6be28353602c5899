package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/exline/excmd"
)

// Model is the interactive prompt model. It resolves the first token of
// the input line on every keystroke and renders the outcome below the
// input.
type Model struct {
	commands *excmd.Map
	scope    string

	input      textinput.Model
	transcript []string

	hint    string
	doc     string
	problem string

	quitting bool
}

// New creates a prompt model over the given command map. The scope, when
// non-empty, restricts which commands are visible.
func New(commands *excmd.Map, promptText, scope string) Model {
	ti := textinput.New()
	ti.Prompt = promptText
	ti.Placeholder = "command"
	ti.CharLimit = 256
	ti.Width = 60
	ti.Focus()

	return Model{
		commands: commands,
		scope:    scope,
		input:    ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			if line != "" {
				m.transcript = append(m.transcript, m.resolveLine(line))
			}
			m.input.SetValue("")
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refresh()
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("exline"))
	if m.scope != "" {
		b.WriteString(" " + scopeStyle.Render("("+m.scope+")"))
	}
	b.WriteString("\n\n")

	for _, line := range m.transcript {
		b.WriteString(line + "\n")
	}
	if len(m.transcript) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(m.input.View() + "\n")

	switch {
	case m.problem != "":
		b.WriteString(problemStyle.Render(m.problem) + "\n")
	case m.hint != "":
		b.WriteString(hintStyle.Render(m.hint) + "\n")
		if m.doc != "" {
			b.WriteString(docStyle.Render(m.doc) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("enter: resolve • ctrl+c: quit"))
	return b.String()
}

// refresh recomputes the hint line for the current input.
func (m *Model) refresh() {
	m.hint, m.doc, m.problem = "", "", ""

	token := firstToken(m.input.Value())
	if token == "" {
		return
	}

	mapping, err := m.lookup(token)
	if err != nil {
		var ambiguous *excmd.AmbiguousError
		switch {
		case errors.As(err, &ambiguous):
			m.problem = "ambiguous: " + strings.Join(ambiguous.Candidates, ", ")
		case errors.Is(err, excmd.ErrNotFound):
			m.problem = fmt.Sprintf("unknown command %q", token)
		default:
			m.problem = err.Error()
		}
		return
	}

	m.hint = m.commands.SyntaxHintPrefix(mapping, token)
	m.doc = mapping.RenderDocumentation(func(name string) string {
		return paramStyle.Render(name)
	})
}

// resolveLine renders one transcript entry for an entered line.
func (m *Model) resolveLine(line string) string {
	token := firstToken(line)
	entry := m.input.Prompt + line

	mapping, err := m.lookup(token)
	if err != nil {
		return entry + "  " + problemStyle.Render("✗ "+err.Error())
	}

	target := mapping.Action()
	if target == "" {
		target = "handler"
	}
	return entry + "  " + resolvedStyle.Render("→ "+mapping.Name()+" ("+target+")")
}

func (m *Model) lookup(token string) (*excmd.Mapping, error) {
	if m.scope != "" {
		return m.commands.LookupScope(token, m.scope)
	}
	return m.commands.Lookup(token)
}

func firstToken(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
