package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// TUI is a terminal prompt with tab completion of the candidates
type TUI struct {
	input  io.Reader
	output io.Writer
}

func NewTUI() *TUI {
	return &TUI{}
}

func (t *TUI) Show(ctx context.Context, options []string, prompt string) (string, error) {
	output := t.output
	if output == nil {
		output = os.Stderr
	}

	opts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithOutput(output)}
	if t.input != nil {
		opts = append(opts, tea.WithInput(t.input))
	}

	final, err := tea.NewProgram(newPromptModel(options, prompt), opts...).Run()
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("failed to run terminal prompt: %w", err)
	}

	m, ok := final.(promptModel)
	if !ok || m.cancelled {
		return "", ErrCancelled
	}
	return strings.TrimSpace(m.input.Value()), nil
}

func (t *TUI) Name() string {
	return "tui"
}

func (t *TUI) Args() []string {
	return nil
}

type promptModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

func newPromptModel(options []string, prompt string) promptModel {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(prompt + "> ")
	ti.Placeholder = "stomp your booty to exit..."
	ti.ShowSuggestions = true
	ti.SetSuggestions(options)
	ti.Focus()

	return promptModel{input: ti}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return m.input.View() + "\n" + hintStyle.Render("tab complete • enter run • esc hide") + "\n"
}
