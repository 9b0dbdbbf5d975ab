// Package prompt provides a small interactive prompt for entering a
// Figma URL when none is passed on the command line.
package prompt

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ErrCanceled is returned when the user aborts the prompt.
var ErrCanceled = errors.New("prompt canceled")

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
)

// Model is the URL prompt model.
type Model struct {
	label    string
	input    textinput.Model
	done     bool
	canceled bool
}

// New creates a prompt model with the given label.
func New(label string) Model {
	ti := textinput.New()
	ti.Placeholder = "https://www.figma.com/design/<key>/..."
	ti.CharLimit = 500
	ti.Width = 72
	ti.Focus()

	return Model{label: label, input: ti}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.done || m.canceled {
		return ""
	}
	return labelStyle.Render(m.label) + "\n" +
		m.input.View() + "\n" +
		hintStyle.Render("enter to confirm, esc to cancel") + "\n"
}

// Value returns the entered text.
func (m Model) Value() string {
	return m.input.Value()
}

// Canceled reports whether the user aborted the prompt.
func (m Model) Canceled() bool {
	return m.canceled
}

// Run shows the prompt and blocks until the user confirms or cancels.
func Run(label string) (string, error) {
	final, err := tea.NewProgram(New(label)).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(Model)
	if !ok || m.Canceled() {
		return "", ErrCanceled
	}
	return m.Value(), nil
}
