package prompt

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func TestPrompt_EnterConfirms(t *testing.T) {
	m := typeString(t, New("Figma project URL"), "abc123")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	assert.NotNil(t, cmd, "enter should quit the program")
	assert.False(t, m.Canceled())
	assert.Equal(t, "abc123", m.Value())
}

func TestPrompt_EscCancels(t *testing.T) {
	m := New("Figma project URL")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(Model)

	assert.True(t, m.Canceled())
}

func TestPrompt_ViewShowsLabelAndHint(t *testing.T) {
	m := New("Figma project URL")

	view := m.View()
	assert.Contains(t, view, "Figma project URL")
	assert.Contains(t, view, "enter to confirm")
}
