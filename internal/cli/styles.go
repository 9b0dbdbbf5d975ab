package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
)

// renderSummaryStyled decorates the plain summary text for terminal
// output. The underlying text is untouched; only headings get styling.
func renderSummaryStyled(summary string) string {
	lines := strings.Split(strings.TrimRight(summary, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			lines[i] = headerStyle.Render(line)
		case strings.HasPrefix(line, "## "):
			lines[i] = sectionStyle.Render(line)
		case strings.HasPrefix(line, "No specific "):
			lines[i] = faintStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
