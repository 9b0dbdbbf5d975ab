package domain

import (
	"fmt"
	"strings"
)

// sections fixes the category order of the rendered summary.
var sections = []struct {
	title    string
	category Category
	empty    string
}{
	{"## Frontend Tasks:", CategoryFrontend, "No specific frontend tasks identified"},
	{"## Backend Tasks:", CategoryBackend, "No specific backend tasks identified"},
	{"## AI Tasks:", CategoryAI, "No specific AI tasks identified"},
}

// RenderSummary formats a task report as a fixed-structure text document:
// one header per category followed by "Task-<n>: <description>" lines in
// the report's stored order. Pure formatting: no re-sorting, no
// re-filtering.
func RenderSummary(r *TaskReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Project Task Analysis Summary - %s\n", r.Project)
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(s.title)
		b.WriteString("\n")
		tasks := r.Tasks(s.category)
		if len(tasks) == 0 {
			b.WriteString(s.empty)
			b.WriteString("\n")
			continue
		}
		for n, task := range tasks {
			fmt.Fprintf(&b, "Task-%d: %s\n", n+1, task.Description)
		}
	}

	return b.String()
}
