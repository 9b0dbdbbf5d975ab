package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	report := &TaskReport{
		Project: "Demo App",
		Frontend: []TaskCandidate{
			{Category: CategoryFrontend, Description: "Implement Login Page page/screen"},
			{Category: CategoryFrontend, Description: "Create form validation for Email"},
		},
		Backend: []TaskCandidate{
			{Category: CategoryBackend, Description: "Implement user authentication system"},
		},
	}

	out := RenderSummary(report)

	assert.Contains(t, out, "# Project Task Analysis Summary - Demo App")
	assert.Contains(t, out, "## Frontend Tasks:\nTask-1: Implement Login Page page/screen\nTask-2: Create form validation for Email\n")
	assert.Contains(t, out, "## Backend Tasks:\nTask-1: Implement user authentication system\n")
	assert.Contains(t, out, "## AI Tasks:\nNo specific AI tasks identified\n")
}

func TestRenderSummary_EmptyReport(t *testing.T) {
	out := RenderSummary(&TaskReport{Project: "Empty"})

	assert.Contains(t, out, "No specific frontend tasks identified")
	assert.Contains(t, out, "No specific backend tasks identified")
	assert.Contains(t, out, "No specific AI tasks identified")
}

func TestRenderSummary_KeepsStoredOrder(t *testing.T) {
	report := &TaskReport{
		Project: "Order",
		AI: []TaskCandidate{
			{Description: "Zeta task"},
			{Description: "Alpha task"},
		},
	}

	out := RenderSummary(report)
	zeta := strings.Index(out, "Task-1: Zeta task")
	alpha := strings.Index(out, "Task-2: Alpha task")
	require.GreaterOrEqual(t, zeta, 0)
	require.GreaterOrEqual(t, alpha, 0)
	assert.Less(t, zeta, alpha, "renderer must not re-sort")
}

func TestRenderSummary_SectionOrder(t *testing.T) {
	out := RenderSummary(&TaskReport{Project: "Sections"})

	fe := strings.Index(out, "## Frontend Tasks:")
	be := strings.Index(out, "## Backend Tasks:")
	ai := strings.Index(out, "## AI Tasks:")
	assert.True(t, fe < be && be < ai)
}
