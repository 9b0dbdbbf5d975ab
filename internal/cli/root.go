// Package cli provides the command-line interface for figroad.
package cli

import (
	"github.com/spf13/cobra"

	"figroad/internal/app"
)

// Command group IDs.
const (
	groupAnalysis = "analysis"
	groupExport   = "export"
)

// NewRootCommand creates the root command for figroad.
// It receives the container for dependency injection and version for
// display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "figroad",
		Short: "Figma design analyzer and task generator",
		Long: `figroad ingests a Figma design file and derives two artifacts from it:
rendered PNG exports of every visual frame, and a categorized list of
engineering tasks (frontend / backend / AI) inferred from the structure
and naming of design nodes.

Set FIGMA_API_TOKEN (or token in figroad.toml) before use. Roadmap
generation additionally needs GEMINI_API_KEY.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupAnalysis, Title: "Analysis Commands:"},
		&cobra.Group{ID: groupExport, Title: "Export Commands:"},
	)

	root.AddCommand(
		newAnalyzeCommand(c),
		newInspectCommand(c),
		newExportCommand(c),
		newRoadmapCommand(c),
		newConfigCommand(c),
	)

	return root
}
