package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"figroad/internal/app"
	"figroad/internal/usecase"
)

// newInspectCommand creates the inspect command.
func newInspectCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect [url]",
		Short:   "Dump a design file's node tree and type statistics",
		GroupID: groupAnalysis,
		Long: `Print a census of the design file: total node count, a per-type
breakdown, and the full component tree with one indented line per node.

Useful for checking what the classifier and exporter will see before
running them.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(c); err != nil {
				return err
			}
			key, err := resolveFileKey(args)
			if err != nil {
				return err
			}

			out, err := c.InspectUseCase().Execute(cmd.Context(), usecase.InspectInput{FileKey: key})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render(fmt.Sprintf("Project: %s", out.Project)))
			fmt.Fprintf(w, "File key: %s\n", out.FileKey)
			fmt.Fprintf(w, "Total nodes: %d\n\n", out.TotalNodes)

			fmt.Fprintln(w, sectionStyle.Render("Node type breakdown:"))
			for _, tc := range out.TypeCounts {
				fmt.Fprintf(w, "  %s: %d\n", tc.Type, tc.Count)
			}

			fmt.Fprintln(w)
			fmt.Fprintln(w, sectionStyle.Render("Component tree:"))
			for _, line := range out.TreeLines {
				fmt.Fprintf(w, "  %s\n", line)
			}
			return nil
		},
	}

	return cmd
}
