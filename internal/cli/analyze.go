package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"figroad/internal/app"
	"figroad/internal/usecase"
)

// newAnalyzeCommand creates the analyze command.
func newAnalyzeCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
	}

	cmd := &cobra.Command{
		Use:     "analyze [url]",
		Short:   "Classify a design file into frontend/backend/AI tasks",
		GroupID: groupAnalysis,
		Long: `Fetch a Figma file, walk its node tree, and infer a categorized
engineering task list from the structure and naming of design nodes.

The URL argument accepts both https://www.figma.com/file/<key>/... and
https://www.figma.com/design/<key>/... forms, or a bare file key. With
no argument, an interactive prompt asks for the URL.

Examples:
  # Analyze a design file
  figroad analyze https://www.figma.com/design/AbC123/my-app

  # Save the summary next to printing it
  figroad analyze AbC123 --output figma_analysis_summary.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(c); err != nil {
				return err
			}
			key, err := resolveFileKey(args)
			if err != nil {
				return err
			}

			out, err := c.AnalyzeUseCase().Execute(cmd.Context(), usecase.AnalyzeInput{FileKey: key})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), renderSummaryStyled(out.Summary))

			if opts.Output != "" {
				if err := os.WriteFile(opts.Output, []byte(out.Summary), 0o640); err != nil {
					return fmt.Errorf("write summary: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "\nSummary saved to %s\n", opts.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "also write the summary to a file")
	return cmd
}
