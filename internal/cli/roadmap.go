package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"figroad/internal/app"
	"figroad/internal/usecase"
)

// newRoadmapCommand creates the roadmap command.
func newRoadmapCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Output string
	}

	cmd := &cobra.Command{
		Use:     "roadmap",
		Short:   "Generate a development roadmap from exported screens",
		GroupID: groupAnalysis,
		Long: `Describe every previously exported screen with a multimodal model,
then synthesize the descriptions into a frontend/backend/AI development
roadmap.

Run 'figroad export' first; this command reads the PNGs from the output
directory. Requires GEMINI_API_KEY (or gemini_api_key in figroad.toml).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := c.RoadmapUseCase(cmd.Context())
			if err != nil {
				return err
			}

			out, err := uc.Execute(cmd.Context(), usecase.RoadmapInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, headerStyle.Render("--- Generated Development Roadmap ---"))
			fmt.Fprintln(w, out.Roadmap)

			if opts.Output != "" {
				if err := os.WriteFile(opts.Output, []byte(out.Roadmap), 0o640); err != nil {
					return fmt.Errorf("write roadmap: %w", err)
				}
				fmt.Fprintf(w, "\nRoadmap saved to %s\n", opts.Output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "roadmap.txt", "write the roadmap to a file (empty to skip)")
	return cmd
}
