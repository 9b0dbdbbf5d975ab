package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"figroad/internal/app"
	"figroad/internal/usecase"
)

// newExportCommand creates the export command.
func newExportCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Workers int
	}

	cmd := &cobra.Command{
		Use:     "export [url]",
		Short:   "Render every exportable frame to a PNG",
		GroupID: groupExport,
		Long: `Fetch a Figma file, select its renderable units (frames, components,
instances, and non-structural groups), and render each one to a PNG
under the output directory. A manifest.yaml listing every unit's
outcome is written next to the images.

Per-unit render failures do not abort the run; they are collected and
reported at the end.

Examples:
  figroad export https://www.figma.com/design/AbC123/my-app
  figroad export AbC123 --workers 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireToken(c); err != nil {
				return err
			}
			key, err := resolveFileKey(args)
			if err != nil {
				return err
			}

			workers := opts.Workers
			if workers <= 0 {
				workers = c.Config.Workers
			}

			out, err := c.ExportUseCase().Execute(cmd.Context(), usecase.ExportInput{
				FileKey: key,
				Workers: workers,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			m := out.Manifest
			fmt.Fprintf(w, "%s\n", headerStyle.Render(fmt.Sprintf("Exported %q", m.Project)))
			fmt.Fprintf(w, "%s  %s\n",
				okStyle.Render(fmt.Sprintf("%d succeeded", m.Succeeded)),
				failedStyle.Render(fmt.Sprintf("%d failed", m.Failed)))
			for _, e := range usecase.FailedUnits(m) {
				fmt.Fprintf(w, "  %s\n", failedStyle.Render(fmt.Sprintf("%s: %s", e.Name, e.Error)))
			}
			fmt.Fprintf(w, "Manifest written to %s\n", out.ManifestPath)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "concurrent render workers (default from config)")
	return cmd
}
