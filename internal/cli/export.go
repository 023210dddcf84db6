package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	sdio "github.com/matzehuels/sixdegrees/pkg/io"
)

// exportCommand saves the loaded co-star graph as JSON.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Save the co-star graph as JSON",
		Long: `Load the movie tables once and save the resulting co-star graph as JSON.
Pass the file with --graph (or graph = "..." in the config) to skip rebuilding
the graph on later runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.settings(cmd)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			out, err := openOutput(output, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer out.Close()
			if err := sdio.WriteJSON(g, out); err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if output != "" {
				s := costar.Summarize(g)
				printSuccess("Exported %d actors, %d co-star pairs", s.Actors, s.Pairs)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
