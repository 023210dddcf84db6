package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sixdegrees/pkg/errors"
	"github.com/matzehuels/sixdegrees/pkg/graph/traverse"
	"github.com/matzehuels/sixdegrees/pkg/render/nodelink"
)

const (
	formatDOT = "dot"
	formatSVG = "svg"
)

// treeOpts holds the command-line flags for the tree command.
type treeOpts struct {
	output    string // output file path, stdout when empty
	format    string // "dot" or "svg"; inferred from the output extension when empty
	path      string // actor whose path to the center is highlighted
	maxMovies int    // titles shown per edge
}

// treeCommand renders the path tree of the center.
func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{maxMovies: 2}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Render the shortest-path tree of the center as DOT or SVG",
		Long: `Render the shortest-path tree of the center with Graphviz.

Each actor connected to the center points at the co-star one step closer to
it; edges are labeled with the movies they share. Use --path to highlight one
actor's route to the center.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := opts.resolveFormat()
			if err != nil {
				return err
			}
			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}

			dotOpts := nodelink.Options{MaxMovies: opts.maxMovies}
			if opts.path != "" {
				// Validates the actor and reports NO_PATH when unreachable.
				if _, err := gm.Path(cmd.Context(), s, opts.path); err != nil {
					return err
				}
				if dotOpts.Highlight, err = traverse.Path(s.Tree(), opts.path); err != nil {
					return err
				}
			}

			dot := nodelink.ToDOT(s.Tree(), dotOpts)
			data := []byte(dot)
			if format == formatSVG {
				prog := newProgress(loggerFromContext(cmd.Context()))
				if data, err = nodelink.RenderSVG(cmd.Context(), dot); err != nil {
					return fmt.Errorf("render svg: %w", err)
				}
				prog.done(fmt.Sprintf("Rendered %d actors", s.Tree().NumVertices()))
			}
			return writeOutput(opts.output, data, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: dot, svg (default from extension, else dot)")
	cmd.Flags().StringVarP(&opts.path, "path", "p", "", "highlight the path from this actor to the center")
	cmd.Flags().IntVar(&opts.maxMovies, "max-movies", opts.maxMovies, "movies shown per edge (0 for all)")
	return cmd
}

// resolveFormat picks the output format from the flag or the file extension.
func (o treeOpts) resolveFormat() (string, error) {
	format := strings.ToLower(o.format)
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(o.output)), ".")
		if format != formatSVG {
			format = formatDOT
		}
	}
	if format != formatDOT && format != formatSVG {
		return "", errors.New(errors.ErrCodeInvalidInput, "unsupported format %q (want dot or svg)", o.format)
	}
	return format, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns stdout wrapped in nopCloser.
func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

// writeOutput writes data to path, or stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	out, err := openOutput(path, stdout)
	if err != nil {
		return err
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	if path != "" {
		printSuccess("Wrote path tree")
		printFile(path)
	}
	return nil
}
