package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sixdegrees/pkg/errors"
)

// centerCommand reports how well connected the center is.
func (c *CLI) centerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "center [name]",
		Short: "Show how connected an actor is as the center of the universe",
		Long:  `Show how many actors reach the center and their average separation. Without a name the configured center is used.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, s, report, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				if report, err = gm.SetCenter(cmd.Context(), s, args[0]); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatCenter(report))
			return nil
		},
	}
}

// pathCommand prints how an actor connects to the center.
func (c *CLI) pathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path <name>",
		Short: "Find the path from an actor to the center",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			r, err := gm.Path(cmd.Context(), s, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatPath(r))
			return nil
		},
	}
}

// separationCommand lists actors by separation from the center.
func (c *CLI) separationCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "separation <low> <high>",
		Short: "List actors whose separation from the center is in a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high, err := parseRange(args)
			if err != nil {
				return err
			}
			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			list, err := gm.Separation(cmd.Context(), s, low, high)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatSeparated(list, low, high))
			return nil
		},
	}
}

// degreeCommand lists actors by number of co-stars.
func (c *CLI) degreeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "degree <low> <high>",
		Short: "List actors whose number of co-stars is in a range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			low, high, err := parseRange(args)
			if err != nil {
				return err
			}
			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			list, err := gm.Degree(cmd.Context(), s, low, high)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatConnected(list, low, high))
			return nil
		},
	}
}

// missingCommand lists actors with no path to the center.
func (c *CLI) missingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "missing",
		Short: "List actors with no path to the center",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			missing, err := gm.Missing(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatMissing(missing, s.Center()))
			return nil
		},
	}
}

// rankCommand lists the best or worst centers of the universe.
func (c *CLI) rankCommand() *cobra.Command {
	var worst bool

	cmd := &cobra.Command{
		Use:   "rank [n]",
		Short: "Rank the actors connected to the center by average separation",
		Long: `Rank every actor connected to the center by the average separation it would
have as the center itself. Prints the n best centers, or the n worst with --worst.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := 10
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 {
					return errors.New(errors.ErrCodeInvalidInput, "n must be a positive number, got %q", args[0])
				}
				n = v
			}
			if worst {
				n = -n
			}

			gm, s, _, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			list, err := gm.BestCenters(cmd.Context(), s, n)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Ranked %d center(s)", len(list)))
			fmt.Fprintln(cmd.OutOrStdout(), formatCenters(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&worst, "worst", false, "list the worst centers, highest average first")
	return cmd
}

// parseRange parses the <low> <high> arguments of a range query.
func parseRange(args []string) (low, high int, err error) {
	bounds := make([]int, 2)
	for i, a := range args {
		if bounds[i], err = strconv.Atoi(a); err != nil {
			return 0, 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "%q is not a number", a)
		}
	}
	if err := errors.ValidateRange(bounds[0], bounds[1]); err != nil {
		return 0, 0, err
	}
	return bounds[0], bounds[1], nil
}
