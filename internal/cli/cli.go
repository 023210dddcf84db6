// Package cli implements the sixdegrees command-line interface.
//
// The CLI loads a movie world, centers it on an actor, and answers the
// queries of the Six Degrees of Kevin Bacon game either one command at a
// time or in an interactive session.
//
// # Commands
//
//   - play: Interactive game with the one-letter command language
//   - center, path, separation, degree, missing, rank: One-shot queries
//   - tree: Render the path tree of the center as DOT or SVG
//   - export: Save the loaded graph as JSON for faster startup
//   - completion: Shell completion scripts
//
// # Configuration
//
// Data paths, the starting center, and the ranking workers come from a TOML
// config file (see package config) and can be overridden with flags.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sixdegrees/pkg/buildinfo"
	"github.com/matzehuels/sixdegrees/pkg/config"
	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/game"
	sdio "github.com/matzehuels/sixdegrees/pkg/io"
	"github.com/matzehuels/sixdegrees/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "sixdegrees"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	flags dataFlags
}

// dataFlags are the persistent flags that override config file settings.
type dataFlags struct {
	config  string
	actors  string
	movies  string
	credits string
	graph   string
	center  string
	workers int
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Sixdegrees plays the Six Degrees of Kevin Bacon game",
		Long:         `Sixdegrees loads a movie database into a co-star graph and answers how closely actors are connected: shortest paths, separations, unreachable actors, and the best centers of the acting universe.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			hooks := logHooks{logger: c.Logger}
			observability.SetQueryHooks(hooks)
			observability.SetLoadHooks(hooks)
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.config, "config", "", "config file (default $XDG_CONFIG_HOME/sixdegrees/config.toml)")
	pf.StringVar(&c.flags.actors, "actors", "", "actor table (<id>|<name>)")
	pf.StringVar(&c.flags.movies, "movies", "", "movie table (<id>|<title>)")
	pf.StringVar(&c.flags.credits, "credits", "", "credit table (<movie id>|<actor id>)")
	pf.StringVar(&c.flags.graph, "graph", "", "graph JSON written by export, used instead of the tables")
	pf.StringVarP(&c.flags.center, "center", "C", "", "center of the acting universe (default \"Kevin Bacon\")")
	pf.IntVar(&c.flags.workers, "workers", 0, "goroutines used to rank centers")

	root.AddCommand(c.playCommand())
	root.AddCommand(c.centerCommand())
	root.AddCommand(c.pathCommand())
	root.AddCommand(c.separationCommand())
	root.AddCommand(c.degreeCommand())
	root.AddCommand(c.missingCommand())
	root.AddCommand(c.rankCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Settings
// =============================================================================

// settings loads the config file and applies flag overrides.
func (c *CLI) settings(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(c.flags.config)
	if err != nil {
		return config.Config{}, err
	}

	overrides := []struct {
		flag string
		dst  *string
		val  string
	}{
		{"actors", &cfg.Actors, c.flags.actors},
		{"movies", &cfg.Movies, c.flags.movies},
		{"credits", &cfg.Credits, c.flags.credits},
		{"graph", &cfg.Graph, c.flags.graph},
		{"center", &cfg.Center, c.flags.center},
	}
	for _, o := range overrides {
		if cmd.Flags().Changed(o.flag) {
			*o.dst = o.val
		}
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = c.flags.workers
	}

	if cfg.Source != "" {
		c.Logger.Debug("loaded config", "path", cfg.Source)
	}
	return cfg, cfg.Validate()
}

// =============================================================================
// Game Factory
// =============================================================================

// loadGraph reads the co-star graph named by cfg, preferring a JSON export.
func loadGraph(ctx context.Context, cfg config.Config) (*costar.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var spin *Spinner
	if isatty.IsTerminal(os.Stderr.Fd()) {
		spin = newSpinnerWithContext(ctx, os.Stderr, "Loading movie data...")
		spin.Start()
	}
	stop := func() {
		if spin != nil {
			spin.Stop()
		}
	}

	if cfg.Graph != "" {
		g, err := sdio.ImportJSON(cfg.Graph)
		stop()
		if err != nil {
			return nil, err
		}
		s := costar.Summarize(g)
		prog.done(fmt.Sprintf("Imported %d actors, %d co-star pairs", s.Actors, s.Pairs))
		return g, nil
	}

	g, report, err := sdio.Load(ctx, cfg.Sources())
	stop()
	if err != nil {
		return nil, err
	}
	if report.SkippedCredits > 0 {
		logger.Warn("skipped credits with unknown movie or actor", "count", report.SkippedCredits)
	}
	prog.done(fmt.Sprintf("Loaded %d actors, %d movies, %d co-star pairs", report.Actors, report.Movies, report.Pairs))
	return g, nil
}

// newSession loads the graph and starts a session on the configured center.
func (c *CLI) newSession(cmd *cobra.Command) (*game.Game, *game.Session, *game.CenterReport, error) {
	cfg, err := c.settings(cmd)
	if err != nil {
		return nil, nil, nil, err
	}
	ctx := cmd.Context()
	g, err := loadGraph(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	gm := game.New(g, cfg.Workers, loggerFromContext(ctx))
	s, report, err := gm.NewSession(ctx, cfg.Center)
	if err != nil {
		return nil, nil, nil, err
	}
	return gm, s, report, nil
}
