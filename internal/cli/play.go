package cli

import (
	"bufio"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sixdegrees/pkg/errors"
	"github.com/matzehuels/sixdegrees/pkg/game"
)

// maxTranscript bounds the command results kept on screen in the TUI.
const maxTranscript = 30

// playCommand creates the interactive game command.
func (c *CLI) playCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the game interactively",
		Long: `Play the Six Degrees of Kevin Bacon game.

` + game.Usage,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gm, s, report, err := c.newSession(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
				fmt.Fprintln(cmd.OutOrStdout(), formatCenter(report))
				return playLines(ctx, gm, s, cmd.InOrStdin(), cmd.OutOrStdout())
			}

			m := newPlayModel(ctx, gm, s, formatCenter(report))
			final, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
			if stderrors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				return err
			}
			if pm, ok := final.(playModel); ok && pm.err != nil {
				return pm.err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "read commands line by line instead of the full-screen UI")
	return cmd
}

// execute parses and runs one game command against s.
// It reports whether the player asked to quit.
func execute(ctx context.Context, gm *game.Game, s *game.Session, line string) (out string, quit bool, err error) {
	cmd, err := game.ParseCommand(line)
	if err != nil {
		return "", false, err
	}

	switch cmd.Op {
	case game.OpQuit:
		return "Thanks for playing.", true, nil
	case game.OpHelp:
		return game.Usage, false, nil
	case game.OpCenter:
		r, err := gm.SetCenter(ctx, s, cmd.Name)
		if err != nil {
			return "", false, err
		}
		return formatCenter(r), false, nil
	case game.OpPath:
		r, err := gm.Path(ctx, s, cmd.Name)
		if err != nil {
			return "", false, err
		}
		return formatPath(r), false, nil
	case game.OpSeparation:
		list, err := gm.Separation(ctx, s, cmd.Low, cmd.High)
		if err != nil {
			return "", false, err
		}
		return formatSeparated(list, cmd.Low, cmd.High), false, nil
	case game.OpDegree:
		list, err := gm.Degree(ctx, s, cmd.Low, cmd.High)
		if err != nil {
			return "", false, err
		}
		return formatConnected(list, cmd.Low, cmd.High), false, nil
	case game.OpMissing:
		missing, err := gm.Missing(ctx, s)
		if err != nil {
			return "", false, err
		}
		return formatMissing(missing, s.Center()), false, nil
	case game.OpCenters:
		list, err := gm.BestCenters(ctx, s, cmd.Count)
		if err != nil {
			return "", false, err
		}
		return formatCenters(list), false, nil
	}
	return "", false, errors.New(errors.ErrCodeInvalidCommand, "unknown command %q", cmd.Op)
}

// fatal reports whether err should end the game rather than be shown to the
// player.
func fatal(err error) bool {
	return stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) ||
		errors.GetCode(err) == errors.ErrCodeInternal
}

// =============================================================================
// Line mode
// =============================================================================

// playLines runs the game over a plain line-oriented reader, as used when
// stdin is piped or --plain is set. Query errors are printed and the loop
// continues; only I/O failures and cancellation end it early.
func playLines(ctx context.Context, gm *game.Game, s *game.Session, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "%s game > ", s.Center())
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		result, quit, err := execute(ctx, gm, s, line)
		if err != nil {
			if fatal(err) {
				return err
			}
			fmt.Fprintln(out, errorLine(errors.UserMessage(err)))
			continue
		}
		fmt.Fprintln(out, result)
		if quit {
			return nil
		}
	}
}

// =============================================================================
// PlayModel - Full-screen game
// =============================================================================

// resultMsg carries the outcome of a command run off the UI goroutine.
type resultMsg struct {
	line   string
	out    string
	center string
	quit   bool
	err    error
}

// playModel is the bubbletea model for the interactive game.
// Commands run in a tea.Cmd; the session is only touched there and the
// model keeps its own copy of the center for rendering.
type playModel struct {
	ctx    context.Context
	gm     *game.Game
	sess   *game.Session
	center string

	input      []rune
	transcript []string
	busy       bool
	err        error
	height     int
}

func newPlayModel(ctx context.Context, gm *game.Game, s *game.Session, welcome string) playModel {
	return playModel{
		ctx:        ctx,
		gm:         gm,
		sess:       s,
		center:     s.Center(),
		transcript: []string{welcome, StyleDim.Render("type h for help")},
		height:     24,
	}
}

func (m playModel) Init() tea.Cmd {
	return nil
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(string(m.input))
			if m.busy || line == "" {
				return m, nil
			}
			m.input = nil
			m.busy = true
			return m, m.run(line)
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}

	case resultMsg:
		m.busy = false
		m.center = msg.center
		entry := StyleDim.Render("> " + msg.line)
		switch {
		case msg.err != nil && fatal(msg.err):
			m.err = msg.err
			return m, tea.Quit
		case msg.err != nil:
			entry += "\n" + errorLine(errors.UserMessage(msg.err))
		default:
			entry += "\n" + msg.out
		}
		m.transcript = append(m.transcript, entry)
		if len(m.transcript) > maxTranscript {
			m.transcript = m.transcript[len(m.transcript)-maxTranscript:]
		}
		if msg.quit {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.height = msg.Height
	}
	return m, nil
}

// run executes line against the session in the background.
func (m playModel) run(line string) tea.Cmd {
	ctx, gm, s := m.ctx, m.gm, m.sess
	return func() tea.Msg {
		out, quit, err := execute(ctx, gm, s, line)
		return resultMsg{line: line, out: out, center: s.Center(), quit: quit, err: err}
	}
}

func (m playModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Six Degrees of " + m.center))
	b.WriteString("\n\n")

	// Show the newest entries that fit, oldest first.
	budget := m.height - 5
	var shown []string
	for i := len(m.transcript) - 1; i >= 0; i-- {
		lines := strings.Count(m.transcript[i], "\n") + 2
		if budget-lines < 0 && len(shown) > 0 {
			break
		}
		budget -= lines
		shown = append(shown, m.transcript[i])
	}
	for i := len(shown) - 1; i >= 0; i-- {
		b.WriteString(shown[i])
		b.WriteString("\n\n")
	}

	prompt := StyleHighlight.Render(m.center + " game >")
	if m.busy {
		b.WriteString(prompt + " " + StyleDim.Render("working..."))
	} else {
		b.WriteString(prompt + " " + string(m.input) + StyleDim.Render("█"))
	}
	return b.String()
}
