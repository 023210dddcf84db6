package game

import (
	"strconv"
	"strings"

	"github.com/matzehuels/sixdegrees/pkg/errors"
)

// Op identifies a game command by its letter.
type Op byte

// Game commands.
const (
	OpCenters    Op = 'c'
	OpDegree     Op = 'd'
	OpMissing    Op = 'i'
	OpPath       Op = 'p'
	OpSeparation Op = 's'
	OpCenter     Op = 'u'
	OpHelp       Op = 'h'
	OpQuit       Op = 'q'
)

// String returns the command letter.
func (o Op) String() string { return string(rune(o)) }

// Command is a parsed game command. Only the fields used by Op are set.
type Command struct {
	Op    Op
	Name  string // p, u
	Count int    // c
	Low   int    // d, s
	High  int    // d, s
}

// Usage lists the commands of the interactive game.
const Usage = `Commands:
  c <#>           list top (positive number) or bottom (negative) <#> centers of the universe, sorted by average separation
  d <low> <high>  list actors sorted by degree, with degree between low and high
  i               list actors with infinite separation from the current center
  p <name>        find path from <name> to current center of the universe
  s <low> <high>  list actors sorted by non-infinite separation from the current center, with separation between low and high
  u <name>        make <name> the center of the universe
  h               show this help
  q               quit game`

// ParseCommand parses one line of the interactive game.
//
// The first word must be a single command letter. Names run to the end of
// the line and may contain spaces. Ranges must satisfy low <= high.
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "empty command, type h for help")
	}

	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	if len(word) != 1 {
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "unknown command %q, type h for help", word)
	}

	cmd := Command{Op: Op(word[0])}
	switch cmd.Op {
	case OpMissing, OpHelp, OpQuit:
		if rest != "" {
			return Command{}, errors.New(errors.ErrCodeInvalidCommand, "%s takes no arguments", cmd.Op)
		}

	case OpPath, OpCenter:
		if err := errors.ValidateActorName(rest); err != nil {
			return Command{}, err
		}
		cmd.Name = rest

	case OpCenters:
		n, err := parseInts(cmd.Op, rest, 1)
		if err != nil {
			return Command{}, err
		}
		cmd.Count = n[0]

	case OpDegree, OpSeparation:
		n, err := parseInts(cmd.Op, rest, 2)
		if err != nil {
			return Command{}, err
		}
		if err := errors.ValidateRange(n[0], n[1]); err != nil {
			return Command{}, err
		}
		cmd.Low, cmd.High = n[0], n[1]

	default:
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "unknown command %q, type h for help", word)
	}
	return cmd, nil
}

func parseInts(op Op, args string, want int) ([]int, error) {
	fields := strings.Fields(args)
	if len(fields) != want {
		return nil, errors.New(errors.ErrCodeInvalidCommand, "%s expects %d number(s), got %d", op, want, len(fields))
	}
	out := make([]int, want)
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidCommand, err, "%s: %q is not a number", op, f)
		}
		out[i] = n
	}
	return out, nil
}
