package game

import (
	"context"
	stderrors "errors"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/errors"
	"github.com/matzehuels/sixdegrees/pkg/graph"
	"github.com/matzehuels/sixdegrees/pkg/graph/traverse"
	"github.com/matzehuels/sixdegrees/pkg/observability"
)

// DefaultWorkers bounds the goroutines used to rank centers.
const DefaultWorkers = 4

// Game answers queries over a co-appearance graph.
//
// The graph must not be modified once the game is created. Game holds no
// per-player state, so multiple goroutines can safely run queries against
// the same Game with different sessions.
type Game struct {
	Graph   *costar.Graph
	Workers int
	Logger  *log.Logger
}

// New creates a game over g.
// If workers is not positive, DefaultWorkers is used.
// If logger is nil, log output is discarded.
func New(g *costar.Graph, workers int, logger *log.Logger) *Game {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Game{Graph: g, Workers: workers, Logger: logger}
}

// CenterReport describes a freshly chosen center.
type CenterReport struct {
	Center  string
	Reach   int     // actors connected to the center, the center included
	Average float64 // mean separation of the other connected actors
	Alone   bool    // the center has no co-stars; Average is meaningless
}

// NewSession starts a session centered on center.
func (gm *Game) NewSession(ctx context.Context, center string) (*Session, *CenterReport, error) {
	s := newSession()
	report, err := gm.SetCenter(ctx, s, center)
	if err != nil {
		return nil, nil, err
	}
	gm.Logger.Debug("session started", "id", s.ID, "center", center)
	return s, report, nil
}

// SetCenter makes name the center of s and rebuilds its path tree.
// On failure s keeps its previous center.
func (gm *Game) SetCenter(ctx context.Context, s *Session, name string) (report *CenterReport, err error) {
	defer track(ctx, "center", name)(&err)

	if err := errors.ValidateActorName(name); err != nil {
		return nil, err
	}
	if !gm.Graph.HasVertex(name) {
		return nil, errors.New(errors.ErrCodeUnknownVertex, "%s is not in the graph, try an actor who is", name)
	}

	start := time.Now()
	tree, err := traverse.BFS(gm.Graph, name)
	if err != nil {
		return nil, classify(err, "cannot center on %s", name)
	}
	report = &CenterReport{Center: name, Reach: tree.NumVertices()}
	report.Average, err = traverse.AverageSeparation(tree, name)
	switch {
	case stderrors.Is(err, traverse.ErrNoOtherVertices):
		report.Alone = true
	case err != nil:
		return nil, classify(err, "average separation of %s", name)
	}

	s.center, s.tree = name, tree
	gm.Logger.Debug("center changed", "session", s.ID, "center", name, "reach", report.Reach, "duration", time.Since(start))
	return report, nil
}

// Step is one link of a path: Actor appeared in Movies with CoStar.
type Step struct {
	Actor  string
	CoStar string
	Movies costar.Movies
}

// PathReport is the chain of co-stars from an actor to the center.
type PathReport struct {
	Actor  string
	Center string
	Number int // the actor's separation from the center
	Steps  []Step
}

// Path finds how name connects to the current center of s.
func (gm *Game) Path(ctx context.Context, s *Session, name string) (report *PathReport, err error) {
	defer track(ctx, "path", s.center)(&err)

	if err := errors.ValidateActorName(name); err != nil {
		return nil, err
	}
	if !gm.Graph.HasVertex(name) {
		return nil, errors.New(errors.ErrCodeUnknownVertex, "%s is not in the graph, try an actor who is", name)
	}
	if !s.tree.HasVertex(name) {
		return nil, errors.New(errors.ErrCodeNoPath, "there is no path from %s to %s", name, s.center)
	}

	path, err := traverse.Path(s.tree, name)
	if err != nil {
		return nil, classify(err, "path from %s", name)
	}
	report = &PathReport{Actor: name, Center: s.center, Number: len(path) - 1}
	for i := 0; i+1 < len(path); i++ {
		movies, err := s.tree.Label(path[i], path[i+1])
		if err != nil {
			return nil, classify(err, "path from %s", name)
		}
		report.Steps = append(report.Steps, Step{Actor: path[i], CoStar: path[i+1], Movies: movies})
	}
	return report, nil
}

// Separated is an actor and its separation from the center.
type Separated struct {
	Actor      string
	Separation int
}

// Separation lists the actors connected to the center whose separation lies
// in [low, high], closest first. Actors at the same separation keep the
// order in which the path tree discovered them.
func (gm *Game) Separation(ctx context.Context, s *Session, low, high int) (out []Separated, err error) {
	defer track(ctx, "separation", s.center)(&err)

	if err := errors.ValidateRange(low, high); err != nil {
		return nil, err
	}
	depths, err := traverse.Depths(s.tree, s.center)
	if err != nil {
		return nil, classify(err, "separations from %s", s.center)
	}
	out = []Separated{}
	for _, v := range s.tree.Vertices() {
		if d := depths[v]; low <= d && d <= high {
			out = append(out, Separated{Actor: v, Separation: d})
		}
	}
	slices.SortStableFunc(out, func(a, b Separated) int { return a.Separation - b.Separation })
	return out, nil
}

// Connected is an actor and its number of distinct co-stars.
type Connected struct {
	Actor  string
	Degree int
}

// Degree lists the actors whose number of co-stars lies in [low, high],
// most connected first. The whole graph is considered, not only actors
// connected to the center.
func (gm *Game) Degree(ctx context.Context, s *Session, low, high int) (out []Connected, err error) {
	defer track(ctx, "degree", s.center)(&err)

	if err := errors.ValidateRange(low, high); err != nil {
		return nil, err
	}
	out = []Connected{}
	for _, v := range traverse.VerticesByInDegree(gm.Graph) {
		d, err := gm.Graph.InDegree(v)
		if err != nil {
			return nil, classify(err, "degree of %s", v)
		}
		if low <= d && d <= high {
			out = append(out, Connected{Actor: v, Degree: d})
		}
	}
	return out, nil
}

// Missing lists the actors with no path to the current center, in graph
// order.
func (gm *Game) Missing(ctx context.Context, s *Session) (out []string, err error) {
	defer track(ctx, "missing", s.center)(&err)
	return traverse.Missing(gm.Graph, s.tree), nil
}

// Center is a candidate center with its average separation.
type Center = traverse.Ranked[string]

// BestCenters ranks every actor connected to the current center by the
// average separation it would have as the center itself.
//
// For n > 0 the n best centers are returned, lowest average first. For n < 0
// the |n| worst are returned, highest average first. When |n| exceeds the
// number of candidates all of them are returned. Candidates without co-stars
// are never ranked.
func (gm *Game) BestCenters(ctx context.Context, s *Session, n int) (out []Center, err error) {
	defer track(ctx, "centers", s.center)(&err)

	if n == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "number of centers must not be zero")
	}

	start := time.Now()
	ranked, err := traverse.RankCenters(ctx, gm.Graph, s.tree.Vertices(), gm.Workers)
	if err != nil {
		return nil, classify(err, "rank centers")
	}
	gm.Logger.Debug("ranked centers", "candidates", len(ranked), "workers", gm.Workers, "duration", time.Since(start))

	if n < 0 {
		slices.Reverse(ranked)
		n = -n
	}
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Summary describes the size of the graph the game is played on.
func (gm *Game) Summary() costar.Summary {
	return costar.Summarize(gm.Graph)
}

// classify turns an error from the graph packages into a coded error.
// Context errors pass through unchanged.
func classify(err error, format string, args ...any) error {
	var code errors.Code
	switch {
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return err
	case stderrors.Is(err, graph.ErrUnknownVertex):
		code = errors.ErrCodeUnknownVertex
	case stderrors.Is(err, graph.ErrNoSuchEdge):
		code = errors.ErrCodeNoSuchEdge
	case stderrors.Is(err, traverse.ErrNoSuchSource):
		code = errors.ErrCodeNoSuchSource
	case stderrors.Is(err, traverse.ErrNoOtherVertices):
		code = errors.ErrCodeNoOtherVertices
	default:
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, format, args...)
}

// track reports a query to the registered observability hooks. The returned
// function must be deferred with a pointer to the query's error result.
func track(ctx context.Context, kind, center string) func(*error) {
	hooks := observability.Query()
	hooks.OnQueryStart(ctx, kind, center)
	start := time.Now()
	return func(errp *error) {
		hooks.OnQueryComplete(ctx, kind, center, time.Since(start), *errp)
	}
}
