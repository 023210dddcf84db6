package traverse

import (
	"cmp"
	"context"
	"errors"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

// Ranked pairs a vertex with the average separation of the tree rooted at it.
type Ranked[V comparable] struct {
	Vertex  V
	Average float64
	Reach   int // vertices in the vertex's own tree, itself included
}

// RankCenters computes the average separation of each candidate as the root
// of its own BFS tree and returns them ordered from best (lowest average) to
// worst. Equal averages keep candidate order.
//
// Candidates that reach no other vertex are left out. Trees are built by at
// most workers goroutines sharing g read-only; workers <= 0 means GOMAXPROCS.
// The first failure, or cancellation of ctx, aborts the ranking.
func RankCenters[V comparable, E any](ctx context.Context, g *graph.Graph[V, E], candidates []V, workers int) ([]Ranked[V], error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*Ranked[V], len(candidates))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, c := range candidates {
		i, c := i, c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			tree, err := BFS(g, c)
			if err != nil {
				return err
			}
			avg, err := AverageSeparation(tree, c)
			if errors.Is(err, ErrNoOtherVertices) {
				return nil
			}
			if err != nil {
				return err
			}
			results[i] = &Ranked[V]{Vertex: c, Average: avg, Reach: tree.NumVertices()}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	ranked := make([]Ranked[V], 0, len(results))
	for _, r := range results {
		if r != nil {
			ranked = append(ranked, *r)
		}
	}
	slices.SortStableFunc(ranked, func(a, b Ranked[V]) int {
		return cmp.Compare(a.Average, b.Average)
	})
	return ranked, nil
}
