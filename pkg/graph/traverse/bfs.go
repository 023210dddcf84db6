package traverse

import (
	"errors"
	"fmt"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

var (
	// ErrNoSuchSource is returned when a traversal is rooted at a vertex that
	// is not in the graph.
	ErrNoSuchSource = errors.New("no such source vertex")

	// ErrNoOtherVertices is returned by [AverageSeparation] when the tree
	// contains only its root, leaving nothing to average over.
	ErrNoOtherVertices = errors.New("no other vertices in tree")

	// ErrMalformedTree is returned by [Path] when the input is not a path tree
	// (a vertex with several parents, or a walk that never reaches a root).
	ErrMalformedTree = errors.New("malformed path tree")
)

// BFS builds the shortest-path tree of g rooted at source.
//
// The returned tree contains source plus every vertex reachable from it.
// Each non-root vertex n has a single edge n→p, where p is the vertex that
// discovered n, labeled with the label of g's edge p→n.
//
// # Algorithm
//
//  1. Seed a FIFO queue and the tree with source
//  2. Dequeue cur; for each out-neighbor n not yet in the tree, add n,
//     link n→cur and enqueue n
//  3. Repeat until the queue is empty
//
// Each vertex is enqueued at most once, so BFS runs in O(V + E).
func BFS[V comparable, E any](g *graph.Graph[V, E], source V) (*graph.Graph[V, E], error) {
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchSource, source)
	}

	tree := graph.New[V, E]()
	tree.InsertVertex(source)
	queue := []V{source}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighbors, err := g.OutNeighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, n := range neighbors {
			if tree.HasVertex(n) {
				continue
			}
			label, err := g.Label(cur, n)
			if err != nil {
				return nil, err
			}
			tree.InsertVertex(n)
			if err := tree.InsertDirected(n, cur, label); err != nil {
				return nil, err
			}
			queue = append(queue, n)
		}
	}
	return tree, nil
}

// Missing returns the vertices of g that are absent from tree, in g's order.
// For a tree built by BFS these are exactly the vertices unreachable from its
// root. The result is empty, never nil, when nothing is missing.
func Missing[V comparable, E any](g, tree *graph.Graph[V, E]) []V {
	missing := []V{}
	if g.NumVertices() == 0 {
		return missing
	}
	for _, v := range g.Vertices() {
		if !tree.HasVertex(v) {
			missing = append(missing, v)
		}
	}
	return missing
}
