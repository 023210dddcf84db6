package traverse

import (
	"fmt"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

// Path returns the vertices from v to the root of tree, both inclusive.
//
// If v is not in the tree the result is empty and the error is nil: callers
// are expected to check reachability first, for example with [Missing].
// The walk follows the single outgoing edge of each vertex and is bounded by
// the tree size, so it terminates even on malformed input, returning
// ErrMalformedTree instead of looping.
func Path[V comparable, E any](tree *graph.Graph[V, E], v V) ([]V, error) {
	if !tree.HasVertex(v) {
		return []V{}, nil
	}

	limit := tree.NumVertices()
	path := []V{v}
	for cur := v; ; {
		out, err := tree.OutNeighbors(cur)
		if err != nil {
			return nil, err
		}
		switch len(out) {
		case 0:
			return path, nil
		case 1:
		default:
			return nil, fmt.Errorf("%w: %v has %d parents", ErrMalformedTree, cur, len(out))
		}
		if len(path) == limit {
			return nil, fmt.Errorf("%w: no root reached from %v", ErrMalformedTree, v)
		}
		cur = out[0]
		path = append(path, cur)
	}
}
