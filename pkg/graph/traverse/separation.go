package traverse

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

// Depths returns the edge-count distance from root of every vertex that
// reaches root in tree.
//
// Children are found through in-neighbors, since tree edges point toward the
// root. The walk is an explicit level-order traversal, so deep trees do not
// grow the call stack.
func Depths[V comparable, E any](tree *graph.Graph[V, E], root V) (map[V]int, error) {
	if !tree.HasVertex(root) {
		return nil, fmt.Errorf("%w: %v", ErrNoSuchSource, root)
	}

	depth := map[V]int{root: 0}
	level := []V{root}
	for d := 1; len(level) > 0; d++ {
		var next []V
		for _, v := range level {
			children, err := tree.InNeighbors(v)
			if err != nil {
				return nil, err
			}
			for _, c := range children {
				if _, seen := depth[c]; seen {
					continue
				}
				depth[c] = d
				next = append(next, c)
			}
		}
		level = next
	}
	return depth, nil
}

// AverageSeparation returns the mean distance from root over all non-root
// vertices of tree: the sum of all depths divided by the vertex count minus one.
//
// A tree holding only its root yields ErrNoOtherVertices rather than a
// division by zero.
func AverageSeparation[V comparable, E any](tree *graph.Graph[V, E], root V) (float64, error) {
	depths, err := Depths(tree, root)
	if err != nil {
		return 0, err
	}
	n := tree.NumVertices()
	if n <= 1 {
		return 0, fmt.Errorf("%w: %v", ErrNoOtherVertices, root)
	}

	total := 0
	for _, d := range depths {
		total += d
	}
	return float64(total) / float64(n-1), nil
}

// VerticesByInDegree returns all vertices of g ordered by in-degree, highest
// first. Vertices with equal in-degree keep their insertion order.
func VerticesByInDegree[V comparable, E any](g *graph.Graph[V, E]) []V {
	vs := g.Vertices()
	degree := make(map[V]int, len(vs))
	for _, v := range vs {
		degree[v], _ = g.InDegree(v)
	}
	slices.SortStableFunc(vs, func(a, b V) int {
		return cmp.Compare(degree[b], degree[a])
	})
	return vs
}
