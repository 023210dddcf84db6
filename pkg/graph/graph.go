package graph

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrUnknownVertex is returned when an operation references a vertex
	// that is not in the graph and presence is required.
	ErrUnknownVertex = errors.New("unknown vertex")

	// ErrNoSuchEdge is returned by [Graph.Label] when no edge u→v exists.
	ErrNoSuchEdge = errors.New("no such edge")
)

// adjacency holds the edges incident to a single vertex.
// out and in keep first-insertion order; labels is keyed by the target.
type adjacency[V comparable, E any] struct {
	out    []V
	in     []V
	labels map[V]E
}

// Graph is a labeled directed graph with insertion-ordered vertices.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent mutation without external synchronization.
type Graph[V comparable, E any] struct {
	order []V
	adj   map[V]*adjacency[V, E]
	edges int
}

// New creates an empty graph.
func New[V comparable, E any]() *Graph[V, E] {
	return &Graph[V, E]{adj: make(map[V]*adjacency[V, E])}
}

// InsertVertex adds v to the graph. It is a no-op if v is already present.
func (g *Graph[V, E]) InsertVertex(v V) {
	if _, ok := g.adj[v]; ok {
		return
	}
	g.adj[v] = &adjacency[V, E]{
		out:    []V{},
		in:     []V{},
		labels: make(map[V]E),
	}
	g.order = append(g.order, v)
}

// InsertDirected adds the edge u→v with the given label, overwriting the
// label if the edge already exists. Both endpoints must already be present;
// otherwise ErrUnknownVertex is returned and the graph is left unchanged.
func (g *Graph[V, E]) InsertDirected(u, v V, label E) error {
	from, ok := g.adj[u]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, u)
	}
	to, ok := g.adj[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	if _, exists := from.labels[v]; !exists {
		from.out = append(from.out, v)
		to.in = append(to.in, u)
		g.edges++
	}
	from.labels[v] = label
	return nil
}

// InsertUndirected adds u→v and v→u, both carrying label.
// Both endpoints are checked before either edge is written.
func (g *Graph[V, E]) InsertUndirected(u, v V, label E) error {
	if !g.HasVertex(u) {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, u)
	}
	if !g.HasVertex(v) {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	if err := g.InsertDirected(u, v, label); err != nil {
		return err
	}
	return g.InsertDirected(v, u, label)
}

// HasVertex reports whether v is in the graph.
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.adj[v]
	return ok
}

// HasEdge reports whether the edge u→v exists.
func (g *Graph[V, E]) HasEdge(u, v V) bool {
	a, ok := g.adj[u]
	if !ok {
		return false
	}
	_, ok = a.labels[v]
	return ok
}

// Label returns the label of the edge u→v, or ErrNoSuchEdge if it does not exist.
func (g *Graph[V, E]) Label(u, v V) (E, error) {
	if a, ok := g.adj[u]; ok {
		if l, ok := a.labels[v]; ok {
			return l, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("%w: %v -> %v", ErrNoSuchEdge, u, v)
}

// Vertices returns all vertices in insertion order.
// The returned slice is a copy and may be modified freely.
func (g *Graph[V, E]) Vertices() []V { return slices.Clone(g.order) }

// OutNeighbors returns the targets of edges leaving v, in edge insertion order.
// The result is never nil for a present vertex.
func (g *Graph[V, E]) OutNeighbors(v V) ([]V, error) {
	a, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	return slices.Clone(a.out), nil
}

// InNeighbors returns the sources of edges entering v, in edge insertion order.
// The result is never nil for a present vertex.
func (g *Graph[V, E]) InNeighbors(v V) ([]V, error) {
	a, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	return slices.Clone(a.in), nil
}

// OutDegree returns the number of edges leaving v.
func (g *Graph[V, E]) OutDegree(v V) (int, error) {
	a, ok := g.adj[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	return len(a.out), nil
}

// InDegree returns the number of edges entering v.
func (g *Graph[V, E]) InDegree(v V) (int, error) {
	a, ok := g.adj[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	return len(a.in), nil
}

// NumVertices returns the number of vertices.
func (g *Graph[V, E]) NumVertices() int { return len(g.order) }

// NumEdges returns the number of directed edges. An undirected insertion
// between two distinct vertices counts twice.
func (g *Graph[V, E]) NumEdges() int { return g.edges }

// PosMap maps each vertex to its index in vs.
// It is used to turn an ordering into a stable tie-breaker.
func PosMap[V comparable](vs []V) map[V]int {
	m := make(map[V]int, len(vs))
	for i, v := range vs {
		m[v] = i
	}
	return m
}
