// Package costar models the co-appearance graph: actors are vertices and
// every pair of actors credited in the same movie is joined by an
// undirected edge labeled with all the movies they share.
package costar

import (
	"slices"
	"strings"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

// DefaultCenter is the traditional center of the acting universe.
const DefaultCenter = "Kevin Bacon"

// Movies is the label of a co-star edge: the titles two actors share, in the
// order they were discovered, without duplicates.
//
// Movies values are treated as immutable. [Movies.With] returns a new slice,
// so the two directions of an undirected edge never observe each other's
// later updates through a shared backing array.
type Movies []string

// With returns a copy of m with title appended, or m itself if the title is
// already present.
func (m Movies) With(title string) Movies {
	if m.Contains(title) {
		return m
	}
	out := make(Movies, len(m), len(m)+1)
	copy(out, m)
	return append(out, title)
}

// Contains reports whether title is one of the shared movies.
func (m Movies) Contains(title string) bool { return slices.Contains(m, title) }

// String joins the titles with ", ".
func (m Movies) String() string { return strings.Join(m, ", ") }

// Graph is the actor co-appearance graph.
type Graph = graph.Graph[string, Movies]

// NewGraph creates an empty co-appearance graph.
func NewGraph() *Graph { return graph.New[string, Movies]() }

// Link records that actors a and b both appear in title. The movie is merged
// into the existing label of the a–b edge, or a new undirected edge is
// created. Both actors must already be vertices of g. Linking an actor to
// themselves is a no-op.
func Link(g *Graph, a, b, title string) error {
	if a == b {
		return nil
	}
	var shared Movies
	if g.HasEdge(a, b) {
		label, err := g.Label(a, b)
		if err != nil {
			return err
		}
		shared = label
	}
	return g.InsertUndirected(a, b, shared.With(title))
}

// Summary describes the size of a co-appearance graph.
type Summary struct {
	Actors int // vertices
	Pairs  int // undirected co-star links
}

// Summarize counts actors and co-star pairs in g.
func Summarize(g *Graph) Summary {
	return Summary{Actors: g.NumVertices(), Pairs: g.NumEdges() / 2}
}
