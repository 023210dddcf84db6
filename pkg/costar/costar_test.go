package costar

import (
	"errors"
	"slices"
	"testing"

	"github.com/matzehuels/sixdegrees/pkg/graph"
)

func TestMoviesWith(t *testing.T) {
	var m Movies
	a := m.With("A movie")
	b := a.With("E movie")
	c := b.With("A movie")

	if !slices.Equal(a, Movies{"A movie"}) {
		t.Errorf("a = %v", a)
	}
	if !slices.Equal(b, Movies{"A movie", "E movie"}) {
		t.Errorf("b = %v", b)
	}
	if !slices.Equal(c, b) {
		t.Errorf("adding a duplicate changed the set: %v", c)
	}
	if len(a) != 1 {
		t.Errorf("With mutated its receiver: %v", a)
	}
	if got := b.String(); got != "A movie, E movie" {
		t.Errorf("String() = %q", got)
	}
}

func TestLink(t *testing.T) {
	g := NewGraph()
	for _, v := range []string{"Alice", "Kevin Bacon", "Bob"} {
		g.InsertVertex(v)
	}

	if err := Link(g, "Alice", "Kevin Bacon", "A movie"); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := Link(g, "Kevin Bacon", "Alice", "E movie"); err != nil {
		t.Fatalf("Link: %v", err)
	}
	if err := Link(g, "Alice", "Kevin Bacon", "A movie"); err != nil {
		t.Fatalf("Link: %v", err)
	}

	want := Movies{"A movie", "E movie"}
	for _, pair := range [][2]string{{"Alice", "Kevin Bacon"}, {"Kevin Bacon", "Alice"}} {
		got, err := g.Label(pair[0], pair[1])
		if err != nil {
			t.Fatalf("Label(%v): %v", pair, err)
		}
		if !slices.Equal(got, want) {
			t.Errorf("Label(%v) = %v, want %v", pair, got, want)
		}
	}

	if err := Link(g, "Bob", "Bob", "Solo"); err != nil {
		t.Errorf("self link error = %v", err)
	}
	if g.HasEdge("Bob", "Bob") {
		t.Error("self link should not create an edge")
	}

	if err := Link(g, "Bob", "Ghost", "X"); !errors.Is(err, graph.ErrUnknownVertex) {
		t.Errorf("Link to unknown actor error = %v", err)
	}

	if s := Summarize(g); s.Actors != 3 || s.Pairs != 1 {
		t.Errorf("Summarize() = %+v, want 3 actors / 1 pair", s)
	}
}
