package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/graph"
)

type document struct {
	Actors []string `json:"actors"`
	Links  []link   `json:"links"`
}

type link struct {
	A      string   `json:"a"`
	B      string   `json:"b"`
	Movies []string `json:"movies"`
}

// WriteJSON encodes a co-appearance graph as JSON and writes it to w.
// Each undirected link is emitted once, from the actor inserted first.
// The output can be re-imported with [ReadJSON].
func WriteJSON(g *costar.Graph, w io.Writer) error {
	actors := g.Vertices()
	pos := graph.PosMap(actors)
	out := document{Actors: actors, Links: []link{}}

	for _, a := range actors {
		neighbors, err := g.OutNeighbors(a)
		if err != nil {
			return err
		}
		for _, b := range neighbors {
			if pos[b] <= pos[a] {
				continue
			}
			movies, err := g.Label(a, b)
			if err != nil {
				return err
			}
			out.Links = append(out.Links, link{A: a, B: b, Movies: movies})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a co-appearance graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *costar.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
