package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/matzehuels/sixdegrees/pkg/costar"
	"github.com/matzehuels/sixdegrees/pkg/errors"
)

// ReadJSON decodes a JSON co-appearance graph from r.
//
// The input must be an object with an "actors" array of names and a "links"
// array of {"a", "b", "movies"} objects. Links must reference listed actors;
// a link to an unknown actor fails with INVALID_FORMAT. ReadJSON does not
// close r.
func ReadJSON(r io.Reader) (*costar.Graph, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode graph JSON")
	}

	g := costar.NewGraph()
	for _, a := range data.Actors {
		g.InsertVertex(a)
	}
	for i, l := range data.Links {
		movies := costar.Movies(slices.Clone(l.Movies))
		if err := g.InsertUndirected(l.A, l.B, movies); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "link %d (%s, %s)", i, l.A, l.B)
		}
	}
	return g, nil
}

// ImportJSON reads a JSON file at path and returns the decoded graph.
// A missing file is reported with FILE_NOT_FOUND.
func ImportJSON(path string) (*costar.Graph, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "graph file %s does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
