// Package io loads co-appearance graphs from the pipe-delimited movie data
// files and converts them to and from a JSON interchange format.
//
// # Data Files
//
// Three correlated tables describe the movie world, one record per line:
//
//	actors.txt        <actor id>|<actor name>
//	movies.txt        <movie id>|<movie title>
//	movie-actors.txt  <movie id>|<actor id>
//
// Blank lines are ignored. A non-blank line without a "|" separator is
// rejected with an INVALID_FORMAT error naming the file line.
//
// [Load] reads all three files and [Build] turns the records into a
// [costar.Graph]: every actor becomes a vertex and every pair of distinct
// actors credited in the same movie is joined by an undirected edge whose
// label collects all the titles they share. Credits that reference an
// unknown movie or actor are skipped and counted in the [LoadReport].
//
// # JSON Format
//
// A loaded graph can be exported once and re-imported much faster than the
// tables can be rebuilt:
//
//	{
//	  "actors": ["Alice", "Bob", "Kevin Bacon"],
//	  "links": [
//	    {"a": "Alice", "b": "Kevin Bacon", "movies": ["A movie", "E movie"]},
//	    {"a": "Bob", "b": "Alice", "movies": ["A movie"]}
//	  ]
//	}
//
// Each undirected link is written once. Actor order is preserved, so a
// round trip yields a graph that traverses identically.
//
// [costar.Graph]: github.com/matzehuels/sixdegrees/pkg/costar.Graph
package io
