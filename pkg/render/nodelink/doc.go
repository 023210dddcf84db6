// Package nodelink renders shortest-path trees as node-link diagrams.
//
// # Overview
//
// A path tree produced for the current center is drawn with Graphviz: each
// actor is a box and each tree edge is an arrow from an actor to the co-star
// that brings it one step closer to the center. Edges are labeled with the
// movies the two actors share. The center is drawn at the top and filled.
//
// # Usage
//
// Convert a tree to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(session.Tree(), nodelink.Options{MaxMovies: 2})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - MaxMovies: Caps the titles shown per edge; the rest are summarized
//   - Highlight: Actors drawn emphasized, for example one queried path
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. No Graphviz installation is required.
package nodelink
