// Package graph provides a generic labeled directed graph used as the
// co-appearance graph and as the shortest-path trees derived from it.
//
// # Overview
//
// A [Graph] maps vertex identities of any comparable type V to adjacency
// information. Each ordered pair (u, v) carries at most one edge label of
// type E. Undirected relationships are stored as two mirrored directed edges
// sharing the same label value.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.InsertVertex], and add
// edges with [Graph.InsertDirected] or [Graph.InsertUndirected]. Both
// endpoints must already exist:
//
//	g := graph.New[string, string]()
//	g.InsertVertex("Alice")
//	g.InsertVertex("Bob")
//	_ = g.InsertUndirected("Alice", "Bob", "A movie")
//
// Query the structure with [Graph.OutNeighbors], [Graph.InNeighbors],
// [Graph.OutDegree], [Graph.InDegree] and [Graph.Label]. Lookups of absent
// vertices fail with [ErrUnknownVertex]; label lookups of absent edges fail
// with [ErrNoSuchEdge]. Predicates ([Graph.HasVertex], [Graph.HasEdge])
// never fail.
//
// # Ordering
//
// Vertices iterate in insertion order and neighbors iterate in the order
// their edge was first inserted. Overwriting a label keeps the original
// position. This makes every traversal built on top of the graph
// reproducible across runs on the same input.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. Once loading is
// finished the graph can be shared by any number of goroutines as long as
// none of them inserts vertices or edges.
//
// # Related Packages
//
// The [traverse] subpackage builds breadth-first shortest-path trees and
// the queries derived from them.
//
// [traverse]: github.com/matzehuels/sixdegrees/pkg/graph/traverse
package graph
