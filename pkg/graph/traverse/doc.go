// Package traverse builds breadth-first shortest-path trees over a
// [graph.Graph] and answers the separation queries derived from them.
//
// # Overview
//
// Every query starts from a path tree: a fresh directed graph in which each
// reachable vertex points at the neighbor it was discovered from, so edges
// lead toward the root. The root has out-degree 0 and every other vertex has
// out-degree exactly 1. Vertices unreachable from the root are absent.
//
// # Path Trees
//
// [BFS] explores out-neighbors level by level. The first parent to discover
// a vertex wins, which yields a minimum edge-count path for every vertex.
// Ties between equally short parents follow neighbor iteration order, so the
// tree is reproducible for a given graph.
//
// # Derived Queries
//
//   - [Path]: walk from a vertex back to the root
//   - [Missing]: vertices of the full graph that the tree never reached
//   - [Depths]: edge-count distance of every tree vertex from the root
//   - [AverageSeparation]: mean depth over all non-root vertices
//   - [VerticesByInDegree]: vertices ordered by in-degree, highest first
//   - [RankCenters]: candidates ordered by their own average separation
//
// # Errors
//
// [BFS] fails with [ErrNoSuchSource] for an absent source.
// [AverageSeparation] fails with [ErrNoOtherVertices] when the tree holds
// only its root. [Path] fails with [ErrMalformedTree] when the walk does not
// reach a root within the tree size.
//
// # Concurrency
//
// All functions only read their input graphs. [RankCenters] relies on this to
// build many trees concurrently over one shared graph.
package traverse
