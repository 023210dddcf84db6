// Package game answers "Six Degrees of Kevin Bacon" queries over a loaded
// co-appearance graph.
//
// A [Game] wraps a read-only [costar.Graph] and may be shared by any number
// of [Session] values. A session carries the state a player changes: the
// current center of the acting universe and the shortest-path tree rooted at
// it. The tree is rebuilt only when the center changes; every other query
// reads it.
//
// # Queries
//
// Each query has a one-letter command in the interactive game, parsed by
// [ParseCommand]:
//
//	c <n>           best (n > 0) or worst (n < 0) centers by average separation
//	d <low> <high>  actors whose number of co-stars is in [low, high]
//	i               actors with no path to the center
//	p <name>        path from <name> to the center
//	s <low> <high>  actors whose separation from the center is in [low, high]
//	u <name>        make <name> the center
//	h               help
//	q               quit
//
// Failures are returned as coded errors from the errors package. A failed
// query never changes the graph or the session, so the caller reports the
// message and keeps going.
package game
