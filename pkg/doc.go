// Package pkg provides the libraries behind the sixdegrees game.
//
// # Overview
//
// Sixdegrees answers "Six Degrees of Kevin Bacon" questions over a co-star
// graph: two actors are linked when they appeared in the same movie, and an
// actor's number is the length of the shortest chain of such links to the
// current center of the universe.
//
// # Architecture
//
// The typical data flow:
//
//	actors.txt / movies.txt / movie-actors.txt
//	         ↓
//	    [io] package (parse tables, build the co-star graph)
//	         ↓
//	    [costar] package (graph of actors labeled with shared movies)
//	         ↓
//	    [graph/traverse] package (BFS shortest path tree, separation stats)
//	         ↓
//	    [game] package (sessions and queries against a center)
//
// # Quick Start
//
//	import (
//	    "context"
//
//	    "github.com/matzehuels/sixdegrees/pkg/game"
//	    sdio "github.com/matzehuels/sixdegrees/pkg/io"
//	)
//
//	g, _, _ := sdio.Load(ctx, sdio.Sources{
//	    Actors:  "actors.txt",
//	    Movies:  "movies.txt",
//	    Credits: "movie-actors.txt",
//	})
//	gm := game.New(g, 0, nil)
//	s, _, _ := gm.NewSession(ctx, "Kevin Bacon")
//	r, _ := gm.Path(ctx, s, "Tom Hanks")
//	fmt.Println(r.Number)
//
// # Main Packages
//
//   - [graph]: generic insertion-ordered directed graph with edge labels
//   - [graph/traverse]: BFS, path reconstruction, depths and center ranking
//   - [costar]: the actor graph type and its edge label
//   - [io]: pipe-delimited table loader plus JSON import and export
//   - [game]: the query facade used by the CLI
//   - [config]: TOML configuration for data paths and defaults
//   - [render/nodelink]: Graphviz rendering of shortest path trees
//   - [observability]: hooks for query and load instrumentation
//   - [errors]: coded errors with user-facing messages
//   - [buildinfo]: version metadata injected at build time
//
// # Testing
//
//	go test ./...                        # All packages
//	go test ./pkg/graph/...              # Specific package
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/graph
// [graph/traverse]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/graph/traverse
// [costar]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/costar
// [io]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/io
// [game]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/game
// [config]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/config
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/render/nodelink
// [observability]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/sixdegrees/pkg/buildinfo
package pkg
