package traverse_test

import (
	"fmt"

	"github.com/matzehuels/sixdegrees/pkg/graph"
	"github.com/matzehuels/sixdegrees/pkg/graph/traverse"
)

func ExampleBFS() {
	g := graph.New[string, string]()
	for _, v := range []string{"Alice", "Bob", "Charlie", "Dartmouth", "Nobody"} {
		g.InsertVertex(v)
	}
	_ = g.InsertUndirected("Alice", "Bob", "A movie")
	_ = g.InsertUndirected("Alice", "Charlie", "D movie")
	_ = g.InsertUndirected("Charlie", "Dartmouth", "B movie")

	tree, _ := traverse.BFS(g, "Alice")
	path, _ := traverse.Path(tree, "Dartmouth")
	avg, _ := traverse.AverageSeparation(tree, "Alice")

	fmt.Println("Path:", path)
	fmt.Println("Missing:", traverse.Missing(g, tree))
	fmt.Printf("Average: %.2f\n", avg)
	// Output:
	// Path: [Dartmouth Charlie Alice]
	// Missing: [Nobody]
	// Average: 1.33
}
