// Package mazegraph is a small weighted-graph engine and the maze generator
// built on it.
//
// Packages:
//
//	disjointset/ : union-find over comparable items (path compression, union by rank)
//	wgraph/      : immutable undirected weighted graph, Kruskal MST, Dijkstra shortest path
//	maze/        : grid mazes, randomized Kruskal carving, solving and ASCII rendering
//
// A maze is generated by reducing it to a graph problem: rooms are vertices,
// walls are edges, and the walls of a random spanning tree are knocked down.
//
//	m, _ := maze.NewGrid(8, 8)
//	removed, _ := maze.NewKruskalCarver(maze.WithSeed(1)).WallsToRemove(m)
//	fmt.Print(maze.Render(m, removed, maze.DefaultRenderOptions()))
//
// The mazegen command (cmd/mazegen) wraps the same steps in a CLI.
package mazegraph
