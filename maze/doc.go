// Package maze models a maze as rooms joined by walls and carves it with a
// randomized minimum spanning tree.
//
// # Carving
//
// A maze is "perfect" when every room is reachable from every other room along
// exactly one route. Knocking down the walls of a spanning tree of the room graph
// gives exactly that. KruskalCarver picks a random spanning tree by giving
// every wall an independent random distance, running Kruskal
// (package wgraph) over (rooms, walls), and handing back the tree edges as the
// walls to remove.
//
// The random distances are a temporary override: every wall's distance is reset
// to its original value before WallsToRemove returns, on success and on error.
//
// # Building blocks
//
//   - Room, Wall, Maze: entities; *Wall implements wgraph.Edge[Room].
//   - NewGrid: rows×cols orthogonal grid in row-major order.
//   - KruskalCarver: Carver implementation; seed with WithSeed for repeatable mazes.
//   - Passages, Solve: graph of carved passages and the shortest route through it.
//   - Render: ASCII drawing with an optional highlighted route.
//
// For a connected room graph the carved set has exactly len(Rooms)-1 walls.
package maze
