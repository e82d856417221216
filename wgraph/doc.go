// Package wgraph implements a small, immutable, undirected weighted graph with two
// classic algorithms: Kruskal's minimum spanning tree and single-pair Dijkstra
// shortest path.
//
// # Model
//
//   - Vertices are any comparable type V. Equality is Go's == on values, so two
//     equal-but-distinct values denote the same vertex.
//   - Edges are any type E implementing Edge[V]: two endpoints, a non-negative
//     float64 weight and OtherVertex. Parallel edges and self-loops are allowed.
//   - A Graph is built once by New (or NewFromSets) and never mutated afterwards.
//     The constructor validates every edge and derives an adjacency view
//     vertex → incident edges; a self-loop appears twice under its vertex.
//
// # Algorithms
//
//   - MinimumSpanningTree() []E
//     Kruskal: stable sort of a private edge copy by weight, union-find over the
//     vertices (package disjointset), take each edge joining two different sets.
//     For a disconnected graph the result is a minimum spanning forest; use
//     SpanningTree to have that reported as ErrDisconnected instead.
//
//   - ShortestPath(start, end) ([]E, error)
//     Dijkstra with a lazy-deletion min-heap keyed by the full-precision tentative
//     distance. Stale heap entries are skipped by checking the unsettled set on pop.
//     The search stops as soon as end is settled and the path is rebuilt from the
//     predecessor chain, start → end.
//
// # Errors
//
// ErrInvalidArgument wraps every input rejection (ErrNilVertex, ErrNilEdge,
// ErrNegativeWeight, ErrUnknownVertex, ErrDuplicateVertex). ErrNoPath is a distinct
// condition: the input is valid but end is unreachable from start.
//
// # Complexity
//
//   - New:                 O(V + E)
//   - MinimumSpanningTree: O(E log E + E·α(V))
//   - ShortestPath:        O((V + E) log E)
package wgraph
