package wgraph

import "math"

// Graph is an immutable undirected weighted graph over vertices V and edges E.
// It may contain parallel edges, self-loops and several connected components.
type Graph[V comparable, E Edge[V]] struct {
	vertices  []V       // private copy, input order
	edges     []E       // private copy, input order
	adjacency map[V][]E // vertex → incident edges; both endpoints recorded
}

// New builds a Graph from vertex and edge lists. Neither input slice is retained
// or modified.
//
// Validation (first failure wins, nothing is constructed):
//   - nil vertex            → ErrNilVertex
//   - vertex listed twice   → ErrDuplicateVertex
//   - nil edge              → ErrNilEdge
//   - weight < 0 or NaN     → ErrNegativeWeight
//   - endpoint not a vertex → ErrUnknownVertex
//
// Every failure also matches ErrInvalidArgument.
//
// Complexity: O(V + E) time and memory.
func New[V comparable, E Edge[V]](vertices []V, edges []E) (*Graph[V, E], error) {
	// 1) Seed the adjacency view with every vertex and an empty incidence list.
	adjacency := make(map[V][]E, len(vertices))
	for i, v := range vertices {
		if isNil(v) {
			return nil, invalid(ErrNilVertex, "vertices[%d]", i)
		}
		if _, dup := adjacency[v]; dup {
			return nil, invalid(ErrDuplicateVertex, "vertices[%d]=%v", i, v)
		}
		adjacency[v] = []E{}
	}

	// 2) Validate each edge, then record it under both endpoints.
	for i, e := range edges {
		if isNil(e) {
			return nil, invalid(ErrNilEdge, "edges[%d]", i)
		}
		w := e.Weight()
		if w < 0 || math.IsNaN(w) {
			return nil, invalid(ErrNegativeWeight, "edges[%d] weight=%g", i, w)
		}
		u, v := e.Vertex1(), e.Vertex2()
		if _, ok := adjacency[u]; !ok {
			return nil, invalid(ErrUnknownVertex, "edges[%d] endpoint %v", i, u)
		}
		if _, ok := adjacency[v]; !ok {
			return nil, invalid(ErrUnknownVertex, "edges[%d] endpoint %v", i, v)
		}
		// A self-loop lands in the same list twice, once per endpoint reference.
		adjacency[u] = append(adjacency[u], e)
		adjacency[v] = append(adjacency[v], e)
	}

	g := &Graph[V, E]{
		vertices:  append(make([]V, 0, len(vertices)), vertices...),
		edges:     append(make([]E, 0, len(edges)), edges...),
		adjacency: adjacency,
	}

	return g, nil
}

// NewFromSets builds a Graph from vertex and edge sets. The sets are flattened by
// map iteration, so the resulting vertex and edge order is unspecified.
//
// Errors: ErrNilCollection if either set is nil, otherwise as New.
func NewFromSets[V comparable, E interface {
	Edge[V]
	comparable
}](vertices map[V]struct{}, edges map[E]struct{}) (*Graph[V, E], error) {
	if vertices == nil {
		return nil, invalid(ErrNilCollection, "vertex set")
	}
	if edges == nil {
		return nil, invalid(ErrNilCollection, "edge set")
	}

	return New[V, E](setToList(vertices), setToList(edges))
}

// setToList flattens a set in map iteration order.
func setToList[T comparable](set map[T]struct{}) []T {
	out := make([]T, 0, len(set))
	for item := range set {
		out = append(out, item)
	}

	return out
}

// NumVertices returns |V|. Complexity: O(1).
func (g *Graph[V, E]) NumVertices() int { return len(g.vertices) }

// NumEdges returns |E|. Complexity: O(1).
func (g *Graph[V, E]) NumEdges() int { return len(g.edges) }

// Vertices returns a copy of the vertex list in construction order.
func (g *Graph[V, E]) Vertices() []V {
	return append(make([]V, 0, len(g.vertices)), g.vertices...)
}

// Edges returns a copy of the edge list in construction order.
func (g *Graph[V, E]) Edges() []E {
	return append(make([]E, 0, len(g.edges)), g.edges...)
}

// HasVertex reports whether v belongs to the graph.
func (g *Graph[V, E]) HasVertex(v V) bool {
	_, ok := g.adjacency[v]

	return ok
}

// Incident returns a copy of the edges incident to v, in insertion order.
// A self-loop on v is listed twice.
//
// Errors: ErrInvalidArgument with ErrUnknownVertex if v is not in the graph.
func (g *Graph[V, E]) Incident(v V) ([]E, error) {
	list, ok := g.adjacency[v]
	if !ok {
		return nil, invalid(ErrUnknownVertex, "%v", v)
	}

	return append(make([]E, 0, len(list)), list...), nil
}
