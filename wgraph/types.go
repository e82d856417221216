package wgraph

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrInvalidArgument is reported together with every detailed input error below.
	ErrInvalidArgument = errors.New("wgraph: invalid argument")

	// ErrNilVertex indicates a nil vertex in the input or as a path endpoint.
	ErrNilVertex = errors.New("wgraph: nil vertex")

	// ErrNilEdge indicates a nil edge in the input.
	ErrNilEdge = errors.New("wgraph: nil edge")

	// ErrNilCollection indicates a nil vertex or edge set passed to NewFromSets.
	ErrNilCollection = errors.New("wgraph: nil collection")

	// ErrNegativeWeight indicates an edge whose weight is negative or NaN.
	ErrNegativeWeight = errors.New("wgraph: negative edge weight")

	// ErrUnknownVertex indicates an edge endpoint or path endpoint missing from the graph.
	ErrUnknownVertex = errors.New("wgraph: vertex not in graph")

	// ErrDuplicateVertex indicates the same vertex listed twice.
	ErrDuplicateVertex = errors.New("wgraph: duplicate vertex")

	// ErrNoPath indicates that ShortestPath exhausted the reachable region without
	// reaching the target. It is not an ErrInvalidArgument.
	ErrNoPath = errors.New("wgraph: no path exists")

	// ErrDisconnected indicates SpanningTree found fewer than |V|-1 tree edges.
	ErrDisconnected = errors.New("wgraph: graph is disconnected")
)

// Edge is the capability every edge type must provide.
//
// Weight must be ≥ 0 for the whole lifetime of a Graph built over the edge.
// OtherVertex(v) returns the endpoint that is not v; for a self-loop it returns v.
type Edge[V comparable] interface {
	Vertex1() V
	Vertex2() V
	Weight() float64
	OtherVertex(v V) V
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight[V comparable, E Edge[V]](edges []E) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight()
	}

	return total
}

// invalid reports detail together with ErrInvalidArgument.
func invalid(detail error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %w: %s", ErrInvalidArgument, detail, fmt.Sprintf(format, args...))
}

// isNil reports whether x is nil, including typed nil pointers, maps, slices,
// funcs, channels and interfaces stored in a type parameter.
func isNil(x any) bool {
	if x == nil {
		return true
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
